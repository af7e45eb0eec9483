package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	loginRateLimit   = rate.Limit(3) // sustained requests per second
	loginRateBurst   = 10
	limiterClientTTL = 10 * time.Minute
)

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	limiterMu sync.Mutex
	limiters  = make(map[string]*rateLimitClient)
)

// LoginRateLimit throttles password attempts per client IP with a token
// bucket. Stale entries are swept inline; the map stays tiny for one admin.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiterMu.Lock()
		client, ok := limiters[ip]
		if !ok {
			client = &rateLimitClient{limiter: rate.NewLimiter(loginRateLimit, loginRateBurst)}
			limiters[ip] = client
		}
		client.lastSeen = time.Now()

		for addr, cl := range limiters {
			if time.Since(cl.lastSeen) > limiterClientTTL {
				delete(limiters, addr)
			}
		}

		allowed := client.limiter.Allow()
		limiterMu.Unlock()

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts, slow down"})
			c.Abort()
			return
		}

		c.Next()
	}
}
