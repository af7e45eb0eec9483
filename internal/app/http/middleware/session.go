package middleware

import (
	"net/http"

	authapi "art-portfolio-app/internal/api/auth"

	"github.com/gin-gonic/gin"
)

// SessionRequired gates the admin mutation routes behind the session cookie.
// The check is deliberately boolean: there is a single admin, no roles.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("session")
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !authapi.ValidSession(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Next()
	}
}
