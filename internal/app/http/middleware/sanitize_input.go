package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeJSONStrings strips markup from every string in a JSON request body,
// including strings inside arrays (the reorder payload is an id array).
// Artwork titles and descriptions come from a form and end up rendered on
// the public site, so they never carry HTML through unescaped.
func SanitizeJSONStrings() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if !strings.HasPrefix(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(buf))
			c.Next()
			return
		}

		var body interface{}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		newBody, _ := json.Marshal(sanitizeValue(body))
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

func sanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return sanitizePolicy.Sanitize(val)
	case map[string]interface{}:
		for k, item := range val {
			val[k] = sanitizeValue(item)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = sanitizeValue(item)
		}
		return val
	default:
		return v
	}
}
