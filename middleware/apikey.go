package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey gates the admin routes behind the configured admin key.
func ValidateAPIKey(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey == "" || apiKey != adminKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
