package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireStaff refuses callers without the staff flag. Must run after
// OAuth2Auth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		if !caller.IsStaff {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Permission Denied",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
