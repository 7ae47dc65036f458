package middleware

import (
	"net/http"
	"strings"

	"classgrid/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware guards staff-only routes. On success the staff ID and
// role from the token are placed into the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		staffID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || staffID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("staffID", staffID)
		c.Set("role", role)
		c.Next()
	}
}
