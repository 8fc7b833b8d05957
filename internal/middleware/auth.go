package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"linkly-be/internal/jwt"
)

// emailKey is the gin context key holding the authenticated user's email.
const emailKey = "email"

// AuthMiddleware verifies the Bearer token and stores the email it was issued
// for in the request context. The token carries only the email, so profile
// operations downstream resolve the user by email.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: No token provided"})
			c.Abort()
			return
		}

		email, err := jwtService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(emailKey, email)
		c.Next()
	}
}

// Email returns the authenticated email set by AuthMiddleware.
func Email(c *gin.Context) string {
	return c.GetString(emailKey)
}
