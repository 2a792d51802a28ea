package middleware

import (
	"net/http"
	"strings"

	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates administrative routes behind the external
// identity provider. It verifies the bearer Firebase ID token and nothing
// more: authorization policy lives with the provider, not here.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.AuthClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("adminUID", token.UID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
