package middleware

import (
	"strings"

	"vaultpay/response"
	"vaultpay/services"

	"github.com/gin-gonic/gin"
)

// RequireAuth verifies the bearer token and stores the caller identity on
// the context. When roles are given, the caller's role must be one of them.
func RequireAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, role, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// CurrentUser reads the identity the auth middleware stored.
func CurrentUser(c *gin.Context) (uint, string) {
	return c.GetUint("userID"), c.GetString("userRole")
}
