package middleware

import (
	"net/http"
	"strings"

	jwtsvc "makeupshop/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and stores user_id and role on the
// context for downstream handlers.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			unauthorized(c, "Missing or malformed Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			unauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": msg,
		},
	})
}
