package middleware

import (
	"net/http"
	"strings"

	"staybnb/internal/pkg/jwt"
	"staybnb/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and puts the caller's user id into the
// request context. Every failure mode terminates with the same envelope
// so clients cannot probe token internals.
func Auth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
