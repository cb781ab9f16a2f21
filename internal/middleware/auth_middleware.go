// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/pkg/actor"
	"caseflow-service/internal/pkg/response"
	"caseflow-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Auth validates the bearer token and attaches the acting admin to the
// request context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		act, err := m.authService.VerifyToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		actor.Set(c, act)
		c.Next()
	}
}

// RequireSuperAdmin must be used after Auth().
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		act, ok := actor.FromContext(c)
		if !ok {
			response.Error(c, http.StatusForbidden, "authentication required", nil)
			return
		}
		if act.Role != string(admin.RoleSuperAdmin) {
			response.Error(c, http.StatusForbidden, "superadmin access required", nil)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// Browsers cannot set headers on websocket upgrades.
	return c.Query("token")
}
