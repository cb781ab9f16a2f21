// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/pkg/actor"
	"caseflow-service/internal/pkg/response"
	service "caseflow-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.Service
}

func NewAuthHandler(authService *service.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "logged in", result)
}

// Me echoes the actor the auth middleware attached.
func (h *AuthHandler) Me(c *gin.Context) {
	act, ok := actor.FromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	response.Success(c, http.StatusOK, "authenticated admin", act)
}

func (h *AuthHandler) CreateSubAdmin(c *gin.Context) {
	act, _ := actor.FromContext(c)

	var req admin.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	created, err := h.authService.CreateSubAdmin(c.Request.Context(), act, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "admin created", created)
}

func (h *AuthHandler) ListAdmins(c *gin.Context) {
	admins, err := h.authService.ListAdmins(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "admins retrieved", admins)
}

func (h *AuthHandler) DeleteAdmin(c *gin.Context) {
	act, _ := actor.FromContext(c)

	if err := h.authService.DeleteAdmin(c.Request.Context(), act, c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "admin deleted", nil)
}
