// internal/handlers/settings/settings_handler.go
package settings

import (
	"net/http"

	"caseflow-service/internal/domain/settings"
	"caseflow-service/internal/pkg/response"
	service "caseflow-service/internal/service/appsettings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *service.Service
}

func NewSettingsHandler(settingsService *service.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	cfg, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "settings retrieved", cfg)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req settings.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	updated, err := h.settingsService.Update(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "settings updated", updated)
}

func (h *SettingsHandler) ResetSettings(c *gin.Context) {
	cfg, err := h.settingsService.Reset(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "settings reset to defaults", cfg)
}
