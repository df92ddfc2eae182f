// internal/handlers/settings/settings_handler.go
package settings

import (
	"net/http"

	"portfolio-service/internal/domain/settings"
	"portfolio-service/internal/pkg/response"
	service "portfolio-service/internal/service/settings"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *service.Service
}

func NewSettingsHandler(settingsService *service.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the site settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	st, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load settings", err)
		return
	}

	response.Success(c, http.StatusOK, "settings retrieved", st)
}

// Update applies a partial settings update.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req settings.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid settings payload", err)
		return
	}

	st, err := h.settingsService.Update(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to update settings", err)
		return
	}

	response.Success(c, http.StatusOK, "settings updated", st)
}
