// internal/handlers/profile/profile_handler.go
package profile

import (
	"net/http"

	"portfolio-service/internal/domain/profile"
	"portfolio-service/internal/pkg/response"
	service "portfolio-service/internal/service/profile"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *service.Service
}

func NewProfileHandler(profileService *service.Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the public profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", p)
}

// Update applies a partial profile update.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid profile payload", err)
		return
	}

	p, err := h.profileService.Update(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to update profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile updated", p)
}
