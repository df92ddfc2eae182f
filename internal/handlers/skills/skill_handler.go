// internal/handlers/skills/skill_handler.go
package skills

import (
	"net/http"
	"strconv"

	"portfolio-service/internal/domain/skill"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/response"
	service "portfolio-service/internal/service/skill"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillService *service.Service
}

func NewSkillHandler(skillService *service.Service) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid ID", err)
		return 0, false
	}
	return id, true
}

// ListPublic returns visible skills for the public site.
func (h *SkillHandler) ListPublic(c *gin.Context) {
	skills, err := h.skillService.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list skills", err)
		return
	}

	response.Success(c, http.StatusOK, "skills retrieved", skills)
}

// ListAll returns every skill for the admin panel.
func (h *SkillHandler) ListAll(c *gin.Context) {
	skills, err := h.skillService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list skills", err)
		return
	}

	response.Success(c, http.StatusOK, "skills retrieved", skills)
}

// Create adds a new skill.
func (h *SkillHandler) Create(c *gin.Context) {
	var req skill.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid skill payload", err)
		return
	}

	sk, err := h.skillService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create skill", err)
		return
	}

	response.Success(c, http.StatusCreated, "skill created", sk)
}

// Update applies a partial skill update.
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req skill.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid skill payload", err)
		return
	}

	sk, err := h.skillService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "skill not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update skill", err)
		return
	}

	response.Success(c, http.StatusOK, "skill updated", sk)
}

// Delete removes a skill.
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.skillService.Delete(c.Request.Context(), id); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "skill not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete skill", err)
		return
	}

	response.Success(c, http.StatusOK, "skill deleted", nil)
}
