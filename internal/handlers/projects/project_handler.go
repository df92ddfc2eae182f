// internal/handlers/projects/project_handler.go
package projects

import (
	"net/http"
	"strconv"

	"portfolio-service/internal/domain/project"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/response"
	service "portfolio-service/internal/service/project"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *service.Service
}

func NewProjectHandler(projectService *service.Service) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid ID", err)
		return 0, false
	}
	return id, true
}

// ListPublic returns visible projects, featured first.
func (h *ProjectHandler) ListPublic(c *gin.Context) {
	projects, err := h.projectService.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list projects", err)
		return
	}

	response.Success(c, http.StatusOK, "projects retrieved", projects)
}

// GetPublic returns one project and counts the view.
func (h *ProjectHandler) GetPublic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.projectService.GetPublic(c.Request.Context(), id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load project", err)
		return
	}

	response.Success(c, http.StatusOK, "project retrieved", p)
}

// ListAll returns every project for the admin panel.
func (h *ProjectHandler) ListAll(c *gin.Context) {
	projects, err := h.projectService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list projects", err)
		return
	}

	response.Success(c, http.StatusOK, "projects retrieved", projects)
}

// Create adds a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req project.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid project payload", err)
		return
	}

	p, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create project", err)
		return
	}

	response.Success(c, http.StatusCreated, "project created", p)
}

// Update applies a partial project update.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req project.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid project payload", err)
		return
	}

	p, err := h.projectService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to update project", err)
		return
	}

	response.Success(c, http.StatusOK, "project updated", p)
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "project not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete project", err)
		return
	}

	response.Success(c, http.StatusOK, "project deleted", nil)
}
