// internal/handlers/contact/contact_handler.go
package contact

import (
	"net/http"
	"strconv"

	"portfolio-service/internal/domain/contact"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/response"
	service "portfolio-service/internal/service/contact"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *service.Service
}

func NewContactHandler(contactService *service.Service) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid ID", err)
		return 0, false
	}
	return id, true
}

// Submit handles the public contact form.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid contact payload", err)
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to submit message", err)
		return
	}

	response.Success(c, http.StatusCreated, "message received", msg)
}

// List returns all messages for the admin panel.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contactService.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list messages", err)
		return
	}

	response.Success(c, http.StatusOK, "messages retrieved", messages)
}

// UnreadCount reports how many messages are unread.
func (h *ContactHandler) UnreadCount(c *gin.Context) {
	n, err := h.contactService.CountUnread(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to count messages", err)
		return
	}

	response.Success(c, http.StatusOK, "unread count retrieved", gin.H{"count": n})
}

// MarkRead flags a message as read.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	msg, err := h.contactService.MarkRead(c.Request.Context(), id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "message not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to mark message read", err)
		return
	}

	response.Success(c, http.StatusOK, "message marked read", msg)
}

// Delete removes a message.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), id); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "message not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to delete message", err)
		return
	}

	response.Success(c, http.StatusOK, "message deleted", nil)
}
