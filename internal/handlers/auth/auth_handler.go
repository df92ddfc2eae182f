// internal/handlers/auth/auth_handler.go
package auth

import (
	"net/http"

	"portfolio-service/internal/domain/admin"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/deviceinfo"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/ratelimit"
	"portfolio-service/internal/pkg/response"
	service "portfolio-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.Service
	limiter     *ratelimit.Limiter
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.Service, limiter *ratelimit.Limiter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		limiter:     limiter,
		logger:      logger,
	}
}

// Register creates a new admin account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req admin.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid registration payload", err)
		return
	}

	req.IPAddress = deviceinfo.NormalizeIP(c.ClientIP())
	req.UserAgent = c.Request.UserAgent()

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrConflict) {
			response.Error(c, http.StatusBadRequest, "email already registered", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to register", err)
		return
	}

	response.Success(c, http.StatusCreated, "admin registered", result)
}

// Login authenticates credentials and returns a bearer token. An account
// inside its lockout window answers 403 with the remaining lock time.
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid login payload", err)
		return
	}

	req.IPAddress = deviceinfo.NormalizeIP(c.ClientIP())
	req.UserAgent = c.Request.UserAgent()

	allowed, err := h.limiter.AllowLogin(c.Request.Context(), req.IPAddress, req.Email)
	if err != nil {
		h.logger.Warn("login rate limit check failed", zap.Error(err))
	}
	if !allowed {
		response.Error(c, http.StatusTooManyRequests, "too many login attempts, try again later", nil)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if locked, ok := xerrors.AsLocked(err); ok {
			response.Error(c, http.StatusForbidden, "account temporarily locked", err, admin.LockedResponse{
				LockUntil:         locked.Until,
				RetryAfterSeconds: locked.RetryAfterSeconds(),
			})
			return
		}
		if xerrors.Is(err, xerrors.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "invalid email or password", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to log in", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}

// Me returns the calling admin's public info.
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, "admin retrieved", admin.PublicInfo{
		ID:    middleware.AdminID(c),
		Email: middleware.AdminEmail(c),
		Name:  middleware.AdminName(c),
	})
}

// ChangePassword rotates the caller's password. All existing tokens stop
// working, the one used for this request included.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req admin.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), middleware.AdminID(c), &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "current password is incorrect", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to change password", err)
		return
	}

	response.Success(c, http.StatusOK, "password changed, log in again", nil)
}

// ResetPassword is the unauthenticated recovery path guarded by the
// pre-shared secret code.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req admin.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid payload", err)
		return
	}

	err := h.authService.ResetPasswordWithCode(c.Request.Context(), &req)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "no admin with that email")
			return
		}
		if xerrors.Is(err, xerrors.ErrInvalidSecretCode) {
			response.Error(c, http.StatusBadRequest, "invalid secret code", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to reset password", err)
		return
	}

	response.Success(c, http.StatusOK, "password reset, log in with the new password", nil)
}

// ListSessions returns the caller's sessions with the current one marked.
func (h *AuthHandler) ListSessions(c *gin.Context) {
	sessions, err := h.authService.ListSessions(c.Request.Context(), middleware.AdminID(c), middleware.TokenHash(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to list sessions", err)
		return
	}

	response.Success(c, http.StatusOK, "sessions retrieved", sessions)
}

// RevokeSession logs out one device by session ID.
func (h *AuthHandler) RevokeSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "invalid session ID", err)
		return
	}

	err = h.authService.RevokeSession(c.Request.Context(), middleware.AdminID(c), id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			response.NotFound(c, "session not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to revoke session", err)
		return
	}

	response.Success(c, http.StatusOK, "session revoked", nil)
}

// RevokeSessions logs out other devices, or every device with ?all=true.
func (h *AuthHandler) RevokeSessions(c *gin.Context) {
	adminID := middleware.AdminID(c)

	var err error
	if c.Query("all") == "true" {
		err = h.authService.RevokeAllSessions(c.Request.Context(), adminID)
	} else {
		err = h.authService.RevokeOtherSessions(c.Request.Context(), adminID, middleware.TokenHash(c))
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to revoke sessions", err)
		return
	}

	response.Success(c, http.StatusOK, "sessions revoked", nil)
}
