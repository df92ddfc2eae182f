// internal/middleware/ratelimit_middleware.go
package middleware

import (
	"net/http"

	"portfolio-service/internal/pkg/ratelimit"
	"portfolio-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactRateLimit throttles the public contact form per client IP.
func ContactRateLimit(limiter *ratelimit.Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.AllowContact(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("contact rate limit check failed", zap.Error(err))
		}
		if !allowed {
			response.Error(c, http.StatusTooManyRequests, "Too many messages, try again later", nil)
			return
		}
		c.Next()
	}
}
