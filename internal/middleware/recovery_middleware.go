// internal/middleware/recovery_middleware.go
package middleware

import (
	"net/http"

	"portfolio-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware converts panics into a 500 envelope instead of
// dropping the connection.
func RecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
			}
		}()
		c.Next()
	}
}
