package middleware

import (
	"grainmarket-be/internal/logger"
	"grainmarket-be/internal/metrics"
	"grainmarket-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID mints a request id and puts it on the context so service-layer
// logs correlate with the access log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := logger.WithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-Id", reqID)
		c.Next()
	}
}

// LoggingMiddleware logs every HTTP request in structured form.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		timer := metrics.StartTimer()
		c.Next()
		duration := timer.Duration()

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())

		logger.FromCtx(c.Request.Context()).Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("remote_ip", c.ClientIP()),
			zap.Uint64("user_id", userID),
		)
	}
}
