package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"youtube-companion/domain/model"
	"youtube-companion/infrastructure/audit"
	"youtube-companion/infrastructure/logger"
)

const RequestIDHeader = "X-Request-ID"

// RequestContext tags the request with an id and the metadata the event
// logger records, then logs the outcome.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		ctx := logger.ContextWithRequestID(c.Request.Context(), requestID)
		ctx = audit.WithRequestMeta(ctx, model.RequestMeta{
			RequestID: requestID,
			Method:    c.Request.Method,
			URL:       c.Request.URL.RequestURI(),
			UserAgent: c.Request.UserAgent(),
			IPAddress: c.ClientIP(),
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("Request handled")
	}
}
