package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	loggerKey          = "logger"
	RequestIDHeader    = "X-Request-ID"
	maxRequestIDLength = 64
)

// requestIDFrom keeps a client supplied id only when it is a uuid.
func requestIDFrom(c *gin.Context) string {
	if incoming := c.GetHeader(RequestIDHeader); incoming != "" && len(incoming) <= maxRequestIDLength {
		if id, err := uuid.Parse(incoming); err == nil {
			return id.String()
		}
	}
	return uuid.NewString()
}

// RequestLogger tags every request with an id, exposes a request-scoped logger
// and logs the outcome once the handler chain returns.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := requestIDFrom(c)
		c.Header(RequestIDHeader, requestID)

		reqLogger := logger.With("request_id", requestID)
		c.Set(loggerKey, reqLogger)

		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if userID, ok := c.Get("userID"); ok {
			attrs = append(attrs, "user_id", userID)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLogger.Error("http_request", attrs...)
		case status >= 400:
			reqLogger.Warn("http_request", attrs...)
		default:
			reqLogger.Info("http_request", attrs...)
		}
	}
}

// LoggerFrom returns the request-scoped logger, or slog.Default outside RequestLogger.
func LoggerFrom(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}
