package utils

import (
	"net/http"

	"pokerhands/models"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// Logger logs method, path, status and latency of each request.
func Logger(logger *log.Logger, clock quartz.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := clock.Now()

		c.Next()

		latency := clock.Since(start)
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
		}
		if id := c.GetString(RequestIDKey); id != "" {
			fields = append(fields, "request_id", id)
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// ErrorHandler turns panics and errors attached to the context into a
// generic 500 so that no internal detail reaches the client.
func ErrorHandler(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic while handling request", "path", c.Request.URL.Path, "panic", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			logger.Error("request failed", "path", c.Request.URL.Path, "err", c.Errors.Last())
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		}
	}
}
