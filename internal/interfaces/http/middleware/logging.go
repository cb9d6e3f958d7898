package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cbnu/subscribe-service/internal/shared/logger"
)

// AccessLog writes one record per request once the handler chain returns.
// Server errors log at error level, client errors at warn, the rest at debug.
func AccessLog(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := accessFields(c, status, time.Since(start))

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request served", fields...)
		}
	}
}

func accessFields(c *gin.Context, status int, latency time.Duration) []any {
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}

	fields := []any{
		"method", c.Request.Method,
		"route", route,
		"status", status,
		"latency_ms", latency.Milliseconds(),
		"client_ip", c.ClientIP(),
		"bytes", c.Writer.Size(),
	}
	if id := GetRequestID(c); id != "" {
		fields = append(fields, "request_id", id)
	}
	if userID := c.Param("userId"); userID != "" {
		fields = append(fields, "user_id", userID)
	}
	if c.Request.URL.RawQuery != "" {
		fields = append(fields, "query", c.Request.URL.RawQuery)
	}
	if last := c.Errors.Last(); last != nil {
		fields = append(fields, "error", last.Error())
	}
	return fields
}
