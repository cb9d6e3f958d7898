package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cbnu/subscribe-service/internal/infrastructure/ratelimit"
	"github.com/cbnu/subscribe-service/internal/shared/logger"
	"github.com/cbnu/subscribe-service/internal/shared/utils"
)

// RateLimit throttles requests per path user id, falling back to the client IP.
// Limiter errors let the request through so Redis outages do not block writes.
func RateLimit(limiter ratelimit.RateLimiter, limits ratelimit.Limits, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limits.IsZero() {
			c.Next()
			return
		}

		key := rateLimitKey(c)
		allowed, err := limiter.Allow(c.Request.Context(), key, limits)
		if err != nil {
			log.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}
		if !allowed {
			if limits.RequestsPerMinute > 0 {
				c.Header("X-RateLimit-Limit", strconv.Itoa(limits.RequestsPerMinute))
			}
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if userID := c.Param("userId"); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}
