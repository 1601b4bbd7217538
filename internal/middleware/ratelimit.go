package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/flipword/api/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// RateLimit counts requests per client IP under action. A nil limiter lets
// everything through, and so does a limiter whose storage is down.
func RateLimit(limiter *ratelimit.Limiter, action string, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		result, err := limiter.Check(c.Request.Context(), c.ClientIP(), action)
		if err != nil {
			logger.Warn("rate limit check failed", "action", action, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			rateLimitedTotal.WithLabelValues(action).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, try again later"})
			return
		}
		c.Next()
	}
}
