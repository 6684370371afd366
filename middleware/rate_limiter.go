// api/middleware/rate_limiter.go

package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/metrics"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// RateLimitStore counts hits per key in a sliding window.
type RateLimitStore interface {
	RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error)
}

// RateLimiter limits each client IP to limit requests per window. When the
// store is unavailable the request is let through.
func RateLimiter(store RateLimitStore, limit int, per time.Duration, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		allowed, err := store.RateLimit(c.Request.Context(), key, limit, per)
		if err != nil {
			logger.Error("Rate limiting failed", zap.Error(err), zap.String("ip", key))
			c.Next()
			return
		}
		m.RecordRateLimitDecision(allowed)

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", key),
				zap.Int("limit", limit),
				zap.Duration("per", per),
				zap.String("requestID", c.GetString(util.ContextRequestIDKey)))
			util.RespondWithError(c, http.StatusTooManyRequests, "Too many requests, please try again later", echo_errors.ErrRateLimited)
			return
		}

		c.Next()
	}
}
