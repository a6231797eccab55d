package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// rateLimitKey buckets requests per organization and client IP.
func rateLimitKey(c *gin.Context) string {
	ip := c.ClientIP()
	if org := c.GetHeader(OrganizationHeader); org != "" {
		return org + "|" + ip
	}
	return ip
}

// RateLimit creates a Gin middleware for rate limiting requests.
// Rate limit headers are set on every response that reaches the limiter.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)
		logger := GetLoggerFromCtx(c.Request.Context())

		lc, err := limiterInstance.Get(c.Request.Context(), key)
		if err != nil {
			logger.Error("Failed to get rate limit context", slog.String("key", key), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))

		if lc.Reached {
			logger.Warn("Rate limit exceeded", slog.String("key", key), slog.Int64("limit", lc.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
			return
		}

		c.Next()
	}
}
