package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/infrastructure/ratelimit"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

// RateLimiter throttles requests per client IP. A nil limiter disables it.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
// A failing backend lets the request through.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		allowed, err := rl.limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.APIResponse{
				Error: &utils.ErrorInfo{
					Type:    "rate_limited",
					Message: "rate limit exceeded, please try again later",
				},
			})
			return
		}

		c.Next()
	}
}
