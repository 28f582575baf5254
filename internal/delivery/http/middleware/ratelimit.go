package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Ankit73-bit/job-portal-backend/internal/infrastructure/ratelimit"
)

// RateLimitMiddleware counts requests per client IP against the
// fixed-window limiter and rejects the overflow with 429.
type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		d := m.limiter.Allow(c.Context(), c.IP())
		if d.Allowed {
			return c.Next()
		}

		c.Set("Retry-After", strconv.Itoa(retryAfterSeconds(d.RetryAfter)))
		return fiber.NewError(fiber.StatusTooManyRequests, "too many requests")
	}
}

// retryAfterSeconds rounds the wait up so clients never retry early.
func retryAfterSeconds(d time.Duration) int {
	if d <= 0 {
		return 1
	}
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
