package publisher

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter implements token bucket rate limiting for outgoing publish
// requests. It prevents the external API from being overwhelmed when many
// items come due in the same dispatch cycle.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a RateLimiter allowing a sustained rate of
// requestsPerSecond with the given burst capacity.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Allow blocks until a token is available or the context is canceled.
func (r *RateLimiter) Allow(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
