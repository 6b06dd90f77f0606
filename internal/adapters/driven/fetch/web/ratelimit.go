package web

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is used when no rate is configured.
const DefaultRequestsPerSecond = 4.0

// RateLimiter paces requests to the dataset host with a token bucket.
type RateLimiter struct {
	limiter *rate.Limiter
}

// burst lets a full load of every dataset start without waiting.
const burst = 4

// NewRateLimiter creates a limiter allowing rps requests per second.
func NewRateLimiter(rps float64) *RateLimiter {
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
