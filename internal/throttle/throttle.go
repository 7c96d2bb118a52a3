// Package throttle rate-limits how often a caller may submit
// DecisionRequests to a human reviewer. It lives outside the core
// because the core has no wall-clock source (spec.md §5) and token-bucket
// limiting is inherently time-based.
package throttle

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps a token-bucket rate limiter scoped to one reviewer
// queue.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter returns a Limiter allowing ratePerSecond submissions per
// second, with burst as the maximum instantaneous burst size.
func NewLimiter(ratePerSecond float64, burst int) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst)}
}

// Allow reports whether a submission may proceed right now without
// blocking.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Wait blocks until a submission slot is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
