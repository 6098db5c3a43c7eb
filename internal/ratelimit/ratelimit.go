// Package ratelimit bounds outbound request frequency using a token bucket.
// It supports both blocking (Wait) and non-blocking (Allow) operations.
package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limiter wraps rate.Limiter with a name for debugging.
// It is safe for concurrent use; admission is serialized but callers
// proceed independently once admitted.
type Limiter struct {
	limiter *rate.Limiter
	name    string
	rps     int
}

// New creates a rate limiter allowing requestsPerSecond calls per second.
// The burst size equals the rate, so at most requestsPerSecond calls can
// start within any one-second window.
func New(name string, requestsPerSecond int) *Limiter {
	if requestsPerSecond < 1 {
		requestsPerSecond = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		name:    name,
		rps:     requestsPerSecond,
	}
}

// Wait blocks until the limiter allows a request to proceed.
// Returns an error if the context is cancelled while waiting.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait for %s: %w", l.name, err)
	}
	return nil
}

// Allow reports whether a request can proceed without blocking.
// Prefer Wait for outbound calls.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// Name returns the name of this rate limiter.
func (l *Limiter) Name() string {
	return l.name
}

// Rate returns the configured requests per second.
func (l *Limiter) Rate() int {
	return l.rps
}
