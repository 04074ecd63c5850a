package ratelimiter

import (
	"golang.org/x/time/rate"
)

// Limiter is a single token bucket shared by every request.
// Burst is set equal to the rate so no extra burst capacity is allowed
// beyond the configured per-second maximum.
//
// A nil *Limiter allows everything.
type Limiter struct {
	l *rate.Limiter
}

// New creates a Limiter with ratePerSec tokens per second.
// It returns nil when ratePerSec <= 0, which disables limiting.
func New(ratePerSec int) *Limiter {
	if ratePerSec <= 0 {
		return nil
	}
	return &Limiter{l: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)}
}

// Allow reports whether a request may proceed now. It never blocks.
func (l *Limiter) Allow() bool {
	if l == nil {
		return true
	}
	return l.l.Allow()
}
