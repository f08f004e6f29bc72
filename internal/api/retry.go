package api

import (
	"context"
	"time"
)

// BackoffPolicy controls the delay between retry attempts for
// transport-level failures. Delays grow exponentially with no jitter:
// BaseDelay, 2*BaseDelay, 4*BaseDelay, ...
type BackoffPolicy struct {
	// BaseDelay is the delay before the first retry.
	BaseDelay time.Duration

	// Sleep, when set, replaces the timer-based wait. Tests use it to
	// record delays without sleeping.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultBackoffPolicy returns the standard policy: 1s base delay.
func DefaultBackoffPolicy() *BackoffPolicy {
	return &BackoffPolicy{BaseDelay: time.Second}
}

// Delay returns the pause after the given attempt (1-based):
// BaseDelay << (attempt-1).
func (b *BackoffPolicy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return b.BaseDelay << (attempt - 1)
}

// Wait blocks for the delay after the given attempt. It returns early
// with the context's error if the context is cancelled first.
func (b *BackoffPolicy) Wait(ctx context.Context, attempt int) error {
	d := b.Delay(attempt)
	if b.Sleep != nil {
		return b.Sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
