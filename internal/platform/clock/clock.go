// Package clock abstracts time so simulated latency stays deterministic in tests.
package clock

import (
	"context"
	"sync"
	"time"
)

// Clock reports the current time and waits for simulated latency.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// Real is the wall clock.
type Real struct{}

// Now returns the current UTC time.
func (Real) Now() time.Time { return time.Now().UTC() }

// Sleep blocks for d or until ctx is done.
func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
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

// Instant wraps a clock and skips every wait. It backs the
// simulated-latency toggle.
type Instant struct {
	Clock Clock
}

// Now delegates to the wrapped clock.
func (c Instant) Now() time.Time {
	if c.Clock == nil {
		return Real{}.Now()
	}
	return c.Clock.Now()
}

// Sleep returns immediately unless ctx is already done.
func (Instant) Sleep(ctx context.Context, _ time.Duration) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}

// Fake is a manual clock for tests. Sleep records the requested duration and
// advances the fake time without blocking.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

// NewFake returns a fake clock starting at now.
func NewFake(now time.Time) *Fake {
	return &Fake{now: now}
}

// Now returns the fake time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Sleep records d and advances the fake time.
func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
	return nil
}

// Sleeps returns the recorded sleep durations in call order.
func (f *Fake) Sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.sleeps...)
}
