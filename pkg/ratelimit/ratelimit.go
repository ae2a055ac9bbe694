// Package ratelimit provides a rolling-window call limiter for outbound
// LLM requests. Unlike a token bucket, it guarantees that no more than
// `limit` calls are ever recorded within any trailing `window`.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// WindowLimiter tracks timestamps of recent calls and delays callers until
// issuing another call would not exceed the configured quota.
type WindowLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	calls  []time.Time

	// Injection points for tests.
	now   func() time.Time
	after func(d time.Duration) <-chan time.Time
}

// NewWindowLimiter creates a limiter allowing `limit` calls per `window`.
func NewWindowLimiter(limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		after:  time.After,
	}
}

// WaitForSlot blocks until a call slot is available, then records the call.
// The capacity decision is re-evaluated from scratch after every wait rather
// than assumed; waiting is interrupted by context cancellation.
func (l *WindowLimiter) WaitForSlot(ctx context.Context) error {
	for {
		wait, ok := l.tryAcquire()
		if ok {
			return nil
		}

		select {
		case <-l.after(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// tryAcquire evicts stale timestamps and either records a call (true) or
// returns how long the caller should wait before re-checking.
func (l *WindowLimiter) tryAcquire() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.calls[:0]
	for _, ts := range l.calls {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	l.calls = kept

	if len(l.calls) < l.limit {
		l.calls = append(l.calls, now)
		return 0, true
	}

	// Oldest surviving entry dictates when the next slot frees up.
	wait := l.window - now.Sub(l.calls[0])
	if wait <= 0 {
		wait = time.Millisecond
	}
	return wait, false
}

// Pending returns the number of calls currently counted against the window.
func (l *WindowLimiter) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	n := 0
	for _, ts := range l.calls {
		if ts.After(cutoff) {
			n++
		}
	}
	return n
}
