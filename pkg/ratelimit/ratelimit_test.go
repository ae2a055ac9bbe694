package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

// fakeClock drives the limiter deterministically: every wait advances the
// clock by a controllable fraction of the requested duration.
type fakeClock struct {
	mu      sync.Mutex
	current time.Time
	waits   []time.Duration
	// advanceFactor scales how much of each requested wait actually elapses.
	advanceFactor float64
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		current:       time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC),
		advanceFactor: 1.0,
	}
}

func (f *fakeClock) now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeClock) after(d time.Duration) <-chan time.Time {
	f.mu.Lock()
	f.waits = append(f.waits, d)
	f.current = f.current.Add(time.Duration(float64(d) * f.advanceFactor))
	f.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- f.current
	return ch
}

func newTestLimiter(limit int, window time.Duration, clock *fakeClock) *WindowLimiter {
	l := NewWindowLimiter(limit, window)
	l.now = clock.now
	l.after = clock.after
	return l
}

func TestWaitForSlot_UnderLimitDoesNotWait(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(3, time.Minute, clock)

	for i := 0; i < 3; i++ {
		if err := l.WaitForSlot(context.Background()); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}

	if len(clock.waits) != 0 {
		t.Errorf("expected no waits under the limit, got %v", clock.waits)
	}
	if got := l.Pending(); got != 3 {
		t.Errorf("expected 3 pending calls, got %d", got)
	}
}

func TestWaitForSlot_OverLimitWaitsFullWindow(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(3, time.Minute, clock)

	start := clock.now()
	for i := 0; i < 3; i++ {
		if err := l.WaitForSlot(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// 4th call must be delayed until a full window has passed since the
	// oldest of the 3 preceding calls.
	if err := l.WaitForSlot(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(clock.waits) == 0 {
		t.Fatal("expected the 4th call to wait")
	}
	elapsed := clock.now().Sub(start)
	if elapsed < time.Minute {
		t.Errorf("4th call proceeded after %v, want >= window (1m)", elapsed)
	}
}

func TestWaitForSlot_RechecksAfterWaking(t *testing.T) {
	clock := newFakeClock()
	// Simulate drift: each wait only advances half the requested duration,
	// so a single wake-up is never enough.
	clock.advanceFactor = 0.5
	l := newTestLimiter(1, time.Minute, clock)

	if err := l.WaitForSlot(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.WaitForSlot(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(clock.waits) < 2 {
		t.Errorf("expected capacity to be re-checked after waking, waits=%v", clock.waits)
	}
}

func TestWaitForSlot_ContextCancelled(t *testing.T) {
	l := NewWindowLimiter(1, time.Hour)
	l.now = time.Now

	if err := l.WaitForSlot(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.WaitForSlot(ctx); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPending_EvictsOldTimestamps(t *testing.T) {
	clock := newFakeClock()
	l := newTestLimiter(3, time.Minute, clock)

	l.WaitForSlot(context.Background())
	l.WaitForSlot(context.Background())

	clock.mu.Lock()
	clock.current = clock.current.Add(2 * time.Minute)
	clock.mu.Unlock()

	if got := l.Pending(); got != 0 {
		t.Errorf("expected old timestamps evicted, got %d pending", got)
	}
}
