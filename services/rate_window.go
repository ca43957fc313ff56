package services

import (
	"sync"
	"time"
)

// SlidingWindowLimiter admits at most max calls within any rolling window.
// Allow must be atomic under concurrent callers, so the timestamp list is
// pruned and appended under one lock.
type SlidingWindowLimiter struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	calls  []time.Time
	now    func() time.Time
}

// NewSlidingWindowLimiter creates a limiter admitting max calls per window
func NewSlidingWindowLimiter(max int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// Allow records one call if the window still has room and reports whether
// the caller may proceed
func (l *SlidingWindowLimiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.calls[:0]
	for _, t := range l.calls {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.calls = kept

	if len(l.calls) >= l.max {
		return false
	}
	l.calls = append(l.calls, now)
	return true
}
