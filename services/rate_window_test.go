package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests move time forward deterministically
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestLimiter(max int, window time.Duration) (*SlidingWindowLimiter, *fakeClock) {
	clock := &fakeClock{current: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	limiter := NewSlidingWindowLimiter(max, window)
	limiter.now = clock.now
	return limiter, clock
}

func TestSlidingWindowLimiter_AllowsUpToMax(t *testing.T) {
	limiter, _ := newTestLimiter(3, time.Minute)

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestSlidingWindowLimiter_WindowSlides(t *testing.T) {
	limiter, clock := newTestLimiter(2, time.Minute)

	assert.True(t, limiter.Allow())
	clock.advance(30 * time.Second)
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	// The first call falls out of the window, the second is still inside
	clock.advance(31 * time.Second)
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestSlidingWindowLimiter_FullWindowResets(t *testing.T) {
	limiter, clock := newTestLimiter(2, time.Minute)

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())

	clock.advance(time.Minute + time.Second)
	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestSlidingWindowLimiter_ZeroMaxRejectsEverything(t *testing.T) {
	limiter, _ := newTestLimiter(0, time.Minute)

	assert.False(t, limiter.Allow())
}
