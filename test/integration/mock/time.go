package mock

import (
	"sync"
	"time"
)

// Time is an adjustable clock for use cases that take a now function.
type Time struct {
	mu      sync.Mutex
	current time.Time
	setAt   time.Time
}

// NewTime starts the clock at the real current time.
func NewTime() *Time {
	now := time.Now()
	return &Time{
		current: now,
		setAt:   now,
	}
}

// SetCurrentTime pins the clock to the given instant.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.setAt = time.Now()
}

// Now returns the pinned instant plus the real time elapsed since it was set.
func (t *Time) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current.Add(time.Since(t.setAt))
}
