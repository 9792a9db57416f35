package testutil

import (
	"sync"
	"time"
)

// Clock is a fake time source that moves forward by Step on every call to
// Now, so two consecutive writes never share a timestamp.
type Clock struct {
	mu   sync.Mutex
	t    time.Time
	Step time.Duration
}

// NewClock starts at start and advances one second per reading.
func NewClock(start time.Time) *Clock {
	return &Clock{t: start, Step: time.Second}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.Step)
	return now
}
