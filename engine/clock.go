package engine

import (
	"sync/atomic"
	"time"
)

// Clock supplies wall-time readings to the frame loop
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock moves only when advanced; tests step it one frame at a time
type ManualClock struct {
	base    time.Time
	elapsed atomic.Int64
}

var _ Clock = (*ManualClock)(nil)

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{base: start}
}

func (c *ManualClock) Now() time.Time {
	return c.base.Add(c.Elapsed())
}

// Advance moves the clock forward by d and returns the new reading
// Negative durations are ignored; wall time never runs backwards for the loop
func (c *ManualClock) Advance(d time.Duration) time.Time {
	if d > 0 {
		c.elapsed.Add(int64(d))
	}
	return c.Now()
}

// Elapsed is the total advanced since construction
func (c *ManualClock) Elapsed() time.Duration {
	return time.Duration(c.elapsed.Load())
}
