package engine

import "time"

// Deadline is a one-shot countdown advanced explicitly by frame deltas
// Zero value is disarmed
type Deadline struct {
	remaining time.Duration
	armed     bool
}

// Arm starts (or restarts) the countdown
func (d *Deadline) Arm(after time.Duration) {
	d.remaining = after
	d.armed = true
}

// Clear disarms without firing
func (d *Deadline) Clear() {
	d.remaining = 0
	d.armed = false
}

// Armed reports whether the countdown is pending
func (d *Deadline) Armed() bool {
	return d.armed
}

// Remaining returns the time left, zero when disarmed
func (d *Deadline) Remaining() time.Duration {
	if !d.armed {
		return 0
	}
	return d.remaining
}

// Tick advances the countdown and returns true exactly once, on the frame it expires
func (d *Deadline) Tick(dt time.Duration) bool {
	if !d.armed {
		return false
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return false
	}
	d.Clear()
	return true
}
