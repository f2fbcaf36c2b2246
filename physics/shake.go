package physics

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Shake is a dip-and-recover camera offset
type Shake struct {
	remaining time.Duration
	dip       float64
}

// Start dips the camera by dip for duration; restarting replaces the current shake
func (s *Shake) Start(dip float64, duration time.Duration) {
	s.dip = dip
	s.remaining = duration
}

// Active reports whether the camera is currently dipped
func (s *Shake) Active() bool {
	return s.remaining > 0
}

// Update advances the shake and returns the offset to apply this frame
func (s *Shake) Update(dt time.Duration) mgl64.Vec3 {
	if s.remaining <= 0 {
		return mgl64.Vec3{}
	}
	offset := mgl64.Vec3{0, -s.dip, 0}
	s.remaining -= dt
	return offset
}
