package parameter

import (
	"math"
	"time"
)

// Look
const (
	// LookRadiansPerUnit converts pointer delta units into radians at sensitivity 1.0
	LookRadiansPerUnit = 0.002

	// KeyTurnRate is the yaw/pitch rate in radians per second for held look keys
	KeyTurnRate = 1.8

	// PitchLimit keeps the camera from flipping over the poles
	PitchLimit = math.Pi/2 - 0.01

	// Terminal mouse reports cells; one cell counts as this many pointer units
	MouseCellWidth  = 8.0
	MouseCellHeight = 16.0
)

// Kick camera shake
const (
	ShakeDip      = 0.1
	ShakeDuration = 100 * time.Millisecond
)
