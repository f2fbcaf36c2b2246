package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single measured frame delta so a stalled terminal
	// does not teleport the player or burn through timers in one step
	MaxFrameDelta = 100 * time.Millisecond

	// KeyHoldTimeout is how long a terminal key stays held without a repeat
	// event before a release is synthesized
	KeyHoldTimeout = 500 * time.Millisecond

	// EventChannelSize is the buffer for polled terminal events
	EventChannelSize = 256
)
