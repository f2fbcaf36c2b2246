package parameter

import "time"

// Phase Timing
const (
	// WarningDuration is the mandatory wait before the warning screen can be dismissed
	WarningDuration = 3 * time.Second

	// CutsceneDuration is the wake-up cutscene length before control is handed over
	CutsceneDuration = 7 * time.Second

	// CutsceneCameraDuration is the eased camera move window inside the cutscene
	CutsceneCameraDuration = 6 * time.Second

	// ChaseDelay lets the final kick read before the chase begins
	ChaseDelay = 500 * time.Millisecond

	// DawnDuration is the survival time required in WAITING_FOR_DAWN
	DawnDuration = 90 * time.Second

	// JumpscareDuration is how long the boundary scare stays on screen
	JumpscareDuration = 1500 * time.Millisecond
)

// World Thresholds
const (
	// ChaseEscapeZ is the depth beyond which (toward the start) the chase ends
	ChaseEscapeZ = -100.0

	// BoundaryX is the symmetric lateral bound that triggers the jumpscare
	BoundaryX = 50.0
)

// Locked House Door
const (
	// LockedDoorHealth is the number of kicks needed to break the door
	LockedDoorHealth = 3

	// KickRadius is the reach for kicking the locked door
	KickRadius = 4.0

	// DoorRadius is the reach for opening and closing regular doors
	DoorRadius = 3.0
)

// Cheats
const (
	// CheatCode unlocks the cheat menu
	CheatCode = "003681"

	// CheatCodeLength is the maximum number of digits accepted by the code entry
	CheatCodeLength = 6

	// CodeErrorDuration is how long a rejected code stays flagged
	CodeErrorDuration = 1 * time.Second
)

// Settings
const (
	DefaultMouseSensitivity = 1.0
	MinMouseSensitivity     = 0.1
	MaxMouseSensitivity     = 3.0
	MouseSensitivityStep    = 0.1
)
