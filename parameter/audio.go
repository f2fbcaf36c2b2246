package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate      = 44100
	AudioBufferDuration  = 100 * time.Millisecond
	AudioResampleQuality = 4
)

// Cue volumes (linear 0..1)
const (
	FootstepVolume  = 0.45
	DoorVolume      = 0.75
	HeartbeatVolume = 0.8
	WhisperVolume   = 0.5
	ScreamVolume    = 1.0
	KickVolume      = 1.0
	WindVolume      = 0.3
)

// Cue pitches (playback rate)
const (
	FootstepWalkPitch   = 0.8
	FootstepSprintPitch = 1.5
	ChasePitch          = 0.5
)

// Reactions
const (
	// HeartbeatStaminaThreshold starts the heartbeat loop below this stamina
	HeartbeatStaminaThreshold = 50.0

	// WhisperInterval is the minimum quiet time before a whisper may fire
	WhisperInterval = 20 * time.Second

	// WhisperRetry is where the timer restarts when the draw declines to fire
	WhisperRetry = 10 * time.Second

	// WhisperChance is the probability a whisper fires once the interval passed
	WhisperChance = 0.3
)
