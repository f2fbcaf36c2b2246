package audio

import (
	"errors"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// Cue names one sound in the fixed roster
type Cue uint8

const (
	CueFootsteps Cue = iota // looped, pitch follows sprint
	CueDoor                 // door open/close
	CueHeartbeat            // looped while winded
	CueWhisper              // ambient one-shot during gameplay
	CueScream               // jumpscare, and the slowed chase loop
	CueKick                 // locked door impact
	CueWind                 // ambient loop
	cueCount
)

// Cues lists the roster in declaration order
var Cues = [...]Cue{CueFootsteps, CueDoor, CueHeartbeat, CueWhisper, CueScream, CueKick, CueWind}

var cueNames = [cueCount]string{"footsteps", "door", "heartbeat", "whisper", "scream", "kick", "wind"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// DefaultVolume returns the mix level a cue is configured with
func (c Cue) DefaultVolume() float64 {
	switch c {
	case CueFootsteps:
		return parameter.FootstepVolume
	case CueDoor:
		return parameter.DoorVolume
	case CueHeartbeat:
		return parameter.HeartbeatVolume
	case CueWhisper:
		return parameter.WhisperVolume
	case CueScream:
		return parameter.ScreamVolume
	case CueKick:
		return parameter.KickVolume
	case CueWind:
		return parameter.WindVolume
	}
	return 0
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio output unavailable")
)

// Player accepts fire-and-forget commands for the cue roster
// Implementations never block the frame and swallow backend failures
type Player interface {
	Play(c Cue)
	Pause(c Cue)
	Rewind(c Cue)
	SetPitch(c Cue, ratio float64)
	SetLoop(c Cue, loop bool)
	SetVolume(c Cue, volume float64)
	IsPlaying(c Cue) bool
}

// Silent is the no-op Player used when no output device is available
type Silent struct{}

func (Silent) Play(Cue)               {}
func (Silent) Pause(Cue)              {}
func (Silent) Rewind(Cue)             {}
func (Silent) SetPitch(Cue, float64)  {}
func (Silent) SetLoop(Cue, bool)      {}
func (Silent) SetVolume(Cue, float64) {}
func (Silent) IsPlaying(Cue) bool     { return false }

var _ Player = Silent{}
