package physics

import "github.com/lixenwraith/midnight-awake/parameter"

func clampPitch(pitch float64) float64 {
	if pitch > parameter.PitchLimit {
		return parameter.PitchLimit
	}
	if pitch < -parameter.PitchLimit {
		return -parameter.PitchLimit
	}
	return pitch
}
