package render

import (
	"math/rand"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
)

// Visual effect levels
const (
	NoiseNight = 0.3
	NoiseDay   = 0.1

	// Below this battery the flashlight stutters
	FlickerBattery = parameter.BatteryLowThreshold
	// Chance a flickering flashlight is dark on a given frame
	FlickerDropout = 0.2

	nightAmbient  = 0.04
	nightViewDist = 15.0
	dayViewDist   = 50.0
)

// Effects is the per-frame atmosphere derived from state
type Effects struct {
	Sky RGB
	Fog RGB

	// Ambient is the base light level in [0,1]
	Ambient float64
	// ViewDistance is where fog fully hides the scene
	ViewDistance float64

	Noise    float64
	Vignette float64
	Glitch   bool
	Flicker  bool

	// FlashlightLit is false on flicker dropout frames
	FlashlightLit bool
}

// ComputeEffects derives the atmosphere; rng only drives flicker dropout
func ComputeEffects(s engine.Snapshot, rng *rand.Rand) Effects {
	dawn := s.DawnProgress
	day := s.CheatDayTime

	base := colorNight
	if day {
		base = colorDaySky
	}
	e := Effects{
		Sky:     FromColorful(base.BlendRgb(colorDaySky, dawn)),
		Fog:     FromColorful(base.BlendRgb(colorDawnFog, dawn)),
		Noise:   NoiseNight,
		Glitch:  s.JumpscareActive,
		Flicker: s.FlashlightOn && s.FlashlightBattery < FlickerBattery && !s.CheatInfiniteBattery,
	}

	switch {
	case day:
		e.Ambient = 1
		e.ViewDistance = dayViewDist + dawn*100
	case dawn > 0:
		e.Ambient = 0.8*dawn + 0.2
		e.ViewDistance = dayViewDist + dawn*100
	default:
		e.Ambient = nightAmbient
		e.ViewDistance = nightViewDist
	}

	if day || dawn > 0.8 {
		e.Noise = NoiseDay
	}
	if !day && dawn < 0.5 {
		e.Vignette = 0.8 - dawn
	}

	e.FlashlightLit = s.FlashlightOn
	if e.Flicker && rng != nil && rng.Float64() < FlickerDropout {
		e.FlashlightLit = false
	}
	return e
}
