package parameter

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Tuning carries every design parameter the simulation reads at runtime
// Defaults mirror the package constants; a tuning file may override any field
type Tuning struct {
	WarningDuration        time.Duration `yaml:"warning_duration"`
	CutsceneDuration       time.Duration `yaml:"cutscene_duration"`
	CutsceneCameraDuration time.Duration `yaml:"cutscene_camera_duration"`
	ChaseDelay             time.Duration `yaml:"chase_delay"`
	DawnDuration           time.Duration `yaml:"dawn_duration"`
	JumpscareDuration      time.Duration `yaml:"jumpscare_duration"`

	StaminaDrainRate  float64 `yaml:"stamina_drain_rate"`
	StaminaRegenRate  float64 `yaml:"stamina_regen_rate"`
	BatteryDrainRate  float64 `yaml:"battery_drain_rate"`
	BatteryChargeRate float64 `yaml:"battery_charge_rate"`

	WalkSpeed      float64 `yaml:"walk_speed"`
	SprintSpeed    float64 `yaml:"sprint_speed"`
	FlySpeed       float64 `yaml:"fly_speed"`
	FlySprintSpeed float64 `yaml:"fly_sprint_speed"`
	EyeHeight      float64 `yaml:"eye_height"`
	PursuerSpeed   float64 `yaml:"pursuer_speed"`

	ChaseEscapeZ float64 `yaml:"chase_escape_z"`
	BoundaryX    float64 `yaml:"boundary_x"`
	KickRadius   float64 `yaml:"kick_radius"`
	DoorRadius   float64 `yaml:"door_radius"`

	LookRadiansPerUnit float64 `yaml:"look_radians_per_unit"`
	KeyTurnRate        float64 `yaml:"key_turn_rate"`

	HeartbeatStaminaThreshold float64       `yaml:"heartbeat_stamina_threshold"`
	WhisperInterval           time.Duration `yaml:"whisper_interval"`
	WhisperRetry              time.Duration `yaml:"whisper_retry"`
	WhisperChance             float64       `yaml:"whisper_chance"`

	// Fixtures and keyframes in world coordinates (x, y, z), -Z is away from the house
	BackDoor    mgl64.Vec3 `yaml:"back_door"`
	SideDoor    mgl64.Vec3 `yaml:"side_door"`
	LockedDoor  mgl64.Vec3 `yaml:"locked_door"`
	PursuerLair mgl64.Vec3 `yaml:"pursuer_lair"`

	BedPosition     mgl64.Vec3 `yaml:"bed_position"`
	StandPosition   mgl64.Vec3 `yaml:"stand_position"`
	BedLookTarget   mgl64.Vec3 `yaml:"bed_look_target"`
	StandLookTarget mgl64.Vec3 `yaml:"stand_look_target"`
}

// DefaultTuning returns the shipped parameter set
func DefaultTuning() *Tuning {
	return &Tuning{
		WarningDuration:        WarningDuration,
		CutsceneDuration:       CutsceneDuration,
		CutsceneCameraDuration: CutsceneCameraDuration,
		ChaseDelay:             ChaseDelay,
		DawnDuration:           DawnDuration,
		JumpscareDuration:      JumpscareDuration,

		StaminaDrainRate:  StaminaDrainRate,
		StaminaRegenRate:  StaminaRegenRate,
		BatteryDrainRate:  BatteryDrainRate,
		BatteryChargeRate: BatteryChargeRate,

		WalkSpeed:      WalkSpeed,
		SprintSpeed:    SprintSpeed,
		FlySpeed:       FlySpeed,
		FlySprintSpeed: FlySprintSpeed,
		EyeHeight:      EyeHeight,
		PursuerSpeed:   PursuerSpeed,

		ChaseEscapeZ: ChaseEscapeZ,
		BoundaryX:    BoundaryX,
		KickRadius:   KickRadius,
		DoorRadius:   DoorRadius,

		LookRadiansPerUnit: LookRadiansPerUnit,
		KeyTurnRate:        KeyTurnRate,

		HeartbeatStaminaThreshold: HeartbeatStaminaThreshold,
		WhisperInterval:           WhisperInterval,
		WhisperRetry:              WhisperRetry,
		WhisperChance:             WhisperChance,

		BackDoor:    mgl64.Vec3{0, 1.5, -5},
		SideDoor:    mgl64.Vec3{5, 1.5, 0},
		LockedDoor:  mgl64.Vec3{5, 1.5, -325},
		PursuerLair: mgl64.Vec3{5, 0, -325},

		BedPosition:     mgl64.Vec3{0, 0.8, 2},
		StandPosition:   mgl64.Vec3{0, EyeHeight, 0},
		BedLookTarget:   mgl64.Vec3{0, 10, 2},
		StandLookTarget: mgl64.Vec3{0, 1.5, -5},
	}
}

// Validate reports the first field that would break the simulation contract
// Rates may be zero (a frozen vital is legal) but never negative or NaN; durations and the look scale must be positive
func (t *Tuning) Validate() error {
	durations := map[string]time.Duration{
		"warning_duration":         t.WarningDuration,
		"cutscene_duration":        t.CutsceneDuration,
		"cutscene_camera_duration": t.CutsceneCameraDuration,
		"dawn_duration":            t.DawnDuration,
		"jumpscare_duration":       t.JumpscareDuration,
		"whisper_interval":         t.WhisperInterval,
	}
	for name, d := range durations {
		if d <= 0 {
			return &InvalidFieldError{Field: name, Reason: "must be positive"}
		}
	}
	if t.ChaseDelay < 0 || t.WhisperRetry < 0 {
		return &InvalidFieldError{Field: "chase_delay/whisper_retry", Reason: "must not be negative"}
	}

	rates := map[string]float64{
		"stamina_drain_rate":  t.StaminaDrainRate,
		"stamina_regen_rate":  t.StaminaRegenRate,
		"battery_drain_rate":  t.BatteryDrainRate,
		"battery_charge_rate": t.BatteryChargeRate,
		"walk_speed":          t.WalkSpeed,
		"sprint_speed":        t.SprintSpeed,
		"fly_speed":           t.FlySpeed,
		"fly_sprint_speed":    t.FlySprintSpeed,
		"pursuer_speed":       t.PursuerSpeed,
		"kick_radius":         t.KickRadius,
		"door_radius":         t.DoorRadius,
		"boundary_x":          t.BoundaryX,
		"key_turn_rate":       t.KeyTurnRate,
	}
	for name, v := range rates {
		if !(v >= 0) {
			return &InvalidFieldError{Field: name, Reason: "must not be negative"}
		}
	}
	// Look turning divides by the scale
	if !(t.LookRadiansPerUnit > 0) {
		return &InvalidFieldError{Field: "look_radians_per_unit", Reason: "must be positive"}
	}
	if t.WhisperChance < 0 || t.WhisperChance > 1 {
		return &InvalidFieldError{Field: "whisper_chance", Reason: "must be within [0,1]"}
	}
	return nil
}

// InvalidFieldError names a tuning field that failed validation
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return "tuning " + e.Field + ": " + e.Reason
}
