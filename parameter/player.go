package parameter

// Vitals
const (
	// VitalMax is the ceiling for stamina and flashlight battery
	VitalMax = 100.0

	// StaminaDrainRate is stamina lost per second while sprinting
	StaminaDrainRate = 25.0

	// StaminaRegenRate is stamina regained per second when not sprinting
	StaminaRegenRate = 15.0

	// BatteryDrainRate is battery lost per second with the flashlight on
	BatteryDrainRate = 2.0

	// BatteryChargeRate is battery regained per second with the flashlight off
	BatteryChargeRate = 1.0

	// BatteryLowThreshold starts the flashlight flicker
	BatteryLowThreshold = 20.0
)

// Locomotion speeds in world units per second
const (
	WalkSpeed      = 2.5
	SprintSpeed    = 5.0
	FlySpeed       = 8.0
	FlySprintSpeed = 20.0

	// EyeHeight pins the camera height in walking mode
	EyeHeight = 1.7
)

// Pursuer
const (
	// PursuerSpeed is slightly under sprint so the chase is escapable
	PursuerSpeed = 4.8
)
