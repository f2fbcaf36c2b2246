package engine

import (
	"sync"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// GameState is the shared application record read and written every frame
// One instance is constructed at startup and passed explicitly to the
// simulation and presentation layers; every field has a single logical writer
type GameState struct {
	mu sync.RWMutex

	// Phase is written only by PhaseMachine
	phase Phase

	// Vitals, clamped to [0, VitalMax] by the setters
	stamina           float64
	flashlightBattery float64
	flashlightOn      bool

	// World flags
	backDoorOpen     bool
	sideDoorOpen     bool
	lockedDoorHealth int
	dawnProgress     float64
	jumpscareActive  bool

	// Settings survive phase changes and runs
	mouseSensitivity float64

	// Cheats, toggles are ignored until unlocked
	cheatsUnlocked       bool
	cheatFlyMode         bool
	cheatDayTime         bool
	cheatInfiniteStamina bool
	cheatInfiniteBattery bool

	watchers watcherSet
}

// Snapshot is a value copy of GameState for presentation and subscribers
type Snapshot struct {
	Phase Phase

	Stamina           float64
	FlashlightBattery float64
	FlashlightOn      bool

	BackDoorOpen     bool
	SideDoorOpen     bool
	LockedDoorHealth int
	DawnProgress     float64
	JumpscareActive  bool

	MouseSensitivity float64

	CheatsUnlocked       bool
	CheatFlyMode         bool
	CheatDayTime         bool
	CheatInfiniteStamina bool
	CheatInfiniteBattery bool
}

// Option configures a GameState at construction
type Option func(*GameState)

// WithPhase starts the state in the given phase instead of WARNING
func WithPhase(p Phase) Option {
	return func(gs *GameState) { gs.phase = p }
}

// NewGameState creates the state with full vitals, closed doors and an intact locked door
func NewGameState(opts ...Option) *GameState {
	gs := &GameState{
		phase:            PhaseWarning,
		mouseSensitivity: parameter.DefaultMouseSensitivity,
	}
	gs.resetRunLocked()
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// update runs fn under the write lock and notifies subscribers afterwards
func (gs *GameState) update(fn func()) {
	gs.mu.Lock()
	fn()
	var snap Snapshot
	notify := gs.watchers.len() > 0
	if notify {
		snap = gs.snapshotLocked()
	}
	gs.mu.Unlock()

	if notify {
		gs.watchers.notify(snap)
	}
}

func (gs *GameState) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:                gs.phase,
		Stamina:              gs.stamina,
		FlashlightBattery:    gs.flashlightBattery,
		FlashlightOn:         gs.flashlightOn,
		BackDoorOpen:         gs.backDoorOpen,
		SideDoorOpen:         gs.sideDoorOpen,
		LockedDoorHealth:     gs.lockedDoorHealth,
		DawnProgress:         gs.dawnProgress,
		JumpscareActive:      gs.jumpscareActive,
		MouseSensitivity:     gs.mouseSensitivity,
		CheatsUnlocked:       gs.cheatsUnlocked,
		CheatFlyMode:         gs.cheatFlyMode,
		CheatDayTime:         gs.cheatDayTime,
		CheatInfiniteStamina: gs.cheatInfiniteStamina,
		CheatInfiniteBattery: gs.cheatInfiniteBattery,
	}
}

// Snapshot returns a consistent copy of every field
func (gs *GameState) Snapshot() Snapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.snapshotLocked()
}

// ResetRun restores per-run state for a new game; settings and cheats are kept
func (gs *GameState) ResetRun() {
	gs.update(gs.resetRunLocked)
}

func (gs *GameState) resetRunLocked() {
	gs.stamina = parameter.VitalMax
	gs.flashlightBattery = parameter.VitalMax
	gs.flashlightOn = false
	gs.backDoorOpen = false
	gs.sideDoorOpen = false
	gs.lockedDoorHealth = parameter.LockedDoorHealth
	gs.dawnProgress = 0
	gs.jumpscareActive = false
}

// ===== PHASE =====

// Phase returns the current game phase
func (gs *GameState) Phase() Phase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phase
}

// setPhase is reserved for PhaseMachine, which validates transitions
func (gs *GameState) setPhase(p Phase) {
	gs.update(func() { gs.phase = p })
}

// ===== VITALS =====

// Stamina returns the current stamina in [0,100]
func (gs *GameState) Stamina() float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.stamina
}

// SetStamina stores stamina clamped to [0,100]
func (gs *GameState) SetStamina(v float64) {
	gs.update(func() { gs.stamina = clampVital(v) })
}

// FlashlightBattery returns the current battery level in [0,100]
func (gs *GameState) FlashlightBattery() float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.flashlightBattery
}

// SetFlashlightBattery stores the battery clamped to [0,100]
// An empty battery switches the flashlight off
func (gs *GameState) SetFlashlightBattery(v float64) {
	gs.update(func() {
		gs.flashlightBattery = clampVital(v)
		if gs.flashlightBattery <= 0 {
			gs.flashlightOn = false
		}
	})
}

// FlashlightOn reports whether the flashlight is lit
func (gs *GameState) FlashlightOn() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.flashlightOn
}

// SetFlashlightOn switches the flashlight, refusing to light an empty battery
// Returns the resulting state
func (gs *GameState) SetFlashlightOn(on bool) bool {
	var result bool
	gs.update(func() {
		if on && gs.flashlightBattery <= 0 {
			on = false
		}
		gs.flashlightOn = on
		result = on
	})
	return result
}

func clampVital(v float64) float64 {
	switch {
	case v != v, v < 0: // NaN collapses to empty
		return 0
	case v > parameter.VitalMax:
		return parameter.VitalMax
	}
	return v
}

// ===== WORLD FLAGS =====

// BackDoorOpen reports the back door state
func (gs *GameState) BackDoorOpen() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.backDoorOpen
}

// ToggleBackDoor flips the back door and returns the new state
func (gs *GameState) ToggleBackDoor() bool {
	var open bool
	gs.update(func() {
		gs.backDoorOpen = !gs.backDoorOpen
		open = gs.backDoorOpen
	})
	return open
}

// SideDoorOpen reports the side door state
func (gs *GameState) SideDoorOpen() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.sideDoorOpen
}

// ToggleSideDoor flips the side door and returns the new state
func (gs *GameState) ToggleSideDoor() bool {
	var open bool
	gs.update(func() {
		gs.sideDoorOpen = !gs.sideDoorOpen
		open = gs.sideDoorOpen
	})
	return open
}

// LockedDoorHealth returns remaining kicks before the locked door breaks
func (gs *GameState) LockedDoorHealth() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.lockedDoorHealth
}

// KickLockedDoor removes one point of door health, flooring at 0
// Returns the remaining health
func (gs *GameState) KickLockedDoor() int {
	var health int
	gs.update(func() {
		if gs.lockedDoorHealth > 0 {
			gs.lockedDoorHealth--
		}
		health = gs.lockedDoorHealth
	})
	return health
}

// DawnProgress returns the normalized dawn countdown in [0,1]
func (gs *GameState) DawnProgress() float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.dawnProgress
}

// SetDawnProgress publishes dawn progress clamped to [0,1]
// Progress never moves backwards within a run
func (gs *GameState) SetDawnProgress(v float64) {
	gs.update(func() {
		switch {
		case v != v, v < 0:
			v = 0
		case v > 1:
			v = 1
		}
		if v > gs.dawnProgress {
			gs.dawnProgress = v
		}
	})
}

// JumpscareActive reports whether the scare visual is showing
func (gs *GameState) JumpscareActive() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.jumpscareActive
}

// SetJumpscareActive raises or clears the scare visual
func (gs *GameState) SetJumpscareActive(active bool) {
	gs.update(func() { gs.jumpscareActive = active })
}

// ===== SETTINGS =====

// MouseSensitivity returns the look sensitivity multiplier
func (gs *GameState) MouseSensitivity() float64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.mouseSensitivity
}

// SetMouseSensitivity stores sensitivity clamped to the settings range
func (gs *GameState) SetMouseSensitivity(v float64) {
	gs.update(func() {
		switch {
		case v != v, v < parameter.MinMouseSensitivity:
			v = parameter.MinMouseSensitivity
		case v > parameter.MaxMouseSensitivity:
			v = parameter.MaxMouseSensitivity
		}
		gs.mouseSensitivity = v
	})
}

// ===== CHEATS =====

// CheatsUnlocked reports whether the secret code was accepted
func (gs *GameState) CheatsUnlocked() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.cheatsUnlocked
}

// UnlockCheats accepts only the exact cheat code
func (gs *GameState) UnlockCheats(code string) bool {
	if code != parameter.CheatCode {
		return false
	}
	gs.update(func() { gs.cheatsUnlocked = true })
	return true
}

// CheatFlyMode reports the fly cheat
func (gs *GameState) CheatFlyMode() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.cheatFlyMode
}

// CheatDayTime reports the daylight cheat
func (gs *GameState) CheatDayTime() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.cheatDayTime
}

// CheatInfiniteStamina reports the infinite stamina cheat
func (gs *GameState) CheatInfiniteStamina() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.cheatInfiniteStamina
}

// CheatInfiniteBattery reports the infinite battery cheat
func (gs *GameState) CheatInfiniteBattery() bool {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.cheatInfiniteBattery
}

// ToggleCheatFlyMode flips the fly cheat when cheats are unlocked
func (gs *GameState) ToggleCheatFlyMode() bool {
	return gs.toggleCheat(&gs.cheatFlyMode)
}

// ToggleCheatDayTime flips the daylight cheat when cheats are unlocked
func (gs *GameState) ToggleCheatDayTime() bool {
	return gs.toggleCheat(&gs.cheatDayTime)
}

// ToggleCheatInfiniteStamina flips the stamina cheat when cheats are unlocked
func (gs *GameState) ToggleCheatInfiniteStamina() bool {
	return gs.toggleCheat(&gs.cheatInfiniteStamina)
}

// ToggleCheatInfiniteBattery flips the battery cheat when cheats are unlocked
func (gs *GameState) ToggleCheatInfiniteBattery() bool {
	return gs.toggleCheat(&gs.cheatInfiniteBattery)
}

func (gs *GameState) toggleCheat(flag *bool) bool {
	var value bool
	gs.update(func() {
		if gs.cheatsUnlocked {
			*flag = !*flag
		}
		value = *flag
	})
	return value
}
