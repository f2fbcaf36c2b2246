package engine

import (
	"errors"
	"fmt"
)

// Field names a GameState entry for string-keyed access
type Field string

const (
	FieldPhase                Field = "phase"
	FieldStamina              Field = "stamina"
	FieldFlashlightBattery    Field = "flashlightBattery"
	FieldFlashlightOn         Field = "isFlashlightOn"
	FieldBackDoorOpen         Field = "isBackDoorOpen"
	FieldSideDoorOpen         Field = "isSideDoorOpen"
	FieldLockedDoorHealth     Field = "lockedHouseDoorHealth"
	FieldDawnProgress         Field = "dawnProgress"
	FieldJumpscareActive      Field = "isJumpscareActive"
	FieldMouseSensitivity     Field = "mouseSensitivity"
	FieldCheatsUnlocked       Field = "areCheatsUnlocked"
	FieldCheatFlyMode         Field = "cheatFlyMode"
	FieldCheatDayTime         Field = "cheatDayTime"
	FieldCheatInfiniteStamina Field = "cheatInfiniteStamina"
	FieldCheatInfiniteBattery Field = "cheatInfiniteBattery"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrFieldType     = errors.New("wrong value type for field")
	ErrReadOnlyField = errors.New("field is read-only")
)

// Get returns the current value of a field
func (gs *GameState) Get(f Field) (any, error) {
	s := gs.Snapshot()
	switch f {
	case FieldPhase:
		return s.Phase, nil
	case FieldStamina:
		return s.Stamina, nil
	case FieldFlashlightBattery:
		return s.FlashlightBattery, nil
	case FieldFlashlightOn:
		return s.FlashlightOn, nil
	case FieldBackDoorOpen:
		return s.BackDoorOpen, nil
	case FieldSideDoorOpen:
		return s.SideDoorOpen, nil
	case FieldLockedDoorHealth:
		return s.LockedDoorHealth, nil
	case FieldDawnProgress:
		return s.DawnProgress, nil
	case FieldJumpscareActive:
		return s.JumpscareActive, nil
	case FieldMouseSensitivity:
		return s.MouseSensitivity, nil
	case FieldCheatsUnlocked:
		return s.CheatsUnlocked, nil
	case FieldCheatFlyMode:
		return s.CheatFlyMode, nil
	case FieldCheatDayTime:
		return s.CheatDayTime, nil
	case FieldCheatInfiniteStamina:
		return s.CheatInfiniteStamina, nil
	case FieldCheatInfiniteBattery:
		return s.CheatInfiniteBattery, nil
	}
	return nil, fmt.Errorf("get %q: %w", f, ErrUnknownField)
}

// Set writes a field through its typed setter so clamping and gating still apply
// Phase, door health and cheat unlock have dedicated operations and are read-only here
func (gs *GameState) Set(f Field, value any) error {
	switch f {
	case FieldPhase, FieldLockedDoorHealth, FieldCheatsUnlocked:
		return fmt.Errorf("set %q: %w", f, ErrReadOnlyField)

	case FieldStamina, FieldFlashlightBattery, FieldDawnProgress, FieldMouseSensitivity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("set %q to %T: %w", f, value, ErrFieldType)
		}
		switch f {
		case FieldStamina:
			gs.SetStamina(v)
		case FieldFlashlightBattery:
			gs.SetFlashlightBattery(v)
		case FieldDawnProgress:
			gs.SetDawnProgress(v)
		case FieldMouseSensitivity:
			gs.SetMouseSensitivity(v)
		}
		return nil

	case FieldFlashlightOn, FieldBackDoorOpen, FieldSideDoorOpen, FieldJumpscareActive,
		FieldCheatFlyMode, FieldCheatDayTime, FieldCheatInfiniteStamina, FieldCheatInfiniteBattery:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("set %q to %T: %w", f, value, ErrFieldType)
		}
		gs.setBool(f, v)
		return nil
	}
	return fmt.Errorf("set %q: %w", f, ErrUnknownField)
}

// setBool maps boolean fields onto their toggles when the target differs
func (gs *GameState) setBool(f Field, v bool) {
	switch f {
	case FieldFlashlightOn:
		gs.SetFlashlightOn(v)
	case FieldJumpscareActive:
		gs.SetJumpscareActive(v)
	case FieldBackDoorOpen:
		if gs.BackDoorOpen() != v {
			gs.ToggleBackDoor()
		}
	case FieldSideDoorOpen:
		if gs.SideDoorOpen() != v {
			gs.ToggleSideDoor()
		}
	case FieldCheatFlyMode:
		if gs.CheatFlyMode() != v {
			gs.ToggleCheatFlyMode()
		}
	case FieldCheatDayTime:
		if gs.CheatDayTime() != v {
			gs.ToggleCheatDayTime()
		}
	case FieldCheatInfiniteStamina:
		if gs.CheatInfiniteStamina() != v {
			gs.ToggleCheatInfiniteStamina()
		}
	case FieldCheatInfiniteBattery:
		if gs.CheatInfiniteBattery() != v {
			gs.ToggleCheatInfiniteBattery()
		}
	}
}
