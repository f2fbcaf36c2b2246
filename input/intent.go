package input

// Intent is the player's current desired movement, read once per frame
type Intent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sprint   bool
	Up       bool
	Down     bool

	TurnLeft  bool
	TurnRight bool
	LookUp    bool
	LookDown  bool
}

// Moving reports directional input; vertical flags count only in fly mode
func (i Intent) Moving(fly bool) bool {
	if i.Forward || i.Backward || i.Left || i.Right {
		return true
	}
	return fly && (i.Up || i.Down)
}

// flag returns the intent field bound to a held action
func (i *Intent) flag(a Action) *bool {
	switch a {
	case ActionForward:
		return &i.Forward
	case ActionBackward:
		return &i.Backward
	case ActionLeft:
		return &i.Left
	case ActionRight:
		return &i.Right
	case ActionSprint:
		return &i.Sprint
	case ActionUp:
		return &i.Up
	case ActionDown:
		return &i.Down
	case ActionTurnLeft:
		return &i.TurnLeft
	case ActionTurnRight:
		return &i.TurnRight
	case ActionLookUp:
		return &i.LookUp
	case ActionLookDown:
		return &i.LookDown
	}
	return nil
}
