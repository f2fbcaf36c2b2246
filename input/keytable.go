package input

// Action is the semantic meaning bound to a key
type Action uint8

const (
	ActionNone Action = iota

	// Held movement flags
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight
	ActionSprint
	ActionUp
	ActionDown

	// Held look flags for keyboard turning
	ActionTurnLeft
	ActionTurnRight
	ActionLookUp
	ActionLookDown

	// One-shot triggers
	ActionPause
	ActionUse      // F: kick or flashlight
	ActionInteract // E: doors
)

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone    KeyBehavior = iota
	BehaviorHold                // flag set on press, cleared on release
	BehaviorTrigger             // fires once per press
)

// KeyEntry describes a key's behavior
type KeyEntry struct {
	Behavior KeyBehavior
	Action   Action
}

// KeyTable maps keys to actions
type KeyTable struct {
	Keys map[Key]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[Key]KeyEntry{
			KeyW:           {BehaviorHold, ActionForward},
			KeyS:           {BehaviorHold, ActionBackward},
			KeyA:           {BehaviorHold, ActionLeft},
			KeyD:           {BehaviorHold, ActionRight},
			KeyShiftLeft:   {BehaviorHold, ActionSprint},
			KeySpace:       {BehaviorHold, ActionUp},
			KeyControlLeft: {BehaviorHold, ActionDown},

			KeyArrowLeft:  {BehaviorHold, ActionTurnLeft},
			KeyArrowRight: {BehaviorHold, ActionTurnRight},
			KeyArrowUp:    {BehaviorHold, ActionLookUp},
			KeyArrowDown:  {BehaviorHold, ActionLookDown},

			KeyEscape:    {BehaviorTrigger, ActionPause},
			KeyBackquote: {BehaviorTrigger, ActionPause},
			KeyF:         {BehaviorTrigger, ActionUse},
			KeyE:         {BehaviorTrigger, ActionInteract},
		},
	}
}

// Lookup returns the entry for k, BehaviorNone when unbound
func (kt *KeyTable) Lookup(k Key) KeyEntry {
	return kt.Keys[k]
}
