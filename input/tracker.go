package input

import (
	"sync"

	"github.com/lixenwraith/midnight-awake/engine"
)

// Tracker turns raw key edges into the intent record and one-shot actions
// Movement presses are honored only in active phases; releases always clear
type Tracker struct {
	mu sync.Mutex

	state *engine.GameState
	table *KeyTable

	intent Intent
	held   map[Key]bool

	lookDX float64
	lookDY float64

	handlers map[Action]func()
}

// NewTracker creates a tracker reading phase and cheats from state
func NewTracker(state *engine.GameState, table *KeyTable) *Tracker {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Tracker{
		state:    state,
		table:    table,
		held:     make(map[Key]bool),
		handlers: make(map[Action]func()),
	}
}

// Handle binds fn to a one-shot action
func (t *Tracker) Handle(a Action, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers[a] = fn
}

// KeyDown processes a press; auto-repeat of a held key does not re-trigger actions
func (t *Tracker) KeyDown(k Key) {
	entry := t.table.Lookup(k)

	t.mu.Lock()
	repeat := t.held[k]
	t.held[k] = true

	phase := t.state.Phase()
	var fire func()

	switch entry.Behavior {
	case BehaviorHold:
		if !phase.IsActive() {
			break
		}
		if (entry.Action == ActionUp || entry.Action == ActionDown) && !t.state.CheatFlyMode() {
			break
		}
		if f := t.intent.flag(entry.Action); f != nil {
			*f = true
		}

	case BehaviorTrigger:
		if repeat {
			break
		}
		switch entry.Action {
		case ActionPause:
			if phase == engine.PhaseGameplay || phase == engine.PhasePaused {
				fire = t.handlers[ActionPause]
			}
		case ActionUse, ActionInteract:
			if phase.IsActive() {
				fire = t.handlers[entry.Action]
			}
		}
	}
	t.mu.Unlock()

	// Handlers run unlocked so they may call back into the tracker
	if fire != nil {
		fire()
	}
}

// KeyUp clears the key's flag regardless of phase
func (t *Tracker) KeyUp(k Key) {
	entry := t.table.Lookup(k)

	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.held, k)
	if entry.Behavior != BehaviorHold {
		return
	}
	if f := t.intent.flag(entry.Action); f != nil {
		*f = false
	}
}

// Look accumulates a pointer delta scaled by the sensitivity setting
func (t *Tracker) Look(dx, dy float64) {
	if !t.state.Phase().IsActive() {
		return
	}
	s := t.state.MouseSensitivity()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.lookDX += dx * s
	t.lookDY += dy * s
}

// ConsumeLook returns and clears the accumulated look delta
func (t *Tracker) ConsumeLook() (dx, dy float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	dx, dy = t.lookDX, t.lookDY
	t.lookDX, t.lookDY = 0, 0
	return dx, dy
}

// Intent returns a copy of the current intent record
func (t *Tracker) Intent() Intent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.intent
}

// Reset releases every key and drops pending look input
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.intent = Intent{}
	t.held = make(map[Key]bool)
	t.lookDX, t.lookDY = 0, 0
}
