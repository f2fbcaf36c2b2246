package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// EnterFunc runs after a transition into a phase, receiving the phase that was left
type EnterFunc func(from Phase)

// PhaseMachine owns every phase change and the timers that drive autonomous ones
// Timers are deadline fields advanced by Advance, so a phase change clears them
// synchronously and no callback can fire against a stale phase
// Driven from the frame loop goroutine; not safe for concurrent use
type PhaseMachine struct {
	state  *GameState
	tuning *parameter.Tuning
	log    logrus.FieldLogger

	warningElapsed time.Duration
	dawnElapsed    time.Duration

	cutscene  Deadline
	chase     Deadline
	jumpscare Deadline

	hooks map[Phase][]EnterFunc
}

// NewPhaseMachine binds the machine to the store
// A nil tuning uses defaults; a nil logger discards output
func NewPhaseMachine(state *GameState, tuning *parameter.Tuning, log logrus.FieldLogger) *PhaseMachine {
	if tuning == nil {
		tuning = parameter.DefaultTuning()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &PhaseMachine{
		state:  state,
		tuning: tuning,
		log:    log.WithField("component", "phase"),
		hooks:  make(map[Phase][]EnterFunc),
	}
}

// Phase returns the current phase
func (m *PhaseMachine) Phase() Phase {
	return m.state.Phase()
}

// OnEnter registers fn to run after every transition into phase
func (m *PhaseMachine) OnEnter(phase Phase, fn EnterFunc) {
	m.hooks[phase] = append(m.hooks[phase], fn)
}

// transition applies one edge of the table, returning false for illegal edges
func (m *PhaseMachine) transition(to Phase, reason string) bool {
	from := m.state.Phase()
	if !CanTransition(from, to) {
		m.log.WithFields(logrus.Fields{
			"from":   from.String(),
			"to":     to.String(),
			"reason": reason,
		}).Debug("transition ignored")
		return false
	}

	// Kick-to-chase deadline only survives the GAMEPLAY/PAUSED pair
	if to != PhaseGameplay && to != PhasePaused {
		m.chase.Clear()
	}
	if from == PhaseCutscene {
		m.cutscene.Clear()
	}

	switch to {
	case PhaseCutscene:
		m.cutscene.Arm(m.tuning.CutsceneDuration)
		m.jumpscare.Clear()
	case PhaseWaitingForDawn:
		m.dawnElapsed = 0
	}

	m.state.setPhase(to)
	m.log.WithFields(logrus.Fields{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	}).Info("phase transition")

	for _, fn := range m.hooks[to] {
		fn(from)
	}
	return true
}

// WarningRemaining returns how long the warning screen must still be shown
func (m *PhaseMachine) WarningRemaining() time.Duration {
	if m.state.Phase() != PhaseWarning {
		return 0
	}
	left := m.tuning.WarningDuration - m.warningElapsed
	if left < 0 {
		return 0
	}
	return left
}

// DismissWarning leaves WARNING once the mandatory wait has passed
func (m *PhaseMachine) DismissWarning() bool {
	if m.state.Phase() != PhaseWarning || m.WarningRemaining() > 0 {
		return false
	}
	return m.transition(PhaseMenu, "warning dismissed")
}

// StartGame begins a new run: resets per-run state and plays the wake-up cutscene
func (m *PhaseMachine) StartGame() bool {
	if m.state.Phase() != PhaseMenu {
		return false
	}
	m.state.ResetRun()
	return m.transition(PhaseCutscene, "start game")
}

// CutsceneRemaining returns the time until the cutscene hands control to the player
func (m *PhaseMachine) CutsceneRemaining() time.Duration {
	return m.cutscene.Remaining()
}

// TogglePause flips between GAMEPLAY and PAUSED; no-op in any other phase
func (m *PhaseMachine) TogglePause() bool {
	switch m.state.Phase() {
	case PhaseGameplay:
		return m.transition(PhasePaused, "pause")
	case PhasePaused:
		return m.transition(PhaseGameplay, "resume")
	}
	return false
}

// ReturnToMenu leaves the pause menu or the dawn screen
func (m *PhaseMachine) ReturnToMenu() bool {
	switch m.state.Phase() {
	case PhasePaused, PhaseDawn:
		return m.transition(PhaseMenu, "main menu")
	}
	return false
}

// ScheduleChase arms the delayed GAMEPLAY to CHASE transition
func (m *PhaseMachine) ScheduleChase(delay time.Duration) bool {
	if m.state.Phase() != PhaseGameplay {
		return false
	}
	m.chase.Arm(delay)
	m.log.WithField("delay", delay).Debug("chase scheduled")
	return true
}

// ChasePending reports whether a kick-to-chase deadline is armed
func (m *PhaseMachine) ChasePending() bool {
	return m.chase.Armed()
}

// Jumpscare raises the scare flag and forces GAMEPLAY back to MENU
func (m *PhaseMachine) Jumpscare() bool {
	if m.state.Phase() != PhaseGameplay {
		return false
	}
	m.state.SetJumpscareActive(true)
	m.jumpscare.Arm(m.tuning.JumpscareDuration)
	return m.transition(PhaseMenu, "boundary jumpscare")
}

// Escape ends the chase once the player is back in the safe zone
func (m *PhaseMachine) Escape() bool {
	if m.state.Phase() != PhaseChase {
		return false
	}
	return m.transition(PhaseWaitingForDawn, "escaped")
}

// Advance ticks every phase timer by dt
func (m *PhaseMachine) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	if m.jumpscare.Tick(dt) {
		m.state.SetJumpscareActive(false)
	}

	switch m.state.Phase() {
	case PhaseWarning:
		m.warningElapsed += dt
	case PhaseCutscene:
		if m.cutscene.Tick(dt) {
			m.transition(PhaseGameplay, "cutscene finished")
		}
	case PhaseGameplay:
		if m.chase.Tick(dt) {
			m.transition(PhaseChase, "locked door broken")
		}
	case PhaseWaitingForDawn:
		m.AdvanceDawn(dt)
	}
}

// AdvanceDawn accumulates the dawn countdown and publishes normalized progress
// Only WAITING_FOR_DAWN advances it; at full progress the machine enters DAWN
func (m *PhaseMachine) AdvanceDawn(dt time.Duration) {
	if m.state.Phase() != PhaseWaitingForDawn || dt <= 0 {
		return
	}
	m.dawnElapsed += dt
	progress := float64(m.dawnElapsed) / float64(m.tuning.DawnDuration)
	if progress > 1 {
		progress = 1
	}
	m.state.SetDawnProgress(progress)
	if progress >= 1 {
		m.transition(PhaseDawn, "dawn")
	}
}
