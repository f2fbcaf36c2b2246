package system

import "github.com/lixenwraith/midnight-awake/parameter"

// PhaseTimerSystem advances the phase machine's deadlines and the dawn countdown
type PhaseTimerSystem struct {
	ctx *Context
}

// NewPhaseTimerSystem creates the phase timer system
func NewPhaseTimerSystem(ctx *Context) System {
	return &PhaseTimerSystem{ctx: ctx}
}

func (s *PhaseTimerSystem) Init() {}

func (s *PhaseTimerSystem) Name() string {
	return "phase_timer"
}

func (s *PhaseTimerSystem) Priority() int {
	return parameter.PriorityPhaseTimer
}

func (s *PhaseTimerSystem) Update(f *Frame) {
	s.ctx.Phases.Advance(f.DT)
}
