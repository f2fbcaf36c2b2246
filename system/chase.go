package system

import (
	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
)

// ChaseSystem ends the chase once the player is back inside the safe depth
type ChaseSystem struct {
	ctx *Context
}

// NewChaseSystem creates the chase escape system
func NewChaseSystem(ctx *Context) System {
	return &ChaseSystem{ctx: ctx}
}

func (s *ChaseSystem) Init() {}

func (s *ChaseSystem) Name() string {
	return "chase"
}

func (s *ChaseSystem) Priority() int {
	return parameter.PriorityChase
}

func (s *ChaseSystem) Update(f *Frame) {
	if f.Phase != engine.PhaseChase {
		return
	}
	z := s.ctx.Pose.Position[2]
	if z <= s.ctx.Tuning.ChaseEscapeZ {
		return
	}
	if s.ctx.Phases.Escape() {
		s.ctx.Audio.StopChase()
		s.ctx.Log.WithField("z", z).Info("escaped the chase")
	}
}
