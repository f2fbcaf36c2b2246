package system

import (
	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
	"github.com/lixenwraith/midnight-awake/physics"
)

// PursuerSystem walks the monster toward the player during the chase
// It never catches; the chase ends only by escape
type PursuerSystem struct {
	ctx *Context
}

// NewPursuerSystem creates the pursuer system
func NewPursuerSystem(ctx *Context) System {
	return &PursuerSystem{ctx: ctx}
}

func (s *PursuerSystem) Init() {}

func (s *PursuerSystem) Name() string {
	return "pursuer"
}

func (s *PursuerSystem) Priority() int {
	return parameter.PriorityPursuer
}

func (s *PursuerSystem) Update(f *Frame) {
	if f.Phase != engine.PhaseChase {
		return
	}
	target := s.ctx.Pose.Position
	target[1] = s.ctx.Pursuer[1]
	s.ctx.Pursuer, _ = physics.MoveToward(s.ctx.Pursuer, target, s.ctx.Tuning.PursuerSpeed*f.Seconds)
}
