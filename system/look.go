package system

import "github.com/lixenwraith/midnight-awake/parameter"

// LookSystem applies pointer and look-key turning to the pose
type LookSystem struct {
	ctx *Context
}

// NewLookSystem creates the look system
func NewLookSystem(ctx *Context) System {
	return &LookSystem{ctx: ctx}
}

func (s *LookSystem) Init() {}

func (s *LookSystem) Name() string {
	return "look"
}

func (s *LookSystem) Priority() int {
	return parameter.PriorityLook
}

func (s *LookSystem) Update(f *Frame) {
	// Always drain so motion outside active phases does not pile up
	dx, dy := s.ctx.Input.ConsumeLook()
	if !f.Phase.IsActive() {
		return
	}

	t := s.ctx.Tuning
	turn := t.KeyTurnRate * f.Seconds / t.LookRadiansPerUnit
	if f.Intent.TurnLeft {
		dx -= turn
	}
	if f.Intent.TurnRight {
		dx += turn
	}
	if f.Intent.LookUp {
		dy -= turn
	}
	if f.Intent.LookDown {
		dy += turn
	}
	if dx == 0 && dy == 0 {
		return
	}
	s.ctx.Pose.ApplyLook(dx, dy, t.LookRadiansPerUnit)
}
