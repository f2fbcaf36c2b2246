package system

import "github.com/lixenwraith/midnight-awake/parameter"

// ShakeSystem applies and recovers the kick camera dip
type ShakeSystem struct {
	ctx *Context
}

// NewShakeSystem creates the shake system
func NewShakeSystem(ctx *Context) System {
	return &ShakeSystem{ctx: ctx}
}

func (s *ShakeSystem) Init() {}

func (s *ShakeSystem) Name() string {
	return "shake"
}

func (s *ShakeSystem) Priority() int {
	return parameter.PriorityShake
}

func (s *ShakeSystem) Update(f *Frame) {
	s.ctx.Pose.Offset = s.ctx.Shake.Update(f.DT)
}
