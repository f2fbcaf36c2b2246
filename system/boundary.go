package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
)

// BoundarySystem scares the player back to the menu when they leave the map sideways
type BoundarySystem struct {
	ctx *Context
}

// NewBoundarySystem creates the boundary jumpscare system
func NewBoundarySystem(ctx *Context) System {
	return &BoundarySystem{ctx: ctx}
}

func (s *BoundarySystem) Init() {}

func (s *BoundarySystem) Name() string {
	return "boundary"
}

func (s *BoundarySystem) Priority() int {
	return parameter.PriorityBoundary
}

// Update is a hard interrupt: it halts the rest of the frame so nothing moves the reset pose
func (s *BoundarySystem) Update(f *Frame) {
	if f.Phase != engine.PhaseGameplay || f.Fly {
		return
	}
	x := s.ctx.Pose.Position[0]
	if math.Abs(x) <= s.ctx.Tuning.BoundaryX {
		return
	}
	if !s.ctx.Phases.Jumpscare() {
		return
	}
	s.ctx.Audio.Scare()
	s.ctx.Pose.Position = mgl64.Vec3{}
	s.ctx.Pose.Offset = mgl64.Vec3{}
	f.Halted = true
	s.ctx.Log.WithField("x", x).Warn("left the map, jumpscare")
}
