package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// LocomotionSystem integrates the pose from intent
// Flying moves along the camera's own axes; walking is horizontal at eye height
type LocomotionSystem struct {
	ctx *Context
}

// NewLocomotionSystem creates the locomotion system
func NewLocomotionSystem(ctx *Context) System {
	return &LocomotionSystem{ctx: ctx}
}

func (s *LocomotionSystem) Init() {}

func (s *LocomotionSystem) Name() string {
	return "locomotion"
}

func (s *LocomotionSystem) Priority() int {
	return parameter.PriorityLocomotion
}

func (s *LocomotionSystem) Update(f *Frame) {
	if !f.Phase.IsActive() {
		return
	}
	t := s.ctx.Tuning
	in := f.Intent
	pose := &s.ctx.Pose

	if f.Fly {
		speed := t.FlySpeed
		if in.Sprint {
			speed = t.FlySprintSpeed
		}
		d := speed * f.Seconds
		if in.Forward {
			pose.TranslateLocal(mgl64.Vec3{0, 0, -d})
		}
		if in.Backward {
			pose.TranslateLocal(mgl64.Vec3{0, 0, d})
		}
		if in.Left {
			pose.TranslateLocal(mgl64.Vec3{-d, 0, 0})
		}
		if in.Right {
			pose.TranslateLocal(mgl64.Vec3{d, 0, 0})
		}
		if in.Up {
			pose.TranslateLocal(mgl64.Vec3{0, d, 0})
		}
		if in.Down {
			pose.TranslateLocal(mgl64.Vec3{0, -d, 0})
		}
		return
	}

	speed := t.WalkSpeed
	if f.Sprinting {
		speed = t.SprintSpeed
	}
	dir := mgl64.Vec3{
		boolAxis(in.Right) - boolAxis(in.Left),
		0,
		boolAxis(in.Backward) - boolAxis(in.Forward),
	}
	pose.Walk(dir, speed*f.Seconds)
	pose.Position[1] = t.EyeHeight
}

func boolAxis(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
