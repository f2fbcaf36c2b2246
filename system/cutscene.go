package system

import (
	"time"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
	"github.com/lixenwraith/midnight-awake/physics"
)

// CutsceneSystem moves the camera from the bed to standing during the wake-up scene
type CutsceneSystem struct {
	ctx     *Context
	elapsed time.Duration
}

// NewCutsceneSystem creates the cutscene camera system
func NewCutsceneSystem(ctx *Context) System {
	return &CutsceneSystem{ctx: ctx}
}

// Init rewinds the camera move; called on entering CUTSCENE
func (s *CutsceneSystem) Init() {
	s.elapsed = 0
}

func (s *CutsceneSystem) Name() string {
	return "cutscene"
}

func (s *CutsceneSystem) Priority() int {
	return parameter.PriorityCutscene
}

func (s *CutsceneSystem) Update(f *Frame) {
	if f.Phase != engine.PhaseCutscene {
		return
	}
	t := s.ctx.Tuning
	s.elapsed += f.DT

	progress := physics.Smoothstep(float64(s.elapsed) / float64(t.CutsceneCameraDuration))
	s.ctx.Pose.Position = physics.LerpVec(t.BedPosition, t.StandPosition, progress)
	s.ctx.Pose.LookAt(physics.LerpVec(t.BedLookTarget, t.StandLookTarget, progress))
}
