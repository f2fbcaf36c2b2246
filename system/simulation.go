package system

import (
	"io"
	"runtime/debug"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/input"
	"github.com/lixenwraith/midnight-awake/parameter"
	"github.com/lixenwraith/midnight-awake/physics"
)

// Simulation runs the ordered systems once per frame
// Update never returns an error and never panics out of a frame
type Simulation struct {
	ctx     *Context
	systems []System
	frames  uint64
}

// NewSimulation wires the default systems and the phase hooks they depend on
func NewSimulation(ctx *Context) *Simulation {
	if ctx.Tuning == nil {
		ctx.Tuning = parameter.DefaultTuning()
	}
	if ctx.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		ctx.Log = l
	}

	s := &Simulation{ctx: ctx}
	for _, sys := range []System{
		NewBatterySystem(ctx),
		NewCutsceneSystem(ctx),
		NewPhaseTimerSystem(ctx),
		NewLookSystem(ctx),
		NewVitalsSystem(ctx),
		NewAudioSystem(ctx),
		NewChaseSystem(ctx),
		NewBoundarySystem(ctx),
		NewLocomotionSystem(ctx),
		NewPursuerSystem(ctx),
		NewShakeSystem(ctx),
	} {
		s.Register(sys)
	}
	if ctx.Status != nil {
		s.Register(NewDiagnosticsSystem(ctx, ctx.Status))
	}

	ctx.Pursuer = ctx.Tuning.PursuerLair
	ctx.Pose.Reset(ctx.Tuning.StandPosition, ctx.Tuning.StandLookTarget)

	ctx.Phases.OnEnter(engine.PhaseCutscene, func(engine.Phase) {
		for _, sys := range s.systems {
			sys.Init()
		}
		ctx.Shake = physics.Shake{}
		ctx.Pose.Reset(ctx.Tuning.BedPosition, ctx.Tuning.BedLookTarget)
		ctx.Pursuer = ctx.Tuning.PursuerLair
		ctx.Input.Reset()
	})
	ctx.Phases.OnEnter(engine.PhaseChase, func(engine.Phase) {
		ctx.Audio.StartChase()
		ctx.Log.Info("door broken, chase started")
	})
	ctx.Phases.OnEnter(engine.PhaseMenu, func(engine.Phase) {
		ctx.Input.Reset()
	})

	ctx.Input.Handle(input.ActionUse, s.Action)
	ctx.Input.Handle(input.ActionInteract, func() { s.Interact() })
	ctx.Input.Handle(input.ActionPause, func() { ctx.Phases.TogglePause() })

	return s
}

// Register adds a system, keeping the list ordered by priority
// Equal priorities run in registration order
func (s *Simulation) Register(sys System) {
	s.systems = append(s.systems, sys)
	sort.SliceStable(s.systems, func(i, j int) bool {
		return s.systems[i].Priority() < s.systems[j].Priority()
	})
}

// Systems returns the ordered system list
func (s *Simulation) Systems() []System {
	return s.systems
}

// Update advances the simulation by dt
func (s *Simulation) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.frames++

	f := &Frame{
		DT:      dt,
		Seconds: dt.Seconds(),
		Phase:   s.ctx.State.Phase(),
		Intent:  s.ctx.Input.Intent(),
		Fly:     s.ctx.State.CheatFlyMode(),
	}

	for _, sys := range s.systems {
		if f.Halted {
			break
		}
		s.safeRun(sys, f)
	}
}

// safeRun isolates a panicking system so the rest of the frame still runs
func (s *Simulation) safeRun(sys System, f *Frame) {
	defer func() {
		if r := recover(); r != nil {
			s.ctx.Log.WithFields(logrus.Fields{
				"system": sys.Name(),
				"panic":  r,
				"frame":  s.frames,
				"stack":  string(debug.Stack()),
			}).Error("system panic recovered")
		}
	}()
	sys.Update(f)
}

// Frames returns the number of updates run
func (s *Simulation) Frames() uint64 {
	return s.frames
}

// Pose returns a copy of the player pose for presentation
func (s *Simulation) Pose() physics.Pose {
	return s.ctx.Pose
}

// Pursuer returns the monster position
func (s *Simulation) Pursuer() mgl64.Vec3 {
	return s.ctx.Pursuer
}
