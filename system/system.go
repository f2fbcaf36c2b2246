package system

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/midnight-awake/audio"
	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/input"
	"github.com/lixenwraith/midnight-awake/parameter"
	"github.com/lixenwraith/midnight-awake/physics"
	"github.com/lixenwraith/midnight-awake/status"
)

// System is one ordered step of the per-frame simulation
type System interface {
	Name() string
	Priority() int
	// Init resets per-run state
	Init()
	Update(f *Frame)
}

// Context holds the collaborators and simulation-owned actors shared by every system
type Context struct {
	State  *engine.GameState
	Phases *engine.PhaseMachine
	Input  *input.Tracker
	Audio  *audio.Reactor
	Tuning *parameter.Tuning
	Log    logrus.FieldLogger

	// Pose is owned by the simulation and mirrored to the renderer
	Pose  physics.Pose
	Shake physics.Shake

	// Pursuer is the monster position, parked at its lair outside the chase
	Pursuer mgl64.Vec3

	// Status is optional; when set a diagnostics system feeds it every frame
	Status *status.Registry
}

// Frame is per-update scratch passed down the system chain
type Frame struct {
	DT      time.Duration
	Seconds float64

	// Phase is captured at frame start; transitions made mid-frame apply next frame
	Phase  engine.Phase
	Intent input.Intent
	Fly    bool

	// Written by vitals, read by audio and locomotion
	Moving    bool
	Sprinting bool

	// Halted stops the remaining systems after a hard interrupt
	Halted bool
}
