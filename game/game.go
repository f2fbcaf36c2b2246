// Package game runs the frame loop: poll the terminal, route input, simulate, then render
package game

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/midnight-awake/audio"
	"github.com/lixenwraith/midnight-awake/config"
	"github.com/lixenwraith/midnight-awake/core"
	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/input"
	"github.com/lixenwraith/midnight-awake/parameter"
	"github.com/lixenwraith/midnight-awake/render"
	"github.com/lixenwraith/midnight-awake/status"
	"github.com/lixenwraith/midnight-awake/system"
	"github.com/lixenwraith/midnight-awake/ui"
	"github.com/lixenwraith/midnight-awake/world"
)

// Options wires a Game; zero values select defaults
type Options struct {
	Config config.Config
	Tuning *parameter.Tuning
	Layout *world.Layout
	Audio  audio.Player
	Log    logrus.FieldLogger
	// Status enables the debug overlay when set
	Status *status.Registry
	Time   engine.Clock
	// State starts from an existing store, used by tests to skip the menus
	State *engine.GameState
}

// Game owns every collaborator of one process run
type Game struct {
	screen tcell.Screen
	log    logrus.FieldLogger
	time   engine.Clock

	state   *engine.GameState
	phases  *engine.PhaseMachine
	tracker *input.Tracker
	keys    *input.TerminalKeys
	sim     *system.Simulation
	reactor *audio.Reactor
	menu    *ui.Menu
	orch    *render.RenderOrchestrator
	player  audio.Player
	status  *status.Registry

	interval time.Duration
	last     time.Time
	muted    bool
	ambient  bool
}

// New builds the game around screen, which must already be initialized
func New(screen tcell.Screen, opts Options) *Game {
	if opts.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Log = l
	}
	if opts.Tuning == nil {
		opts.Tuning = parameter.DefaultTuning()
	}
	if opts.Time == nil {
		opts.Time = engine.SystemClock{}
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Config.FPS <= 0 {
		opts.Config.FPS = 60
	}
	seed := opts.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.Layout == nil {
		opts.Layout = world.Generate(world.Config{Trees: world.DefaultConfig().Trees, Seed: seed}, opts.Tuning)
	}
	rng := rand.New(rand.NewSource(seed))

	gs := opts.State
	if gs == nil {
		gs = engine.NewGameState()
	}
	if opts.Config.Sensitivity > 0 {
		gs.SetMouseSensitivity(opts.Config.Sensitivity)
	}

	phases := engine.NewPhaseMachine(gs, opts.Tuning, opts.Log)
	tracker := input.NewTracker(gs, nil)
	reactor := audio.NewReactor(opts.Audio, rng, opts.Tuning)

	sim := system.NewSimulation(&system.Context{
		State:  gs,
		Phases: phases,
		Input:  tracker,
		Audio:  reactor,
		Tuning: opts.Tuning,
		Log:    opts.Log,
		Status: opts.Status,
	})

	g := &Game{
		screen:   screen,
		log:      opts.Log,
		time:     opts.Time,
		state:    gs,
		phases:   phases,
		tracker:  tracker,
		keys:     input.NewTerminalKeys(opts.Config.KeyHold),
		sim:      sim,
		reactor:  reactor,
		menu:     ui.NewMenu(gs, phases, opts.Log),
		orch:     render.NewDefaultOrchestrator(screen, opts.Layout, rng),
		player:   opts.Audio,
		status:   opts.Status,
		interval: opts.Config.FrameInterval(),
		muted:    opts.Config.Muted,
	}
	if m, ok := opts.Audio.(audio.Muter); ok {
		g.muted = m.Muted()
	}
	g.last = g.time.Now()
	return g
}

func (g *Game) State() *engine.GameState       { return g.state }
func (g *Game) Simulation() *system.Simulation { return g.sim }
func (g *Game) Menu() *ui.Menu                 { return g.menu }

// Run drives the loop until ctx is cancelled or the player quits
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventChannelSize)
	done := make(chan struct{})
	defer close(done)

	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	names := make([]string, 0, len(g.sim.Systems()))
	for _, sys := range g.sim.Systems() {
		names = append(names, sys.Name())
	}
	g.last = g.time.Now()
	g.log.WithFields(logrus.Fields{
		"interval": g.interval,
		"systems":  names,
	}).Info("frame loop started")
	for {
		select {
		case <-ctx.Done():
			g.log.WithField("frames", g.sim.Frames()).Info("frame loop stopped")
			return nil
		case ev := <-events:
			if !g.HandleEvent(ev) {
				g.log.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			g.Tick()
		}
	}
}

// Tick steps the game by the wall time since the previous tick
func (g *Game) Tick() {
	now := g.time.Now()
	dt := now.Sub(g.last)
	g.last = now
	g.Step(dt)
}

// Step advances input, menus and simulation by dt, then renders one frame
// dt is clamped so a stalled terminal cannot skip timers or teleport the player
func (g *Game) Step(dt time.Duration) {
	dt = max(0, min(dt, parameter.MaxFrameDelta))

	now := g.time.Now()
	g.keys.Sweep(now, g.tracker)
	g.menu.Advance(dt)
	g.sim.Update(dt)
	g.render(now)
}

// HandleEvent routes one terminal event and reports false when the player quits
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)
	case *tcell.EventMouse:
		g.keys.Mouse(ev, g.tracker)
	case *tcell.EventResize:
		w, h := ev.Size()
		g.orch.Resize(w, h)
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	// The wind starts with the first key press
	if !g.ambient {
		g.ambient = true
		g.reactor.StartAmbient()
	}

	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') {
		if muted, ok := audio.ToggleMute(g.player); ok {
			g.muted = muted
			g.log.WithField("muted", muted).Info("audio mute toggled")
		}
		return true
	}

	if g.menu.Active() && g.menu.HandleKey(input.Translate(ev)) {
		return true
	}
	g.keys.Feed(ev, g.time.Now(), g.tracker)
	return true
}

func (g *Game) render(now time.Time) {
	rc := render.RenderContext{
		Time:    now,
		State:   g.state.Snapshot(),
		Pose:    g.sim.Pose(),
		Pursuer: g.sim.Pursuer(),
		Muted:   g.muted,
	}
	if g.menu.Active() {
		rc.Menu = g.menu.Screen()
	} else if p := g.sim.Prompt(); p != system.PromptNone {
		rc.Prompt = p.String()
	}
	if g.status != nil {
		rc.Debug = g.status.Entries()
	}
	g.orch.RenderFrame(rc)
}
