package game

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/lixenwraith/midnight-awake/audio"
	"github.com/lixenwraith/midnight-awake/config"
	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
	"github.com/lixenwraith/midnight-awake/status"
	"github.com/lixenwraith/midnight-awake/world"
)

const frame = 16 * time.Millisecond

// mutableRecorder adds a mute toggle to the recording player
type mutableRecorder struct {
	*audio.Recorder
	muted bool
}

func (m *mutableRecorder) SetMuted(muted bool) { m.muted = muted }
func (m *mutableRecorder) Muted() bool         { return m.muted }

type fixture struct {
	game   *Game
	screen tcell.Screen
	clock  *engine.ManualClock
	player *mutableRecorder
}

func newFixture(t *testing.T, state *engine.GameState) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	logger, _ := test.NewNullLogger()
	clock := engine.NewManualClock(time.Unix(1000, 0))
	player := &mutableRecorder{Recorder: audio.NewRecorder()}
	g := New(screen, Options{
		Config: config.Config{FPS: 60, Seed: 9, Sensitivity: 1},
		Layout: world.Generate(world.Config{Trees: 30, Seed: 9}, nil),
		Audio:  player,
		Log:    logger,
		Status: status.NewRegistry(),
		Time:   clock,
		State:  state,
	})
	return &fixture{game: g, screen: screen, clock: clock, player: player}
}

// run advances the mock clock and steps frame by frame
func (f *fixture) run(total time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += frame {
		f.clock.Advance(frame)
		f.game.Tick()
	}
}

func (f *fixture) key(k tcell.Key) bool {
	return f.game.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (f *fixture) rune(r rune) bool {
	return f.game.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestWarningToGameplay(t *testing.T) {
	f := newFixture(t, nil)
	gs := f.game.State()

	f.key(tcell.KeyEnter)
	if gs.Phase() != engine.PhaseWarning {
		t.Fatal("warning dismissed before the countdown")
	}

	f.run(parameter.WarningDuration + 100*time.Millisecond)
	f.key(tcell.KeyEnter)
	if gs.Phase() != engine.PhaseMenu {
		t.Fatalf("phase = %s, want MENU", gs.Phase())
	}

	f.key(tcell.KeyEnter)
	if gs.Phase() != engine.PhaseCutscene {
		t.Fatalf("phase = %s, want CUTSCENE", gs.Phase())
	}

	f.run(parameter.CutsceneDuration + 100*time.Millisecond)
	if gs.Phase() != engine.PhaseGameplay {
		t.Fatalf("phase = %s, want GAMEPLAY", gs.Phase())
	}
	t.Log("✓ warning → menu → cutscene → gameplay through key events")
}

func TestQuitKey(t *testing.T) {
	f := newFixture(t, nil)
	if f.key(tcell.KeyCtrlC) {
		t.Error("ctrl+c should quit")
	}
	if !f.rune('x') {
		t.Error("unbound key should not quit")
	}
}

func TestAmbientStartsOnFirstKey(t *testing.T) {
	f := newFixture(t, nil)
	if f.player.Count("play", audio.CueWind) != 0 {
		t.Fatal("wind started before any input")
	}
	f.rune('x')
	f.rune('y')
	if n := f.player.Count("play", audio.CueWind); n != 1 {
		t.Errorf("wind played %d times, want 1", n)
	}
}

func TestMuteToggle(t *testing.T) {
	f := newFixture(t, engine.NewGameState(engine.WithPhase(engine.PhaseGameplay)))
	f.rune('m')
	if !f.player.muted {
		t.Fatal("m should mute")
	}
	f.run(frame)
	found := false
	for x := 0; x < 20; x++ {
		if r, _, _, _ := f.screen.GetContent(x, 0); r == 'M' {
			found = true
			break
		}
	}
	if !found {
		t.Error("mute indicator not drawn")
	}
	f.rune('M')
	if f.player.muted {
		t.Error("second toggle should unmute")
	}
}

func TestWalkAndRelease(t *testing.T) {
	f := newFixture(t, engine.NewGameState(engine.WithPhase(engine.PhaseGameplay)))
	start := f.game.Simulation().Pose().Position

	f.rune('w')
	f.run(200 * time.Millisecond)
	moved := f.game.Simulation().Pose().Position
	if moved[2] >= start[2] {
		t.Fatalf("w should move toward -Z: %v -> %v", start, moved)
	}

	// No repeat within the hold timeout releases the key
	f.run(parameter.KeyHoldTimeout + 100*time.Millisecond)
	if f.game.tracker.Intent().Forward {
		t.Fatal("forward still held after the hold timeout")
	}
	stopped := f.game.Simulation().Pose().Position
	f.run(200 * time.Millisecond)
	if f.game.Simulation().Pose().Position != stopped {
		t.Error("player kept moving after release")
	}
	t.Log("✓ terminal press holds, silence releases")
}

func TestStepClampsDelta(t *testing.T) {
	f := newFixture(t, engine.NewGameState(engine.WithPhase(engine.PhaseGameplay)))
	start := f.game.Simulation().Pose().Position

	f.rune('w')
	f.game.Step(5 * time.Second)

	dist := f.game.Simulation().Pose().Position.Sub(start).Len()
	want := parameter.WalkSpeed * parameter.MaxFrameDelta.Seconds()
	if math.Abs(dist-want) > 1e-9 {
		t.Errorf("moved %.4f, want %.4f", dist, want)
	}
}

func TestPauseRoundTrip(t *testing.T) {
	f := newFixture(t, engine.NewGameState(engine.WithPhase(engine.PhaseGameplay)))
	gs := f.game.State()

	f.key(tcell.KeyEscape)
	if gs.Phase() != engine.PhasePaused {
		t.Fatalf("phase = %s, want PAUSED", gs.Phase())
	}
	f.run(frame)
	if r, _, _, _ := f.screen.GetContent(0, 0); r == 0 {
		t.Error("nothing drawn")
	}

	// Let the held escape expire, then press again to resume
	f.run(parameter.KeyHoldTimeout + 100*time.Millisecond)
	f.key(tcell.KeyEscape)
	if gs.Phase() != engine.PhaseGameplay {
		t.Fatalf("phase = %s, want GAMEPLAY", gs.Phase())
	}
	t.Log("✓ escape pauses and resumes through the menu fall-through")
}

func TestRenderGameplay(t *testing.T) {
	f := newFixture(t, engine.NewGameState(engine.WithPhase(engine.PhaseGameplay)))
	f.run(frame)

	if r, _, _, _ := f.screen.GetContent(40, 12); r != '▲' {
		t.Errorf("centre = %q, want player marker", r)
	}
	if r, _, _, _ := f.screen.GetContent(1, 22); r != 'S' {
		t.Errorf("stamina label = %q", r)
	}
}

func TestMouseLook(t *testing.T) {
	f := newFixture(t, engine.NewGameState(engine.WithPhase(engine.PhaseGameplay)))
	yaw := f.game.Simulation().Pose().Yaw

	f.game.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	f.game.HandleEvent(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	f.run(frame)

	if got := f.game.Simulation().Pose().Yaw; got >= yaw {
		t.Errorf("moving right should turn right: yaw %.3f -> %.3f", yaw, got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f := newFixture(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.game.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	f := newFixture(t, nil)
	done := make(chan error, 1)
	go func() { done <- f.game.Run(context.Background()) }()

	f.screen.(tcell.SimulationScreen).InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop on ctrl+c")
	}
}
