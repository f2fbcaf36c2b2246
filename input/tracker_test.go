package input

import (
	"testing"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
)

func newTracker(phase engine.Phase) (*engine.GameState, *Tracker) {
	gs := engine.NewGameState(engine.WithPhase(phase))
	return gs, NewTracker(gs, nil)
}

// TestMovementGatedByPhase verifies presses only register in active phases
func TestMovementGatedByPhase(t *testing.T) {
	tests := []struct {
		phase engine.Phase
		want  bool
	}{
		{engine.PhaseWarning, false},
		{engine.PhaseMenu, false},
		{engine.PhaseCutscene, false},
		{engine.PhasePaused, false},
		{engine.PhaseGameplay, true},
		{engine.PhaseChase, true},
		{engine.PhaseWaitingForDawn, true},
		{engine.PhaseDawn, true},
	}

	for _, tt := range tests {
		_, tr := newTracker(tt.phase)
		tr.KeyDown(KeyW)
		if got := tr.Intent().Forward; got != tt.want {
			t.Errorf("%s: forward = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

// TestReleaseAlwaysClears verifies no stuck keys across phase changes
func TestReleaseAlwaysClears(t *testing.T) {
	gs, tr := newTracker(engine.PhaseGameplay)
	pm := engine.NewPhaseMachine(gs, nil, nil)

	tr.KeyDown(KeyD)
	tr.KeyDown(KeyShiftLeft)
	pm.TogglePause()

	tr.KeyUp(KeyD)
	tr.KeyUp(KeyShiftLeft)
	if i := tr.Intent(); i.Right || i.Sprint {
		t.Errorf("flags stuck after release in PAUSED: %+v", i)
	}
	t.Logf("✓ Release clears flags outside active phases")
}

// TestVerticalNeedsFlyCheat verifies up/down only register under the fly cheat
func TestVerticalNeedsFlyCheat(t *testing.T) {
	gs, tr := newTracker(engine.PhaseGameplay)

	tr.KeyDown(KeySpace)
	tr.KeyDown(KeyControlLeft)
	if i := tr.Intent(); i.Up || i.Down {
		t.Fatalf("vertical flags set without fly cheat: %+v", i)
	}
	tr.KeyUp(KeySpace)
	tr.KeyUp(KeyControlLeft)

	gs.UnlockCheats(parameter.CheatCode)
	gs.ToggleCheatFlyMode()
	tr.KeyDown(KeySpace)
	if !tr.Intent().Up {
		t.Error("up not set with fly cheat")
	}
	if !tr.Intent().Moving(true) || tr.Intent().Moving(false) {
		t.Error("vertical movement should count only when flying")
	}
}

// TestPauseKeyOnlyInGameplayOrPaused verifies the pause trigger gating
func TestPauseKeyOnlyInGameplayOrPaused(t *testing.T) {
	for _, key := range []Key{KeyEscape, KeyBackquote} {
		gs, tr := newTracker(engine.PhaseGameplay)
		pm := engine.NewPhaseMachine(gs, nil, nil)
		tr.Handle(ActionPause, func() { pm.TogglePause() })

		tr.KeyDown(key)
		tr.KeyUp(key)
		if gs.Phase() != engine.PhasePaused {
			t.Fatalf("%s did not pause", key)
		}
		tr.KeyDown(key)
		tr.KeyUp(key)
		if gs.Phase() != engine.PhaseGameplay {
			t.Fatalf("%s did not resume", key)
		}
	}

	calls := 0
	_, tr := newTracker(engine.PhaseChase)
	tr.Handle(ActionPause, func() { calls++ })
	tr.KeyDown(KeyEscape)
	if calls != 0 {
		t.Error("pause handler fired during CHASE")
	}
}

// TestTriggerIgnoresRepeat verifies held-key repeats fire an action once
func TestTriggerIgnoresRepeat(t *testing.T) {
	_, tr := newTracker(engine.PhaseGameplay)
	uses := 0
	tr.Handle(ActionUse, func() { uses++ })

	tr.KeyDown(KeyF)
	tr.KeyDown(KeyF)
	tr.KeyDown(KeyF)
	if uses != 1 {
		t.Errorf("uses = %d, want 1", uses)
	}
	tr.KeyUp(KeyF)
	tr.KeyDown(KeyF)
	if uses != 2 {
		t.Errorf("uses = %d after re-press, want 2", uses)
	}
}

func TestInteractGatedByPhase(t *testing.T) {
	_, tr := newTracker(engine.PhaseMenu)
	called := false
	tr.Handle(ActionInteract, func() { called = true })
	tr.KeyDown(KeyE)
	if called {
		t.Error("interact fired in MENU")
	}
}

// TestLookScaledBySensitivity verifies pointer delta scaling and consumption
func TestLookScaledBySensitivity(t *testing.T) {
	gs, tr := newTracker(engine.PhaseGameplay)
	gs.SetMouseSensitivity(2)

	tr.Look(10, -4)
	tr.Look(5, 0)
	dx, dy := tr.ConsumeLook()
	if dx != 30 || dy != -8 {
		t.Errorf("look = (%v,%v), want (30,-8)", dx, dy)
	}
	if dx, dy = tr.ConsumeLook(); dx != 0 || dy != 0 {
		t.Error("look not cleared after consume")
	}

	_, tr = newTracker(engine.PhaseMenu)
	tr.Look(10, 10)
	if dx, dy = tr.ConsumeLook(); dx != 0 || dy != 0 {
		t.Error("look accumulated outside active phases")
	}
}

func TestTrackerReset(t *testing.T) {
	_, tr := newTracker(engine.PhaseGameplay)
	tr.KeyDown(KeyW)
	tr.Look(3, 3)
	tr.Reset()
	if tr.Intent() != (Intent{}) {
		t.Error("intent not cleared")
	}
	if dx, dy := tr.ConsumeLook(); dx != 0 || dy != 0 {
		t.Error("look not cleared")
	}
}
