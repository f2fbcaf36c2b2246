package render

import (
	"strings"
	"testing"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/ui"
)

func TestBar(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "░░░░"},
		{0.5, "██░░"},
		{1, "████"},
		{1.7, "████"},
		{-1, "░░░░"},
	}
	for _, tt := range tests {
		if got := Bar(tt.fraction, 4); got != tt.want {
			t.Errorf("Bar(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

func hudFrame(s engine.Snapshot, prompt string) *RenderBuffer {
	buf := NewRenderBuffer(80, 24)
	buf.Clear(RGBDim)
	NewHUDRenderer().Render(RenderContext{Width: 80, Height: 24, State: s, Prompt: prompt}, buf)
	return buf
}

func TestHUDBanners(t *testing.T) {
	tests := []struct {
		name  string
		phase engine.Phase
		row   int
		want  string
	}{
		{"chase", engine.PhaseChase, 1, BannerChase},
		{"waiting", engine.PhaseWaitingForDawn, 1, BannerWaiting},
		{"hint", engine.PhaseGameplay, 23, HintLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := hudFrame(engine.Snapshot{Phase: tt.phase, Stamina: 100, FlashlightBattery: 100}, "")
			if !strings.Contains(rowText(buf, tt.row), tt.want) {
				t.Errorf("row %d = %q, want %q", tt.row, rowText(buf, tt.row), tt.want)
			}
		})
	}
}

func TestHUDVitals(t *testing.T) {
	buf := hudFrame(engine.Snapshot{Phase: engine.PhaseGameplay, Stamina: 50, FlashlightBattery: 75}, "[E] Open door")

	if row := rowText(buf, 21); !strings.Contains(row, "FLASHLIGHT  75%") {
		t.Errorf("battery row = %q", row)
	}
	if row := rowText(buf, 22); !strings.Contains(row, "STMN") || !strings.Contains(row, Bar(0.5, hudBarWidth)) {
		t.Errorf("stamina row = %q", row)
	}
	if row := rowText(buf, 24/2+promptRowOffset); !strings.Contains(row, "[E] Open door") {
		t.Errorf("prompt row = %q", row)
	}

	inf := hudFrame(engine.Snapshot{Phase: engine.PhaseGameplay, CheatInfiniteBattery: true}, "")
	if row := rowText(inf, 21); !strings.Contains(row, "FLASHLIGHT "+infiniteGlyph) {
		t.Errorf("infinite battery row = %q", row)
	}
	t.Log("✓ vitals and prompt are drawn")
}

func TestHUDLetterbox(t *testing.T) {
	buf := hudFrame(engine.Snapshot{Phase: engine.PhaseCutscene}, "")
	for _, y := range []int{0, 1, 22, 23} {
		if c := buf.Get(40, y); c.Bg != RGBBlack {
			t.Errorf("row %d bg = %v, want black", y, c.Bg)
		}
	}
	if strings.Contains(rowText(buf, 23), "WASD") {
		t.Error("cutscene should not show the control hint")
	}
}

func TestHUDVisibility(t *testing.T) {
	r := NewHUDRenderer()
	for phase, want := range map[engine.Phase]bool{
		engine.PhaseWarning:        false,
		engine.PhaseMenu:           false,
		engine.PhaseCutscene:       true,
		engine.PhaseGameplay:       true,
		engine.PhasePaused:         false,
		engine.PhaseChase:          true,
		engine.PhaseWaitingForDawn: true,
		engine.PhaseDawn:           false,
	} {
		if got := r.IsVisible(RenderContext{State: engine.Snapshot{Phase: phase}}); got != want {
			t.Errorf("%s: visible = %v, want %v", phase, got, want)
		}
	}
}

func TestMenuRenderer(t *testing.T) {
	scr := &ui.Screen{
		Title: "PAUSED",
		Items: []ui.Item{
			{Label: "RESUME", Selected: true},
			{Label: "MOUSE SENSITIVITY", Value: "1.0"},
			{Label: "CHEATS", Disabled: true},
		},
	}
	buf := NewRenderBuffer(60, 20)
	r := NewMenuRenderer()
	ctx := RenderContext{Width: 60, Height: 20, State: engine.Snapshot{Phase: engine.PhaseMenu}, Menu: scr}
	if !r.IsVisible(ctx) {
		t.Fatal("menu should be visible with a screen")
	}
	r.Render(ctx, buf)

	var all strings.Builder
	for y := 0; y < 20; y++ {
		all.WriteString(rowText(buf, y))
		all.WriteByte('\n')
	}
	out := all.String()
	for _, want := range []string{"PAUSED", "> RESUME <", "MOUSE SENSITIVITY  1.0", "CHEATS"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q:\n%s", want, out)
		}
	}

	light := NewRenderBuffer(60, 20)
	r.Render(RenderContext{State: engine.Snapshot{Phase: engine.PhaseDawn}, Menu: &ui.Screen{Title: "You Survived.", Light: true}}, light)
	if c := light.Get(0, 0); c.Bg != rgbLightBg {
		t.Errorf("light screen bg = %v", c.Bg)
	}
	if r.IsVisible(RenderContext{}) {
		t.Error("menu visible without a screen")
	}
}
