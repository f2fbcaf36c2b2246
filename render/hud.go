package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
)

// HUD layout
const (
	hudBarWidth     = 10
	letterboxRows   = 2
	staminaLow      = 20.0
	staminaWarn     = 50.0
	HintLine        = "WASD: Move • SHIFT: Run • F: Action/Flashlight • E: Doors • ESC: Pause"
	BannerChase     = "RUN BACK TO THE FOREST"
	BannerWaiting   = "SURVIVE UNTIL DAWN"
	MutedIndicator  = "MUTED (M)"
	infiniteGlyph   = "∞"
	hudBarFull      = '█'
	hudBarEmpty     = '░'
	promptRowOffset = 3
)

// HUDRenderer draws vitals, banners and the interaction prompt over the map
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

func (r *HUDRenderer) IsVisible(ctx RenderContext) bool {
	switch ctx.State.Phase {
	case engine.PhaseCutscene, engine.PhaseGameplay, engine.PhaseChase, engine.PhaseWaitingForDawn:
		return true
	}
	return false
}

func (r *HUDRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	w, h := buf.Bounds()
	s := ctx.State

	if s.Phase == engine.PhaseCutscene {
		for y := 0; y < letterboxRows; y++ {
			for x := 0; x < w; x++ {
				buf.SetWithBg(x, y, ' ', RGBBlack, RGBBlack)
				buf.SetWithBg(x, h-1-y, ' ', RGBBlack, RGBBlack)
			}
		}
		return
	}

	if ctx.Muted {
		buf.Text(1, 0, MutedIndicator, RGBDim)
	}

	switch s.Phase {
	case engine.PhaseChase:
		x := buf.CenterText(1, BannerChase, RGBRed)
		for i := x - len(BannerChase); i < x; i++ {
			buf.Bold(i, 1)
		}
	case engine.PhaseWaitingForDawn:
		buf.CenterText(1, BannerWaiting, RGBOrange)
		bar := Bar(s.DawnProgress, hudBarWidth*2)
		buf.CenterText(2, bar, RGBOrange)
	}

	if ctx.Prompt != "" {
		buf.CenterText(h/2+promptRowOffset, ctx.Prompt, RGBWhite)
	}

	// Vitals, bottom left
	battery := fmt.Sprintf("FLASHLIGHT %3.0f%% ", s.FlashlightBattery)
	if s.CheatInfiniteBattery {
		battery = "FLASHLIGHT " + infiniteGlyph + "    "
	}
	batteryColor := RGBBattery
	if s.FlashlightBattery < parameter.BatteryLowThreshold && !s.CheatInfiniteBattery {
		batteryColor = RGBBatteryLo
	}
	x := buf.Text(1, h-3, battery, batteryColor)
	buf.Text(x, h-3, Bar(s.FlashlightBattery/parameter.VitalMax, hudBarWidth), batteryColor)

	staminaColor := RGBGreen
	switch {
	case s.Stamina < staminaLow:
		staminaColor = RGBRed
	case s.Stamina < staminaWarn:
		staminaColor = RGBOrange
	}
	x = buf.Text(1, h-2, "STMN            ", staminaColor)
	buf.Text(x, h-2, Bar(s.Stamina/parameter.VitalMax, hudBarWidth), staminaColor)

	buf.CenterText(h-1, HintLine, RGBDim)
}

// Bar renders fraction in [0,1] as a fixed-width block bar
func Bar(fraction float64, width int) string {
	fraction = max(0, min(1, fraction))
	filled := int(fraction*float64(width) + 0.5)
	return strings.Repeat(string(hudBarFull), filled) + strings.Repeat(string(hudBarEmpty), width-filled)
}
