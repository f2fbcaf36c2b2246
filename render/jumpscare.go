package render

import (
	"math/rand"
)

// Glitch tears; each frame redraws a random set of horizontal bands
const (
	glitchBandChance = 0.35
	glitchCellChance = 0.6
)

var glitchRunes = []rune{'▓', '▒', '░', '█', '#', '%'}

// Face drawn at the centre of the jumpscare
var scareFace = []string{
	"  ▄██████▄  ",
	" ██ ◉  ◉ ██ ",
	" ██  ▄▄  ██ ",
	" ██ ▀▀▀▀ ██ ",
	"  ▀██████▀  ",
}

// JumpscareRenderer floods the frame with red glitch while the jumpscare is active
type JumpscareRenderer struct {
	rng *rand.Rand
}

func NewJumpscareRenderer(rng *rand.Rand) *JumpscareRenderer {
	return &JumpscareRenderer{rng: rng}
}

func (r *JumpscareRenderer) IsVisible(ctx RenderContext) bool {
	return ctx.Effects.Glitch
}

func (r *JumpscareRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	w, h := buf.Bounds()
	for y := 0; y < h; y++ {
		band := r.rng.Float64() < glitchBandChance
		for x := 0; x < w; x++ {
			if !band || r.rng.Float64() >= glitchCellChance {
				buf.SetWithBg(x, y, ' ', RGBBlack, RGBDarkRed)
				continue
			}
			ch := glitchRunes[r.rng.Intn(len(glitchRunes))]
			buf.SetWithBg(x, y, ch, RGBRed, RGBBlack)
		}
	}

	top := (h - len(scareFace)) / 2
	for i, line := range scareFace {
		buf.CenterText(top+i, line, RGBWhite)
	}
}
