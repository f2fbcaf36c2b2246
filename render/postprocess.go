package render

import (
	"math/rand"
)

// Film grain strength at Noise == 1
const (
	grainDensity = 0.25
	grainAmount  = 40
)

// PostProcessRenderer adds film grain over the map; stronger at night
type PostProcessRenderer struct {
	rng *rand.Rand
}

func NewPostProcessRenderer(rng *rand.Rand) *PostProcessRenderer {
	return &PostProcessRenderer{rng: rng}
}

func (r *PostProcessRenderer) IsVisible(ctx RenderContext) bool {
	return ctx.Menu == nil && ctx.Effects.Noise > 0
}

func (r *PostProcessRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	w, h := buf.Bounds()
	density := ctx.Effects.Noise * grainDensity
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.rng.Float64() >= density {
				continue
			}
			c := buf.Get(x, y)
			delta := uint8(r.rng.Float64() * ctx.Effects.Noise * grainAmount)
			buf.SetBgOnly(x, y, c.Bg.Max(RGB{delta, delta, delta}))
		}
	}
}
