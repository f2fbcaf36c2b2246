package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

var rgbDebugBg = RGB{20, 20, 40}

// DebugRenderer lists the status metrics in the top-right corner
type DebugRenderer struct{}

func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{}
}

func (r *DebugRenderer) IsVisible(ctx RenderContext) bool {
	return len(ctx.Debug) > 0
}

func (r *DebugRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	w, _ := buf.Bounds()

	lines := make([]string, len(ctx.Debug))
	width := 0
	for i, e := range ctx.Debug {
		lines[i] = fmt.Sprintf(" %s: %s ", e.Key, e.Value)
		width = max(width, runewidth.StringWidth(lines[i]))
	}

	x0 := max(0, w-width)
	for i, line := range lines {
		for x := x0; x < w; x++ {
			buf.SetBgOnly(x, i, rgbDebugBg)
		}
		buf.Text(x0, i, line, RGBGreen)
	}
}
