package render

import (
	"fmt"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/ui"
)

// Menu colours
var (
	rgbMenuBg     = RGB{10, 10, 12}
	rgbMenuText   = RGB{230, 230, 230}
	rgbMenuSelect = RGB{255, 255, 255}
	rgbLightBg    = RGB{255, 248, 235}
	rgbLightText  = RGB{30, 30, 30}
	pauseDim      = 0.7
)

// MenuRenderer draws the active menu page; over the map when paused, full screen otherwise
type MenuRenderer struct{}

func NewMenuRenderer() *MenuRenderer {
	return &MenuRenderer{}
}

func (r *MenuRenderer) IsVisible(ctx RenderContext) bool {
	return ctx.Menu != nil
}

func (r *MenuRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	w, h := buf.Bounds()
	scr := ctx.Menu

	bg, fg, sel := rgbMenuBg, rgbMenuText, rgbMenuSelect
	if scr.Light {
		bg, fg, sel = rgbLightBg, rgbLightText, RGBBlack
	}

	if ctx.State.Phase == engine.PhasePaused {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := buf.Get(x, y)
				buf.SetWithBg(x, y, c.Rune, c.Fg.Scale(1-pauseDim), c.Bg.Blend(bg, pauseDim))
			}
		}
	} else {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				buf.SetWithBg(x, y, ' ', fg, bg)
			}
		}
	}

	lines := 2 + len(scr.Body) + len(scr.Items)
	if len(scr.Body) > 0 {
		lines++
	}
	if scr.Hint != "" {
		lines += 2
	}
	y := max(0, (h-lines)/2)

	end := buf.CenterText(y, scr.Title, sel)
	for x := end - len([]rune(scr.Title)); x < end; x++ {
		buf.Bold(x, y)
	}
	y += 2

	for _, line := range scr.Body {
		buf.CenterText(y, line, fg)
		y++
	}
	if len(scr.Body) > 0 {
		y++
	}

	for _, it := range scr.Items {
		buf.CenterText(y, itemLabel(it), itemColor(it, fg, sel))
		y++
	}

	if scr.Hint != "" {
		buf.CenterText(y+1, scr.Hint, RGBDim)
	}
}

func itemLabel(it ui.Item) string {
	label := it.Label
	if it.Value != "" {
		label = fmt.Sprintf("%s  %s", it.Label, it.Value)
	}
	if it.Selected {
		return "> " + label + " <"
	}
	return label
}

func itemColor(it ui.Item, fg, sel RGB) RGB {
	switch {
	case it.Disabled:
		return RGBDim
	case it.Accent:
		return RGBRed
	case it.Selected:
		return sel
	}
	return fg
}
