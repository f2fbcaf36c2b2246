package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBWhite     = RGB{255, 255, 255}
	RGBDim       = RGB{90, 90, 90}
	RGBFaint     = RGB{50, 50, 50}
	RGBRed       = RGB{220, 38, 38}
	RGBDarkRed   = RGB{60, 0, 0}
	RGBGreen     = RGB{34, 197, 94}
	RGBOrange    = RGB{253, 186, 116}
	RGBBattery   = RGB{254, 249, 195}
	RGBBatteryLo = RGB{113, 63, 18}

	RGBTree      = RGB{20, 70, 30}
	RGBTrunk     = RGB{60, 40, 20}
	RGBRoad      = RGB{110, 110, 110}
	RGBGround    = RGB{25, 25, 25}
	RGBWall      = RGB{150, 140, 130}
	RGBHouse     = RGB{120, 120, 120}
	RGBBed       = RGB{140, 110, 160}
	RGBDoor      = RGB{160, 110, 60}
	RGBMonster   = RGB{255, 30, 30}
	RGBPlayer    = RGB{255, 255, 200}
	RGBFlashBeam = RGB{255, 250, 210}
)

// Sky and fog keyframes
var (
	colorNight   = colorful.Color{}
	colorDaySky  = mustHex("#87CEEB")
	colorDawnFog = mustHex("#ffcc80")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful converts a colorful color, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Scale multiplies every channel by f in [0,1]
func (c RGB) Scale(f float64) RGB {
	return RGBBlack.Blend(c, f)
}

// Max returns per-channel maximum (non-destructive highlight)
func (dst RGB) Max(src RGB) RGB {
	return RGB{
		R: max(dst.R, src.R),
		G: max(dst.G, src.G),
		B: max(dst.B, src.B),
	}
}

// Tcell converts to a true-color tcell value
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
