package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/world"
)

// Top-down projection scale; terminal cells are about twice as tall as wide
const (
	UnitsPerCol = 0.5
	UnitsPerRow = 1.0

	flashlightRange = 18.0
	flashlightCone  = 0.45 // half-angle, radians
	playerGlow      = 0.35
	glowRadius      = 2.0
	sampleStep      = 0.25
)

// Locked door colours by remaining health
var lockedDoorColors = [...]RGB{
	1: {0x9a, 0x3a, 0x2a},
	2: {0x8a, 0x4a, 0x2a},
	3: {0x7a, 0x5a, 0x3a},
}

// WorldRenderer draws the heading-up map around the player, lit by ambient light and the flashlight
type WorldRenderer struct {
	layout *world.Layout
	light  []float64
}

// NewWorldRenderer creates the map view for layout
func NewWorldRenderer(layout *world.Layout) *WorldRenderer {
	return &WorldRenderer{layout: layout}
}

// IsVisible hides the map behind full-screen menus
func (r *WorldRenderer) IsVisible(ctx RenderContext) bool {
	switch ctx.State.Phase {
	case engine.PhaseWarning, engine.PhaseMenu, engine.PhaseDawn:
		return false
	}
	return true
}

// projection maps between world ground coordinates and screen cells
type projection struct {
	origin   mgl64.Vec3
	forward  mgl64.Vec2
	right    mgl64.Vec2
	cx, cy   float64
	w, h     int
	eff      Effects
	maxEdge2 float64
}

func newProjection(ctx RenderContext) projection {
	yaw := ctx.Pose.Yaw
	p := projection{
		origin:  ctx.Pose.Position,
		forward: mgl64.Vec2{-math.Sin(yaw), -math.Cos(yaw)},
		right:   mgl64.Vec2{math.Cos(yaw), -math.Sin(yaw)},
		cx:      float64(ctx.Width) / 2,
		cy:      float64(ctx.Height) / 2,
		w:       ctx.Width,
		h:       ctx.Height,
		eff:     ctx.Effects,
	}
	if p.eff.ViewDistance <= 0 {
		p.eff.ViewDistance = nightViewDist
	}
	p.maxEdge2 = p.cx*p.cx + p.cy*p.cy
	if p.maxEdge2 == 0 {
		p.maxEdge2 = 1
	}
	return p
}

// toScreen projects a world point to a cell
func (p projection) toScreen(v mgl64.Vec3) (int, int) {
	rel := mgl64.Vec2{v[0] - p.origin[0], v[2] - p.origin[2]}
	sx := p.cx + rel.Dot(p.right)/UnitsPerCol
	sy := p.cy - rel.Dot(p.forward)/UnitsPerRow
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// toWorld returns the ground point under the centre of a cell
func (p projection) toWorld(x, y int) mgl64.Vec3 {
	right := (float64(x) + 0.5 - p.cx) * UnitsPerCol
	fwd := (p.cy - float64(y) - 0.5) * UnitsPerRow
	off := p.right.Mul(right).Add(p.forward.Mul(fwd))
	return mgl64.Vec3{p.origin[0] + off[0], 0, p.origin[2] + off[1]}
}

// lightAt combines ambient, player glow and the flashlight beam, then applies the vignette
func (p projection) lightAt(x, y int, v mgl64.Vec3, lit bool) float64 {
	rel := mgl64.Vec2{v[0] - p.origin[0], v[2] - p.origin[2]}
	dist := rel.Len()

	l := p.eff.Ambient
	if dist < glowRadius {
		l = math.Max(l, playerGlow*(1-dist/glowRadius))
	}
	if lit && dist < flashlightRange && dist > 0 {
		angle := math.Acos(mgl64.Clamp(rel.Dot(p.forward)/dist, -1, 1))
		if angle < flashlightCone {
			l = math.Max(l, 1-dist/flashlightRange)
		}
	}
	if dist > p.eff.ViewDistance {
		l = 0
	}

	if p.eff.Vignette > 0 {
		dx, dy := float64(x)-p.cx, (float64(y)-p.cy)*2
		edge := (dx*dx + dy*dy) / (p.maxEdge2 * 2)
		l *= 1 - p.eff.Vignette*math.Min(edge, 1)
	}
	return mgl64.Clamp(l, 0, 1)
}

// shade lights base and fades it toward the fog colour with distance
func (p projection) shade(base RGB, light float64, v mgl64.Vec3) RGB {
	dist := mgl64.Vec2{v[0] - p.origin[0], v[2] - p.origin[2]}.Len()
	fog := mgl64.Clamp(dist/p.eff.ViewDistance, 0, 1)
	return base.Scale(light).Blend(p.eff.Fog, fog*p.eff.Ambient)
}

func (r *WorldRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	p := newProjection(ctx)
	lit := ctx.Effects.FlashlightLit

	if cap(r.light) < p.w*p.h {
		r.light = make([]float64, p.w*p.h)
	}
	r.light = r.light[:p.w*p.h]

	// Ground and road
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			v := p.toWorld(x, y)
			l := p.lightAt(x, y, v, lit)
			r.light[y*p.w+x] = l
			base := RGBGround
			if world.OnRoad(v) {
				base = RGBRoad
			}
			bg := p.shade(base, l, v).Max(ctx.Effects.Sky.Scale(0.35))
			buf.SetWithBg(x, y, ' ', RGBWhite, bg)
		}
	}

	put := func(x, y int, ch rune, base RGB, v mgl64.Vec3) {
		if x < 0 || y < 0 || x >= p.w || y >= p.h {
			return
		}
		l := r.light[y*p.w+x]
		if l <= 0.02 {
			return
		}
		buf.SetFgOnly(x, y, ch, p.shade(base, l, v))
	}

	if r.layout != nil {
		r.drawBoxes(p, put)
		r.drawDoors(p, ctx.State, put)
		r.drawTrees(p, put)
	}

	// The pursuer glows red even in the dark
	if ctx.State.Phase == engine.PhaseChase {
		x, y := p.toScreen(ctx.Pursuer)
		if x >= 0 && y >= 0 && x < p.w && y < p.h {
			buf.SetFgOnly(x, y, 'M', RGBMonster)
			buf.Bold(x, y)
		}
	}

	px, py := p.toScreen(ctx.Pose.Position)
	buf.SetFgOnly(px, py, '▲', RGBPlayer)
}

type putFunc func(x, y int, ch rune, base RGB, v mgl64.Vec3)

// drawBoxes samples each footprint on a fine grid so thin walls survive rotation
func (r *WorldRenderer) drawBoxes(p projection, put putFunc) {
	reach := p.eff.ViewDistance + 10
	for _, b := range r.layout.Boxes {
		if (mgl64.Vec2{b.Center[0] - p.origin[0], b.Center[2] - p.origin[2]}).Len() > reach+b.Size.Len() {
			continue
		}
		ch, col := '█', RGBHouse
		switch b.Kind {
		case world.KindWall:
			col = RGBWall
		case world.KindBed:
			ch, col = '▒', RGBBed
		}
		for dx := -b.Size[0] / 2; dx <= b.Size[0]/2; dx += sampleStep {
			for dz := -b.Size[2] / 2; dz <= b.Size[2]/2; dz += sampleStep {
				v := b.Center.Add(mgl64.Vec3{dx, 0, dz})
				x, y := p.toScreen(v)
				put(x, y, ch, col, v)
			}
		}
	}
}

// drawDoors draws the two room doors and the locked house door in their current state
func (r *WorldRenderer) drawDoors(p projection, s engine.Snapshot, put putFunc) {
	t := r.layout.Tuning
	span := func(center mgl64.Vec3, axis mgl64.Vec3, ch rune, col RGB) {
		for d := -1.0; d <= 1.0; d += sampleStep {
			v := center.Add(axis.Mul(d))
			x, y := p.toScreen(v)
			put(x, y, ch, col, v)
		}
	}
	alongX := mgl64.Vec3{1, 0, 0}
	alongZ := mgl64.Vec3{0, 0, 1}

	// An open door swings perpendicular to its frame
	if s.BackDoorOpen {
		span(t.BackDoor.Add(mgl64.Vec3{-1, 0, -1}), alongZ, '│', RGBDoor)
	} else {
		span(t.BackDoor, alongX, '═', RGBDoor)
	}
	if s.SideDoorOpen {
		span(t.SideDoor.Add(mgl64.Vec3{1, 0, -1}), alongX, '─', RGBDoor)
	} else {
		span(t.SideDoor, alongZ, '║', RGBDoor)
	}

	if s.LockedDoorHealth > 0 {
		h := min(s.LockedDoorHealth, len(lockedDoorColors)-1)
		span(t.LockedDoor, alongX, '#', lockedDoorColors[h])
		return
	}
	// Broken in: splinters on the threshold and what was hidden inside
	span(t.LockedDoor, alongX, '_', RGBDoor)
	body := t.LockedDoor.Add(mgl64.Vec3{0, 0, -4})
	x, y := p.toScreen(body)
	put(x, y, '@', RGB{60, 90, 220}, body)
}

func (r *WorldRenderer) drawTrees(p projection, put putFunc) {
	for _, tr := range r.layout.Trees {
		x0, y0 := p.toScreen(tr.Position)
		rad := tr.Radius()
		rx := int(math.Ceil(rad / UnitsPerCol))
		ry := int(math.Ceil(rad / UnitsPerRow))
		if x0+rx < 0 || y0+ry < 0 || x0-rx >= p.w || y0-ry >= p.h {
			continue
		}
		for dy := -ry; dy <= ry; dy++ {
			for dx := -rx; dx <= rx; dx++ {
				ex := float64(dx) * UnitsPerCol / rad
				ey := float64(dy) * UnitsPerRow / rad
				if ex*ex+ey*ey > 1 {
					continue
				}
				ch, col := '♣', RGBTree
				if dx == 0 && dy == 0 {
					ch, col = '▲', RGBTrunk
				}
				put(x0+dx, y0+dy, ch, col, tr.Position)
			}
		}
	}
}
