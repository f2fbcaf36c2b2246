package world

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// Kind classifies a static scene element for drawing
type Kind uint8

const (
	KindTree Kind = iota
	KindHouse
	KindLockedHouse
	KindWall
	KindBed
)

// Box is an axis-aligned footprint on the ground plane
type Box struct {
	Kind   Kind
	Center mgl64.Vec3
	// Size is the full extent (x, y, z)
	Size mgl64.Vec3
}

// Contains reports whether p lies inside the footprint, ignoring height
func (b Box) Contains(p mgl64.Vec3) bool {
	return p[0] >= b.Center[0]-b.Size[0]/2 && p[0] <= b.Center[0]+b.Size[0]/2 &&
		p[2] >= b.Center[2]-b.Size[2]/2 && p[2] <= b.Center[2]+b.Size[2]/2
}

// Tree is a single forest tree; Scale multiplies the canopy radius
type Tree struct {
	Position mgl64.Vec3
	Scale    float64
}

// Radius returns the canopy footprint radius
func (t Tree) Radius() float64 {
	return TreeCanopyRadius * t.Scale
}

// Forest and road geometry
const (
	TreeCanopyRadius = 1.5

	forestWidth    = 120.0
	forestStartZ   = -20.0
	forestDepth    = 350.0
	roadClearance  = 5.0
	roadJitter     = 5.0
	minTreeScale   = 0.8
	treeScaleRange = 1.5

	RoadHalfWidth = 2.0
	RoadStartZ    = 0.0
	RoadEndZ      = -320.0
)

// Config controls layout generation
type Config struct {
	Trees int
	Seed  int64 // Optional (0 = Random)
}

// DefaultConfig returns the shipped forest density
func DefaultConfig() Config {
	return Config{Trees: 400}
}

// Layout is the static scene: the bedroom, the road, the forest and the village
type Layout struct {
	Seed   int64
	Trees  []Tree
	Boxes  []Box
	Tuning *parameter.Tuning
}

// Generate builds a layout; the same seed always yields the same forest
func Generate(cfg Config, tuning *parameter.Tuning) *Layout {
	if tuning == nil {
		tuning = parameter.DefaultTuning()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	l := &Layout{Seed: seed, Tuning: tuning}
	l.Trees = make([]Tree, 0, cfg.Trees)
	for i := 0; i < cfg.Trees; i++ {
		x := (rng.Float64() - 0.5) * forestWidth
		// Keep a corridor clear for the road
		if x > -roadClearance && x < roadClearance {
			if x > 0 {
				x = roadClearance + rng.Float64()*roadJitter
			} else {
				x = -roadClearance - rng.Float64()*roadJitter
			}
		}
		z := forestStartZ - rng.Float64()*forestDepth
		l.Trees = append(l.Trees, Tree{
			Position: mgl64.Vec3{x, 0, z},
			Scale:    minTreeScale + rng.Float64()*treeScaleRange,
		})
	}

	l.Boxes = append(l.Boxes, room()...)
	l.Boxes = append(l.Boxes, village(tuning.LockedDoor)...)
	return l
}

// room is the bedroom: side walls, the wall either side of each door, and the bed
func room() []Box {
	return []Box{
		{Kind: KindWall, Center: mgl64.Vec3{-5, 1.5, 0}, Size: mgl64.Vec3{0.2, 3, 10}},
		{Kind: KindWall, Center: mgl64.Vec3{-3, 1.5, -5}, Size: mgl64.Vec3{4, 3, 0.2}},
		{Kind: KindWall, Center: mgl64.Vec3{3, 1.5, -5}, Size: mgl64.Vec3{4, 3, 0.2}},
		{Kind: KindWall, Center: mgl64.Vec3{5, 1.5, 3}, Size: mgl64.Vec3{0.2, 3, 4}},
		{Kind: KindWall, Center: mgl64.Vec3{5, 1.5, -3}, Size: mgl64.Vec3{0.2, 3, 4}},
		{Kind: KindBed, Center: mgl64.Vec3{0, 0.4, 2}, Size: mgl64.Vec3{2, 0.4, 3}},
	}
}

// village places the decoy houses around the locked house, whose door faces the road
func village(door mgl64.Vec3) []Box {
	origin := mgl64.Vec3{0, 0, door[2]}
	house := mgl64.Vec3{6, 4, 6}
	return []Box{
		{Kind: KindHouse, Center: origin.Add(mgl64.Vec3{-15, 2, 0}), Size: house},
		{Kind: KindHouse, Center: origin.Add(mgl64.Vec3{-12, 2, -15}), Size: house},
		{Kind: KindHouse, Center: origin.Add(mgl64.Vec3{12, 2, -10}), Size: house},
		{Kind: KindLockedHouse, Center: mgl64.Vec3{door[0], 2.5, door[2] - 4}, Size: mgl64.Vec3{8, 5, 8}},
	}
}

// OnRoad reports whether p is on the paved road
func OnRoad(p mgl64.Vec3) bool {
	return p[0] >= -RoadHalfWidth && p[0] <= RoadHalfWidth && p[2] <= RoadStartZ && p[2] >= RoadEndZ
}

// Within returns the trees whose canopy reaches within radius of p on the ground plane
func (l *Layout) Within(p mgl64.Vec3, radius float64) []Tree {
	var out []Tree
	for _, t := range l.Trees {
		d := mgl64.Vec2{t.Position[0] - p[0], t.Position[2] - p[2]}.Len()
		if d <= radius+t.Radius() {
			out = append(out, t)
		}
	}
	return out
}
