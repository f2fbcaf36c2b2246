package world

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// Fixture is an interactive point the player can use
type Fixture struct {
	Name     string
	Position mgl64.Vec3
	Radius   float64
}

// Fixtures lists the interactive doors with their reach
func Fixtures(t *parameter.Tuning) []Fixture {
	if t == nil {
		t = parameter.DefaultTuning()
	}
	return []Fixture{
		{Name: "back door", Position: t.BackDoor, Radius: t.DoorRadius},
		{Name: "side door", Position: t.SideDoor, Radius: t.DoorRadius},
		{Name: "locked door", Position: t.LockedDoor, Radius: t.KickRadius},
	}
}
