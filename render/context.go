package render

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/physics"
	"github.com/lixenwraith/midnight-awake/status"
	"github.com/lixenwraith/midnight-awake/ui"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Width  int
	Height int
	Time   time.Time

	State   engine.Snapshot
	Pose    physics.Pose
	Pursuer mgl64.Vec3

	// Prompt is the interaction hint, empty when nothing is in reach
	Prompt string
	// Menu is the active menu page, nil while the HUD is up
	Menu *ui.Screen
	// Muted mirrors the audio mute toggle
	Muted bool
	// Debug holds the status metrics, nil unless debug mode is on
	Debug []status.Entry

	Effects Effects
}
