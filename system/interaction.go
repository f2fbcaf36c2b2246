package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/midnight-awake/parameter"
)

// Prompt identifies the interaction available at the player's position
type Prompt uint8

const (
	PromptNone Prompt = iota
	PromptOpenDoor
	PromptCloseDoor
	PromptKick
)

// String returns the HUD hint for the prompt
func (p Prompt) String() string {
	switch p {
	case PromptOpenDoor:
		return "[E] Open door"
	case PromptCloseDoor:
		return "[E] Close door"
	case PromptKick:
		return "[F] Kick door"
	}
	return ""
}

// Distance from the eye to a fixture; altitude counts, so flying over a door puts it out of reach
func (s *Simulation) distanceTo(fixture mgl64.Vec3) float64 {
	return s.ctx.Pose.Position.Sub(fixture).Len()
}

func (s *Simulation) kickable() bool {
	return s.distanceTo(s.ctx.Tuning.LockedDoor) < s.ctx.Tuning.KickRadius &&
		s.ctx.State.LockedDoorHealth() > 0
}

// Interact toggles every regular door within reach
// Returns true when at least one door moved
func (s *Simulation) Interact() bool {
	if !s.ctx.State.Phase().IsActive() {
		return false
	}
	t := s.ctx.Tuning
	moved := false

	if s.distanceTo(t.BackDoor) < t.DoorRadius {
		open := s.ctx.State.ToggleBackDoor()
		s.ctx.Audio.Door()
		s.ctx.Log.WithField("open", open).Info("back door toggled")
		moved = true
	}
	if s.distanceTo(t.SideDoor) < t.DoorRadius {
		open := s.ctx.State.ToggleSideDoor()
		s.ctx.Audio.Door()
		s.ctx.Log.WithField("open", open).Info("side door toggled")
		moved = true
	}
	return moved
}

// Action kicks the locked door when in reach, otherwise toggles the flashlight
func (s *Simulation) Action() {
	if !s.ctx.State.Phase().IsActive() {
		return
	}
	if s.kickable() {
		s.kick()
		return
	}
	s.ToggleFlashlight()
}

func (s *Simulation) kick() {
	health := s.ctx.State.KickLockedDoor()
	s.ctx.Audio.Kick()
	s.ctx.Shake.Start(parameter.ShakeDip, parameter.ShakeDuration)
	s.ctx.Log.WithField("health", health).Info("locked door kicked")

	if health == 0 {
		s.ctx.Phases.ScheduleChase(s.ctx.Tuning.ChaseDelay)
	}
}

// ToggleFlashlight flips the flashlight; lighting an empty battery is refused
// Returns the resulting state
func (s *Simulation) ToggleFlashlight() bool {
	return s.ctx.State.SetFlashlightOn(!s.ctx.State.FlashlightOn())
}

// Prompt reports which interaction the HUD should advertise
func (s *Simulation) Prompt() Prompt {
	if !s.ctx.State.Phase().IsActive() {
		return PromptNone
	}
	t := s.ctx.Tuning
	if s.kickable() {
		return PromptKick
	}
	switch {
	case s.distanceTo(t.BackDoor) < t.DoorRadius:
		if s.ctx.State.BackDoorOpen() {
			return PromptCloseDoor
		}
		return PromptOpenDoor
	case s.distanceTo(t.SideDoor) < t.DoorRadius:
		if s.ctx.State.SideDoorOpen() {
			return PromptCloseDoor
		}
		return PromptOpenDoor
	}
	return PromptNone
}
