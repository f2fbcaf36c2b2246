package system

import "github.com/lixenwraith/midnight-awake/parameter"

// VitalsSystem decides whether the player is sprinting and drains or regenerates stamina
type VitalsSystem struct {
	ctx *Context
}

// NewVitalsSystem creates the stamina system
func NewVitalsSystem(ctx *Context) System {
	return &VitalsSystem{ctx: ctx}
}

func (s *VitalsSystem) Init() {}

func (s *VitalsSystem) Name() string {
	return "vitals"
}

func (s *VitalsSystem) Priority() int {
	return parameter.PriorityVitals
}

func (s *VitalsSystem) Update(f *Frame) {
	if !f.Phase.IsActive() {
		return
	}
	gs := s.ctx.State
	f.Moving = f.Intent.Moving(f.Fly)
	stamina := gs.Stamina()

	if f.Intent.Sprint && f.Moving && stamina > 0 && !f.Fly {
		f.Sprinting = true
		if !gs.CheatInfiniteStamina() {
			gs.SetStamina(stamina - s.ctx.Tuning.StaminaDrainRate*f.Seconds)
		}
		return
	}
	gs.SetStamina(stamina + s.ctx.Tuning.StaminaRegenRate*f.Seconds)
}
