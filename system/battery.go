package system

import (
	"github.com/lixenwraith/midnight-awake/engine"
	"github.com/lixenwraith/midnight-awake/parameter"
)

// BatterySystem drains the flashlight while lit and recharges it otherwise
type BatterySystem struct {
	ctx *Context
}

// NewBatterySystem creates the battery system
func NewBatterySystem(ctx *Context) System {
	return &BatterySystem{ctx: ctx}
}

func (s *BatterySystem) Init() {}

func (s *BatterySystem) Name() string {
	return "battery"
}

func (s *BatterySystem) Priority() int {
	return parameter.PriorityBattery
}

// Update runs in active phases and during the cutscene
func (s *BatterySystem) Update(f *Frame) {
	if !f.Phase.IsActive() && f.Phase != engine.PhaseCutscene {
		return
	}
	gs := s.ctx.State
	battery := gs.FlashlightBattery()

	if gs.FlashlightOn() && !gs.CheatInfiniteBattery() {
		// The store switches the flashlight off when this reaches zero
		gs.SetFlashlightBattery(battery - s.ctx.Tuning.BatteryDrainRate*f.Seconds)
		return
	}
	gs.SetFlashlightBattery(battery + s.ctx.Tuning.BatteryChargeRate*f.Seconds)
}
