package systems

import (
	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/engine"
)

// ChargeSystem banks a beam shot after the player stays idle long enough
type ChargeSystem struct{}

// NewChargeSystem creates a charge system
func NewChargeSystem() *ChargeSystem {
	return &ChargeSystem{}
}

// Priority runs first so the fire gate sees this tick's charge
func (s *ChargeSystem) Priority() int {
	return PriorityCharge
}

// Update steps the charge machine; absent without the beam ability
func (s *ChargeSystem) Update(ctx *engine.GameContext) {
	charge := ctx.State.Charge
	if charge == nil {
		return
	}
	if charge.Step(ctx.Input.Moving(), ctx.Tick.Now, ctx.Config.BeamChargeIdle) {
		engine.Spawn(ctx.World, ctx.World.Flashes, components.NewFlash(ctx.World.Player.Pos))
		ctx.Sound.Play(audio.CueChargeReady)
	}
}
