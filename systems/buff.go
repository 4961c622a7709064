package systems

import (
	"github.com/lixenwraith/void-shooter/engine"
)

// BuffSystem reverts timed power-up effects on expiry
type BuffSystem struct{}

// NewBuffSystem creates a buff system
func NewBuffSystem() *BuffSystem {
	return &BuffSystem{}
}

// Priority runs after pickups are collected
func (s *BuffSystem) Priority() int {
	return PriorityBuff
}

// Update clears an expired buff
func (s *BuffSystem) Update(ctx *engine.GameContext) {
	buff := &ctx.State.Buff
	if !buff.Active || ctx.Tick.Now <= buff.ExpiresAt {
		return
	}
	ExpireBuff(ctx)
}

// ExpireBuff clears the active buff and reverts every timed side effect regardless of kind
func ExpireBuff(ctx *engine.GameContext) {
	ctx.State.Buff = engine.BuffState{}
	ctx.World.Player.Speed = ctx.Config.PlayerSpeed
	ctx.State.Autofire = false
}
