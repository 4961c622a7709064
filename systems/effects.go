package systems

import (
	"github.com/lixenwraith/void-shooter/engine"
)

// EffectsSystem ages explosions and flashes, removing finished ones
type EffectsSystem struct{}

// NewEffectsSystem creates an effects system
func NewEffectsSystem() *EffectsSystem {
	return &EffectsSystem{}
}

// Priority runs with movement, before this tick's collisions add new effects
func (s *EffectsSystem) Priority() int {
	return PriorityEffects
}

// Update advances every effect by one tick
func (s *EffectsSystem) Update(ctx *engine.GameContext) {
	w := ctx.World
	for e, ex := range w.Explosions.All() {
		if ex.Advance() {
			w.Explosions.Remove(e)
		}
	}
	for e, f := range w.Flashes.All() {
		if f.Advance() {
			w.Flashes.Remove(e)
		}
	}
}
