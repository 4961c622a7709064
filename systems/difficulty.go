package systems

import (
	"time"

	"github.com/lixenwraith/void-shooter/engine"
)

// DifficultySystem raises the enemy level on a fixed interval up to the cap
type DifficultySystem struct {
	last time.Duration
}

// NewDifficultySystem creates a difficulty system
func NewDifficultySystem() *DifficultySystem {
	return &DifficultySystem{}
}

// Priority runs beside spawning
func (s *DifficultySystem) Priority() int {
	return PriorityDifficulty
}

// Update increments the level when due
func (s *DifficultySystem) Update(ctx *engine.GameContext) {
	now := ctx.Tick.Now
	if now-s.last > ctx.Config.DifficultyInterval && ctx.State.Level < ctx.Config.MaxEnemyLevel {
		ctx.State.Level++
		s.last = now
		ctx.Logger.Printf("difficulty raised: level=%d", ctx.State.Level)
	}
}
