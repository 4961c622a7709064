package systems

import (
	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/engine"
)

// CollisionSystem resolves hits, contacts and pickups after movement
type CollisionSystem struct {
	factory *Factory
}

// NewCollisionSystem creates a collision system
func NewCollisionSystem(factory *Factory) *CollisionSystem {
	return &CollisionSystem{factory: factory}
}

// Priority runs after kinematics
func (s *CollisionSystem) Priority() int {
	return PriorityCollision
}

// Update resolves the three collision passes in order
func (s *CollisionSystem) Update(ctx *engine.GameContext) {
	s.resolveHits(ctx)
	s.resolveContacts(ctx)
	s.resolvePickups(ctx)
}

// resolveHits lets each projectile kill at most one enemy per tick
func (s *CollisionSystem) resolveHits(ctx *engine.GameContext) {
	w := ctx.World
	cfg := ctx.Config
	for be, b := range w.Bullets.All() {
		for ee, e := range w.Enemies.All() {
			if !components.Overlaps(b, e) {
				continue
			}

			engine.Spawn(w, w.Explosions, s.factory.Explosion(e.Pos, constants.ExplosionSize))
			w.Enemies.Remove(ee)
			ctx.State.AddScore(cfg.KillScoreBase + ctx.State.Level*cfg.KillScorePerLevel)
			ctx.Sound.Play(audio.CueExplosion)

			if b.Pierce > 0 {
				b.Pierce--
			} else {
				w.Bullets.Remove(be)
			}
			break
		}
	}
}

// resolveContacts removes every enemy touching the player; defeat is latched once after all contacts
func (s *CollisionSystem) resolveContacts(ctx *engine.GameContext) {
	w := ctx.World
	cfg := ctx.Config
	hit := false
	for ee, e := range w.Enemies.All() {
		if !components.Overlaps(w.Player, e) {
			continue
		}
		engine.Spawn(w, w.Explosions, s.factory.Explosion(e.Pos, constants.ContactExplosionSize))
		w.Enemies.Remove(ee)
		w.Player.Damage(cfg.ContactDamageBase + e.Level*cfg.ContactDamagePerLevel)
		hit = true
	}
	if hit {
		ctx.Sound.Play(audio.CueExplosion)
	}

	if w.Player.Defeated() && !ctx.State.Defeated {
		ctx.State.Defeated = true
		ctx.Logger.Printf("player defeated: score=%d level=%d", ctx.State.Score, ctx.State.Level)
	}
}

// resolvePickups collects overlapping power-ups and applies them immediately
func (s *CollisionSystem) resolvePickups(ctx *engine.GameContext) {
	w := ctx.World
	for pe, pu := range w.PowerUps.All() {
		if !components.Overlaps(w.Player, pu) {
			continue
		}
		w.PowerUps.Remove(pe)
		engine.Spawn(w, w.Flashes, components.NewFlash(pu.Pos))
		ApplyPowerUp(ctx, pu.Kind)
		ctx.Sound.Play(audio.CuePickup)
	}
}

// ApplyPowerUp overwrites the active buff and applies its immediate effect
func ApplyPowerUp(ctx *engine.GameContext, kind components.PowerUpKind) {
	ctx.State.ApplyBuff(kind, ctx.Tick.Now+ctx.Config.PowerUpDuration)
	switch kind {
	case components.PowerUpHeal:
		ctx.World.Player.Heal(ctx.Config.HealAmount)
	case components.PowerUpSpeed:
		ctx.World.Player.Speed = ctx.Config.PlayerBoostSpeed
	case components.PowerUpAutofire:
		ctx.State.Autofire = true
	}
}
