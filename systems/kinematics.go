package systems

import (
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/engine"
	"github.com/lixenwraith/void-shooter/input"
	"github.com/lixenwraith/void-shooter/vmath"
)

// KinematicsSystem integrates the player, projectiles and enemies once per tick
type KinematicsSystem struct{}

// NewKinematicsSystem creates a kinematics system
func NewKinematicsSystem() *KinematicsSystem {
	return &KinematicsSystem{}
}

// Priority runs after spawning and before collision
func (s *KinematicsSystem) Priority() int {
	return PriorityKinematics
}

// Update moves every live entity
func (s *KinematicsSystem) Update(ctx *engine.GameContext) {
	w := ctx.World
	UpdatePlayer(w.Player, ctx.Input, ctx.Config.PlayWidth, ctx.Config.PlayHeight,
		ctx.Config.PlayerHalfExtent, ctx.Config.RotationOffset)

	playArea := vmath.Rect{W: ctx.Config.PlayWidth, H: ctx.Config.PlayHeight}
	for e, p := range w.Bullets.All() {
		switch p.Kind {
		case components.ProjectileBolt:
			advanceBolt(p)
		case components.ProjectileBeam:
			advanceBeam(p)
		}
		if !playArea.Contains(p.Pos) {
			w.Bullets.Remove(e)
		}
	}

	for _, en := range w.Enemies.All() {
		Pursue(en, w.Player.Pos)
	}
}

// UpdatePlayer applies held directions at the player's current speed, clamps to
// the play area inset by half, and turns the nose toward the pointer
func UpdatePlayer(p *components.Player, in input.Frame, width, height, half, rotationOffset float64) {
	if dir := in.Direction(); dir.LenSq() > 0 {
		p.Pos = p.Pos.Add(dir.Normalize().Scale(p.Speed))
	}
	p.Pos.X = vmath.Clamp(p.Pos.X, half, width-half)
	p.Pos.Y = vmath.Clamp(p.Pos.Y, half, height-half)

	// Screen-math angle to the sprite's nose-up, counter-clockwise convention
	mathAngle := in.Pointer.Sub(p.Pos).AngleDeg()
	p.Angle = -mathAngle - 90 + rotationOffset
}

func advanceBolt(p *components.Projectile) {
	p.Pos = p.Pos.Add(p.Vel)
	if p.FrameCount == 0 {
		return
	}
	p.FrameTimer++
	if p.FrameTimer >= constants.BoltFrameDelay {
		p.FrameTimer = 0
		p.Frame = (p.Frame + 1) % p.FrameCount
	}
}

func advanceBeam(p *components.Projectile) {
	p.Pos = p.Pos.Add(p.Vel)
}

// Pursue steps an enemy straight at target; no lead, so paths curve as the target moves
func Pursue(e *components.Enemy, target vmath.Vec2) {
	e.Pos = e.Pos.Add(target.Sub(e.Pos).Normalize().Scale(e.Speed))
}
