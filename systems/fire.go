package systems

import (
	"time"

	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/engine"
)

// FireSystem emits projectiles through a frame-rate independent gate
type FireSystem struct {
	factory *Factory

	// lastWindow is the index of the window that already fired
	lastWindow int64
}

// NewFireSystem creates a fire system
func NewFireSystem(factory *Factory) *FireSystem {
	return &FireSystem{factory: factory, lastWindow: -1}
}

// Priority runs after charge and before spawn
func (s *FireSystem) Priority() int {
	return PriorityFire
}

// Update fires one shot when the trigger is held and the gate is open
func (s *FireSystem) Update(ctx *engine.GameContext) {
	trigger := ctx.Input.Fire || (ctx.State.Autofire && ctx.Input.Focused)
	if !trigger {
		return
	}

	window, open := FireGate(ctx.Tick.Now, ctx.Config.FireWindow, ctx.Config.FireWindowOpen)
	if !open || window == s.lastWindow {
		return
	}
	s.lastWindow = window

	w := ctx.World
	angle := ctx.Input.Pointer.Sub(w.Player.Pos).AngleDeg()
	muzzle := Muzzle(w.Player.Pos, angle, ctx.Config.MuzzleDistance)

	if charge := ctx.State.Charge; charge != nil && charge.Ready() {
		engine.Spawn(w, w.Bullets, s.factory.Beam(muzzle, angle))
		ctx.Sound.Play(audio.CueBeam)
		return
	}
	engine.Spawn(w, w.Bullets, s.factory.Bolt(muzzle, angle))
	ctx.Sound.Play(audio.CueBolt)
}

// FireGate reports the window index of now and whether now falls in its open slice
func FireGate(now, window, open time.Duration) (int64, bool) {
	if window <= 0 {
		return 0, false
	}
	return int64(now / window), now%window < open
}
