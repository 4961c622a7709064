package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/config"
	"github.com/lixenwraith/void-shooter/vmath"
)

func TestFireGate(t *testing.T) {
	const window, open = 200 * time.Millisecond, 20 * time.Millisecond
	tests := []struct {
		now      time.Duration
		wantIdx  int64
		wantOpen bool
	}{
		{0, 0, true},
		{19 * time.Millisecond, 0, true},
		{20 * time.Millisecond, 0, false},
		{199 * time.Millisecond, 0, false},
		{205 * time.Millisecond, 1, true},
		{1010 * time.Millisecond, 5, true},
		// a tick landing past the open slice reads closed, so a 195ms -> 221ms jump skips window 1
		{221 * time.Millisecond, 1, false},
	}
	for _, tt := range tests {
		idx, ok := FireGate(tt.now, window, open)
		if idx != tt.wantIdx || ok != tt.wantOpen {
			t.Errorf("FireGate(%v) = (%d, %v), want (%d, %v)", tt.now, idx, ok, tt.wantIdx, tt.wantOpen)
		}
	}
}

func TestFireOneShotPerWindow(t *testing.T) {
	ctx, sound := newTestContext(t)
	sys := NewFireSystem(testFactory(ctx))
	ctx.Input.Fire = true

	// 1 ms ticks over one second: five windows, five shots
	for now := time.Duration(0); now < time.Second; now += time.Millisecond {
		setTick(ctx, now)
		sys.Update(ctx)
	}
	if ctx.World.Bullets.Len() != 5 {
		t.Errorf("Expected 5 shots in 1s, got %d", ctx.World.Bullets.Len())
	}
	if sound.count(audio.CueBolt) != 5 {
		t.Errorf("Expected 5 bolt cues, got %d", sound.count(audio.CueBolt))
	}
}

func TestFireSkipsWindowMissedByJitter(t *testing.T) {
	ctx, sound := newTestContext(t)
	sys := NewFireSystem(testFactory(ctx))
	ctx.Input.Fire = true

	// window 1 opens at 200ms but no tick lands in [200ms, 220ms)
	ticks := []time.Duration{0, 10 * time.Millisecond, 195 * time.Millisecond, 221 * time.Millisecond, 400 * time.Millisecond}
	for _, now := range ticks {
		setTick(ctx, now)
		sys.Update(ctx)
	}
	if ctx.World.Bullets.Len() != 2 {
		t.Errorf("Expected shots in windows 0 and 2 only, got %d", ctx.World.Bullets.Len())
	}
	if sound.count(audio.CueBolt) != 2 {
		t.Errorf("Expected 2 bolt cues, got %d", sound.count(audio.CueBolt))
	}
}

func TestFireAimsAtPointer(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewFireSystem(testFactory(ctx))
	ctx.Input.Fire = true
	ctx.Input.Pointer = vmath.V(700, 300)

	setTick(ctx, 0)
	sys.Update(ctx)

	for _, b := range ctx.World.Bullets.All() {
		if b.Kind != components.ProjectileBolt {
			t.Errorf("Expected bolt, got %s", b.Kind)
		}
		if b.Vel.X <= 0 || b.Vel.Y != 0 {
			t.Errorf("Expected rightward velocity, got %v", b.Vel)
		}
		// Muzzle 28 ahead, placeholder center pulled back 8
		if want := 400.0 + 28 - 8; b.Pos.X != want {
			t.Errorf("Expected bolt center x %v, got %v", want, b.Pos.X)
		}
	}
}

func TestAutofireNeedsFocus(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewFireSystem(testFactory(ctx))
	ctx.State.Autofire = true
	ctx.Input.Focused = false

	setTick(ctx, 0)
	sys.Update(ctx)
	if ctx.World.Bullets.Len() != 0 {
		t.Fatal("Expected no autofire without focus")
	}

	ctx.Input.Focused = true
	setTick(ctx, 200*time.Millisecond)
	sys.Update(ctx)
	if ctx.World.Bullets.Len() != 1 {
		t.Error("Expected autofire shot with focus")
	}
}

func TestReadyChargeFiresBeam(t *testing.T) {
	ctx, sound := newTestContextWith(t, config.DefaultGameplay(), true)
	sys := NewFireSystem(testFactory(ctx))
	ctx.State.Charge.Phase = components.ChargeReady
	ctx.Input.Fire = true

	setTick(ctx, 0)
	sys.Update(ctx)
	setTick(ctx, 200*time.Millisecond)
	sys.Update(ctx)

	beams := 0
	for _, b := range ctx.World.Bullets.All() {
		if b.Kind == components.ProjectileBeam {
			beams++
		}
	}
	if beams != 2 {
		t.Errorf("Expected every shot a beam while charge is banked, got %d", beams)
	}
	if sound.count(audio.CueBeam) != 2 {
		t.Errorf("Expected 2 beam cues, got %d", sound.count(audio.CueBeam))
	}
}
