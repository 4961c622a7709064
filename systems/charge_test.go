package systems

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/config"
)

func TestChargeTransitions(t *testing.T) {
	const threshold = 5 * time.Second
	tests := []struct {
		name      string
		start     components.ChargeState
		moving    bool
		now       time.Duration
		want      components.ChargePhase
		wantReady bool
	}{
		{"Idle starts charging", components.ChargeState{}, false, time.Second, components.ChargeCharging, false},
		{"Charging below threshold", components.ChargeState{Phase: components.ChargeCharging, Since: time.Second}, false, 5 * time.Second, components.ChargeCharging, false},
		{"Charging reaches threshold", components.ChargeState{Phase: components.ChargeCharging, Since: time.Second}, false, 6 * time.Second, components.ChargeReady, true},
		{"Ready holds while idle", components.ChargeState{Phase: components.ChargeReady}, false, time.Hour, components.ChargeReady, false},
		{"Movement resets charging", components.ChargeState{Phase: components.ChargeCharging, Since: time.Second}, true, 9 * time.Second, components.ChargeIdle, false},
		{"Movement resets ready", components.ChargeState{Phase: components.ChargeReady}, true, 9 * time.Second, components.ChargeIdle, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.start
			became := c.Step(tt.moving, tt.now, threshold)
			if c.Phase != tt.want {
				t.Errorf("Expected phase %s, got %s", tt.want, c.Phase)
			}
			if became != tt.wantReady {
				t.Errorf("Expected becameReady=%v, got %v", tt.wantReady, became)
			}
		})
	}
}

// Ready is false right after any moving tick and only true after a full idle threshold
func TestChargeReadyProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		const threshold = 5 * time.Second
		var c components.ChargeState
		now := time.Duration(0)
		var idleSince time.Duration = -1

		steps := rapid.IntRange(1, 300).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			now += time.Duration(rapid.Int64Range(0, int64(2*time.Second)).Draw(rt, "dt"))
			moving := rapid.Bool().Draw(rt, "moving")
			c.Step(moving, now, threshold)

			if moving {
				idleSince = -1
				if c.Ready() {
					rt.Fatal("Ready after a moving tick")
				}
				continue
			}
			if idleSince < 0 {
				idleSince = now
			}
			if c.Ready() && now-idleSince < threshold {
				rt.Fatalf("Ready after only %v idle", now-idleSince)
			}
		}
	})
}

func TestChargeSystemFlashOnce(t *testing.T) {
	ctx, sound := newTestContextWith(t, config.DefaultGameplay(), true)
	sys := NewChargeSystem()

	flashes := 0
	for now := time.Duration(0); now <= 8*time.Second; now += testTick {
		before := ctx.World.Flashes.Len()
		setTick(ctx, now)
		sys.Update(ctx)
		flashes += ctx.World.Flashes.Len() - before
	}

	if !ctx.State.Charge.Ready() {
		t.Error("Expected charge ready after 8s idle")
	}
	if flashes != 1 {
		t.Errorf("Expected exactly one flash, got %d", flashes)
	}
	if sound.count(audio.CueChargeReady) != 1 {
		t.Errorf("Expected one charge-ready cue, got %d", sound.count(audio.CueChargeReady))
	}
}

func TestChargeAbsentWithoutAbility(t *testing.T) {
	ctx, _ := newTestContext(t)
	sys := NewChargeSystem()
	for now := time.Duration(0); now <= 6*time.Second; now += time.Second {
		setTick(ctx, now)
		sys.Update(ctx)
	}
	if ctx.State.Charge != nil || ctx.World.Flashes.Len() != 0 {
		t.Error("Expected no charge machine without the beam ability")
	}
}

func TestChargeProgress(t *testing.T) {
	c := components.ChargeState{Phase: components.ChargeCharging, Since: time.Second}
	if p := c.Progress(3500*time.Millisecond, 5*time.Second); p != 0.5 {
		t.Errorf("Expected progress 0.5, got %v", p)
	}
	if p := (&components.ChargeState{}).Progress(time.Hour, 5*time.Second); p != 0 {
		t.Errorf("Expected idle progress 0, got %v", p)
	}
	if p := (&components.ChargeState{Phase: components.ChargeReady}).Progress(0, 5*time.Second); p != 1 {
		t.Errorf("Expected ready progress 1, got %v", p)
	}
}
