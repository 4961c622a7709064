package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/void-shooter/assets"
	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/config"
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/engine"
	"github.com/lixenwraith/void-shooter/input"
	"github.com/lixenwraith/void-shooter/vmath"
)

// testTick is the nominal 60 Hz step used by tests
const testTick = 16 * time.Millisecond

// recordingSound captures cues for assertions
type recordingSound struct {
	cues []audio.Cue
}

func (r *recordingSound) Play(c audio.Cue) {
	r.cues = append(r.cues, c)
}

func (r *recordingSound) count(c audio.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

// newTestContext builds a context with the player centered, facing up, no loadout
func newTestContext(t *testing.T) (*engine.GameContext, *recordingSound) {
	t.Helper()
	return newTestContextWith(t, config.DefaultGameplay(), false)
}

func newTestContextWith(t *testing.T, cfg config.Gameplay, beam bool) (*engine.GameContext, *recordingSound) {
	t.Helper()
	player := components.NewPlayer(vmath.V(cfg.PlayWidth/2, cfg.PlayHeight/2), cfg.PlayerMaxHealth, cfg.PlayerSpeed)
	world := engine.NewWorld(player)
	sound := &recordingSound{}
	ctx := engine.NewGameContext(cfg, world, engine.NewGameState(constants.InitialEnemyLevel, beam),
		rand.New(rand.NewSource(1)), sound, nil)
	ctx.Input = input.Frame{Pointer: vmath.V(cfg.PlayWidth/2, 0), Focused: true}
	return ctx, sound
}

// setTick positions ctx at session time now
func setTick(ctx *engine.GameContext, now time.Duration) {
	ctx.Tick = engine.Tick{Now: now, Delta: testTick, Frame: ctx.Tick.Frame + 1}
}

func testFactory(ctx *engine.GameContext) *Factory {
	return NewFactory(ctx.Config, assets.Placeholders())
}

func addBullet(ctx *engine.GameContext, p *components.Projectile) engine.Entity {
	return engine.Spawn(ctx.World, ctx.World.Bullets, p)
}

func addEnemy(ctx *engine.GameContext, pos vmath.Vec2, level int) engine.Entity {
	return engine.Spawn(ctx.World, ctx.World.Enemies, &components.Enemy{Pos: pos, Level: level, Speed: ctx.Config.EnemySpeed})
}
