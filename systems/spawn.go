package systems

import (
	"time"

	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/engine"
	"github.com/lixenwraith/void-shooter/vmath"
)

// SpawnSystem emits enemies and power-ups on independent session-clock timers
type SpawnSystem struct {
	factory *Factory

	lastEnemy   time.Duration
	lastPowerUp time.Duration
}

// NewSpawnSystem creates a spawn system; both timers start at session start
func NewSpawnSystem(factory *Factory) *SpawnSystem {
	return &SpawnSystem{factory: factory}
}

// Priority runs before kinematics so new entities move on their first tick
func (s *SpawnSystem) Priority() int {
	return PrioritySpawn
}

// Update fires whichever timers are due
func (s *SpawnSystem) Update(ctx *engine.GameContext) {
	now := ctx.Tick.Now
	cfg := ctx.Config

	if now-s.lastEnemy > cfg.EnemySpawnInterval {
		s.spawnEnemy(ctx)
		s.lastEnemy = now
	}

	// A failed roll still consumes the interval; a full field does not
	if now-s.lastPowerUp > cfg.PowerUpInterval && ctx.World.PowerUps.Len() < cfg.PowerUpCap {
		if ctx.Rand.Float64() < cfg.PowerUpSpawnChance {
			s.spawnPowerUp(ctx)
		}
		s.lastPowerUp = now
	}
}

func (s *SpawnSystem) spawnEnemy(ctx *engine.GameContext) {
	pos := EdgeSpawnPoint(ctx.Rand.Intn(4), ctx.Rand.Float64(), ctx.Config.PlayWidth, ctx.Config.PlayHeight)
	variant := ctx.Rand.Intn(s.factory.Assets().EnemyVariants())
	engine.Spawn(ctx.World, ctx.World.Enemies, s.factory.Enemy(pos, ctx.State.Level, variant))
}

// EdgeSpawnPoint returns a point just outside edge (0 top, 1 bottom, 2 left, 3 right);
// t in [0, 1) picks the position along that edge
func EdgeSpawnPoint(edge int, t, width, height float64) vmath.Vec2 {
	m := constants.EnemySpawnMargin
	switch edge {
	case 0:
		return vmath.V(t*width, -m)
	case 1:
		return vmath.V(t*width, height+m)
	case 2:
		return vmath.V(-m, t*height)
	default:
		return vmath.V(width+m, t*height)
	}
}

func (s *SpawnSystem) spawnPowerUp(ctx *engine.GameContext) {
	m := float64(constants.PowerUpMargin)
	cfg := ctx.Config
	pu := &components.PowerUp{
		Kind: components.PowerUpKinds[ctx.Rand.Intn(len(components.PowerUpKinds))],
		Pos: vmath.V(
			m+ctx.Rand.Float64()*(cfg.PlayWidth-2*m),
			m+ctx.Rand.Float64()*(cfg.PlayHeight-2*m),
		),
	}
	engine.Spawn(ctx.World, ctx.World.PowerUps, pu)
	ctx.Logger.Printf("powerup spawned: kind=%s", pu.Kind)
}
