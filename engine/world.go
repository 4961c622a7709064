package engine

import (
	"github.com/lixenwraith/void-shooter/components"
)

// World owns the player singleton and one pool per entity kind.
// An entity lives in exactly one pool.
type World struct {
	nextEntityID Entity

	Player *components.Player

	Bullets    *Pool[*components.Projectile]
	Enemies    *Pool[*components.Enemy]
	PowerUps   *Pool[*components.PowerUp]
	Explosions *Pool[*components.Explosion]
	Flashes    *Pool[*components.Flash]

	Stars *components.Starfield
}

// NewWorld creates a world around player with an empty starfield
func NewWorld(player *components.Player) *World {
	return &World{
		nextEntityID: 1,
		Player:       player,
		Bullets:      NewPool[*components.Projectile](),
		Enemies:      NewPool[*components.Enemy](),
		PowerUps:     NewPool[*components.PowerUp](),
		Explosions:   NewPool[*components.Explosion](),
		Flashes:      NewPool[*components.Flash](),
		Stars:        &components.Starfield{},
	}
}

// CreateEntity allocates a fresh ID
func (w *World) CreateEntity() Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Spawn allocates an ID and inserts val into pool
func Spawn[T any](w *World, pool *Pool[T], val T) Entity {
	e := w.CreateEntity()
	pool.Add(e, val)
	return e
}
