package engine

import (
	"iter"
	"slices"
)

// Entity is a unique identifier for an entity
type Entity uint64

// Pool owns every live entity of one kind.
// Insertion order is preserved so update and collision passes are deterministic.
// Not safe for concurrent use; the frame loop is the only writer.
type Pool[T any] struct {
	items    map[Entity]T
	entities []Entity
}

// NewPool creates an empty pool
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		items:    make(map[Entity]T),
		entities: make([]Entity, 0, 64),
	}
}

// Add inserts or replaces the value for e
func (p *Pool[T]) Add(e Entity, val T) {
	if _, exists := p.items[e]; !exists {
		p.entities = append(p.entities, e)
	}
	p.items[e] = val
}

// Get retrieves the value for e
func (p *Pool[T]) Get(e Entity) (T, bool) {
	val, ok := p.items[e]
	return val, ok
}

// Has reports membership
func (p *Pool[T]) Has(e Entity) bool {
	_, ok := p.items[e]
	return ok
}

// Remove deletes e; removing an absent entity is a no-op
func (p *Pool[T]) Remove(e Entity) {
	if _, exists := p.items[e]; !exists {
		return
	}
	delete(p.items, e)
	if i := slices.Index(p.entities, e); i >= 0 {
		p.entities = slices.Delete(p.entities, i, i+1)
	}
}

// Len returns the live count
func (p *Pool[T]) Len() int {
	return len(p.entities)
}

// Entities returns a copy of the live entity list
func (p *Pool[T]) Entities() []Entity {
	return slices.Clone(p.entities)
}

// All iterates a snapshot of the pool, skipping entries removed during iteration
func (p *Pool[T]) All() iter.Seq2[Entity, T] {
	snapshot := slices.Clone(p.entities)
	return func(yield func(Entity, T) bool) {
		for _, e := range snapshot {
			val, ok := p.items[e]
			if !ok {
				continue
			}
			if !yield(e, val) {
				return
			}
		}
	}
}

// Clear removes everything
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.entities = p.entities[:0]
}
