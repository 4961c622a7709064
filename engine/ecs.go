package engine

import "slices"

// System is an interface that all systems must implement
type System interface {
	Update(ctx *GameContext)
	Priority() int // Lower values run first
}

// Scheduler runs systems in priority order once per tick
type Scheduler struct {
	systems []System
}

// NewScheduler creates a scheduler holding systems
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.AddSystem(sys)
	}
	return s
}

// AddSystem adds a system and keeps the list sorted by priority.
// Systems with equal priority keep insertion order.
func (s *Scheduler) AddSystem(system System) {
	s.systems = append(s.systems, system)
	slices.SortStableFunc(s.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns the ordered system list
func (s *Scheduler) Systems() []System {
	return slices.Clone(s.systems)
}

// Update runs every system against ctx
func (s *Scheduler) Update(ctx *GameContext) {
	for _, sys := range s.systems {
		sys.Update(ctx)
	}
}
