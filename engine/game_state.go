package engine

import (
	"time"

	"github.com/lixenwraith/void-shooter/components"
)

// BuffState is the single active timed power-up
type BuffState struct {
	Active    bool
	Kind      components.PowerUpKind
	ExpiresAt time.Duration
}

// GameState holds session-local scalars mutated by systems.
// Buff overrides live here rather than on the shared configuration.
type GameState struct {
	Score int
	Level int

	Buff     BuffState
	Autofire bool

	// Charge exists only when the loadout includes the beam ability
	Charge *components.ChargeState

	// Defeated is latched by collision resolution once health reaches zero
	Defeated bool
}

// NewGameState creates the state for a fresh session
func NewGameState(initialLevel int, beamEnabled bool) *GameState {
	s := &GameState{Level: initialLevel}
	if beamEnabled {
		s.Charge = &components.ChargeState{}
	}
	return s
}

// BeamEnabled reports whether the beam ability is loaded
func (s *GameState) BeamEnabled() bool {
	return s.Charge != nil
}

// AddScore increments the score; negative awards are ignored
func (s *GameState) AddScore(points int) {
	if points > 0 {
		s.Score += points
	}
}

// ApplyBuff overwrites any active buff
func (s *GameState) ApplyBuff(kind components.PowerUpKind, expiresAt time.Duration) {
	s.Buff = BuffState{Active: true, Kind: kind, ExpiresAt: expiresAt}
}
