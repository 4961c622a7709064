package components

import (
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/vmath"
)

// HealthTier selects the hull sprite variant
type HealthTier int

const (
	TierFull HealthTier = iota
	TierSlight
	TierVery
	TierDamaged
)

// String returns the asset key of the tier
func (t HealthTier) String() string {
	switch t {
	case TierFull:
		return "full"
	case TierSlight:
		return "slight"
	case TierVery:
		return "very"
	default:
		return "damaged"
	}
}

// Player is the session's ship
type Player struct {
	Pos       vmath.Vec2
	Health    int
	MaxHealth int

	// Angle is the sprite rotation in degrees, counter-clockwise, 0 = nose up
	Angle float64

	// Speed is movement per tick, overridden by the speed buff
	Speed float64
}

// NewPlayer creates a full-health player at pos
func NewPlayer(pos vmath.Vec2, maxHealth int, speed float64) *Player {
	return &Player{
		Pos:       pos,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Speed:     speed,
	}
}

// Tier maps health to a hull sprite tier
func (p *Player) Tier() HealthTier {
	switch {
	case p.Health > constants.HealthTierFull:
		return TierFull
	case p.Health > constants.HealthTierSlight:
		return TierSlight
	case p.Health > constants.HealthTierVery:
		return TierVery
	default:
		return TierDamaged
	}
}

// Damage subtracts n, flooring at zero
func (p *Player) Damage(n int) {
	p.Health = vmath.ClampInt(p.Health-n, 0, p.MaxHealth)
}

// Heal adds n, capped at MaxHealth
func (p *Player) Heal(n int) {
	p.Health = vmath.ClampInt(p.Health+n, 0, p.MaxHealth)
}

// Defeated reports whether health reached zero
func (p *Player) Defeated() bool {
	return p.Health <= 0
}

// Bounds is the box of the rotated hull sprite
func (p *Player) Bounds() vmath.Rect {
	w, h := vmath.RotatedExtent(constants.PlayerSize, constants.PlayerSize, p.Angle)
	return vmath.RectCentered(p.Pos, w, h)
}
