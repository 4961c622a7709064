package components

import (
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/vmath"
)

// PowerUpKind enumerates pickups
type PowerUpKind uint8

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpAutofire
	PowerUpHeal
)

// PowerUpKinds lists every kind in spawn-roll order
var PowerUpKinds = [...]PowerUpKind{PowerUpSpeed, PowerUpAutofire, PowerUpHeal}

// String returns the HUD label source
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpAutofire:
		return "autofire"
	case PowerUpHeal:
		return "heal"
	default:
		return "unknown"
	}
}

// PowerUp is a static pickup
type PowerUp struct {
	Kind PowerUpKind
	Pos  vmath.Vec2
}

// Bounds is the fixed pickup box
func (p *PowerUp) Bounds() vmath.Rect {
	return vmath.RectCentered(p.Pos, constants.PowerUpSize, constants.PowerUpSize)
}
