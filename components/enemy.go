package components

import (
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/vmath"
)

// Enemy is a homing hostile ship
type Enemy struct {
	Pos   vmath.Vec2
	Level int
	Speed float64

	// Variant indexes the loaded enemy hull sprites
	Variant int
}

// Bounds is the fixed hull box
func (e *Enemy) Bounds() vmath.Rect {
	return vmath.RectCentered(e.Pos, constants.EnemySize, constants.EnemySize)
}
