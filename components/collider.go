package components

import "github.com/lixenwraith/void-shooter/vmath"

// Collider is implemented by every entity that takes part in collision tests
type Collider interface {
	Bounds() vmath.Rect
}

// Overlaps reports axis-aligned overlap of two colliders
func Overlaps(a, b Collider) bool {
	return a.Bounds().Intersects(b.Bounds())
}
