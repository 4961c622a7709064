package components

import "github.com/lixenwraith/void-shooter/vmath"

// ProjectileKind tags the projectile variant
type ProjectileKind uint8

const (
	// ProjectileBolt is the standard single-hit shot
	ProjectileBolt ProjectileKind = iota
	// ProjectileBeam is the fast, wide, piercing shot fired from a banked charge
	ProjectileBeam
)

// String returns a log-friendly name
func (k ProjectileKind) String() string {
	if k == ProjectileBeam {
		return "beam"
	}
	return "bolt"
}

// Projectile is a player shot
type Projectile struct {
	Kind ProjectileKind
	Pos  vmath.Vec2
	Vel  vmath.Vec2

	// Angle is the firing direction in screen-math degrees (0 = right, +90 = down)
	Angle float64

	// Pierce is the number of additional hits survived; 0 dies on first hit
	Pierce int

	// Sprite size before rotation
	Width, Height float64

	// Laser animation, bolts only; FrameCount 0 means static placeholder
	Frame      int
	FrameCount int
	FrameTimer int

	// Charged tints the bolt sprite; no firing path sets it
	Charged bool
}

// SpriteAngle converts the firing angle to the sprite's counter-clockwise rotation
func (p *Projectile) SpriteAngle() float64 {
	return -p.Angle - 90
}

// Bounds is the box of the rotated sprite
func (p *Projectile) Bounds() vmath.Rect {
	w, h := vmath.RotatedExtent(p.Width, p.Height, p.SpriteAngle())
	return vmath.RectCentered(p.Pos, w, h)
}
