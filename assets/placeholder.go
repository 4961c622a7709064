package assets

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/constants"
)

var (
	hullGreen   = color.NRGBA{0, 180, 0, 255}
	enemyRed    = color.NRGBA{200, 40, 40, 255}
	flashWhite  = color.NRGBA{255, 255, 255, 200}
	boltYellow  = color.NRGBA{255, 255, 100, 255}
	boltGlow    = color.NRGBA{255, 255, 255, 80}
	beamBlue    = color.NRGBA{150, 220, 255, 255}
	speedBlue   = color.NRGBA{0, 200, 255, 255}
	autofireAmb = color.NRGBA{255, 220, 0, 255}
	healGreen   = color.NRGBA{0, 220, 0, 255}
)

// fillPolygon rasterizes a closed polygon onto dst with anti-aliasing
func fillPolygon(dst *image.NRGBA, c color.Color, pts ...f32.Vec2) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// fillCircle approximates a disc with a 48-gon
func fillCircle(dst *image.NRGBA, c color.Color, cx, cy, radius float32) {
	const segments = 48
	pts := make([]f32.Vec2, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = f32.Vec2{cx + radius*float32(math.Cos(a)), cy + radius*float32(math.Sin(a))}
	}
	fillPolygon(dst, c, pts...)
}

// fillRect composites a solid rectangle
func fillRect(dst *image.NRGBA, c color.Color, x, y, w, h int) {
	xdraw.Draw(dst, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, xdraw.Over)
}

// PlayerPlaceholder is the green arrowhead hull, nose up
func PlayerPlaceholder() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, constants.PlayerSize, constants.PlayerSize))
	fillPolygon(img, hullGreen,
		f32.Vec2{25, 0}, f32.Vec2{45, 45}, f32.Vec2{25, 35}, f32.Vec2{5, 45})
	return img
}

// EnemyPlaceholder is a red diamond
func EnemyPlaceholder() *image.NRGBA {
	s := float32(constants.EnemySize)
	img := image.NewNRGBA(image.Rect(0, 0, constants.EnemySize, constants.EnemySize))
	fillPolygon(img, enemyRed,
		f32.Vec2{s / 2, 2}, f32.Vec2{s - 2, s / 2}, f32.Vec2{s / 2, s - 2}, f32.Vec2{2, s / 2})
	return img
}

// ExplosionPlaceholder is a translucent white disc repeated for a short sequence
func ExplosionPlaceholder() []*image.NRGBA {
	s := constants.ExplosionSize
	disc := image.NewNRGBA(image.Rect(0, 0, s, s))
	fillCircle(disc, flashWhite, float32(s)/2, float32(s)/2, float32(s)/2)

	frames := make([]*image.NRGBA, constants.ExplosionPlaceholderFrames)
	for i := range frames {
		frames[i] = disc
	}
	return frames
}

// BoltPlaceholder is a small yellow slug with a faint tail
func BoltPlaceholder() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, constants.BoltPlaceholderWidth, constants.BoltPlaceholderHeight))
	fillRect(img, boltYellow, 0, 0, 6, 12)
	fillRect(img, boltGlow, 0, 10, 6, 6)
	return img
}

// BeamPlaceholder is a thin light-blue core, stretched to beam size
func BeamPlaceholder() *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, 12, 48))
	fillRect(src, beamBlue, 4, 0, 4, 48)
	return scale(src, constants.BeamWidth, constants.BeamHeight)
}

// PowerUpIcon draws the procedural pickup badge for kind
func PowerUpIcon(kind components.PowerUpKind) *image.NRGBA {
	s := constants.PowerUpSize
	img := image.NewNRGBA(image.Rect(0, 0, s, s))
	switch kind {
	case components.PowerUpSpeed:
		fillCircle(img, speedBlue, 15, 15, 13)
		fillPolygon(img, colornames.White,
			f32.Vec2{10, 8}, f32.Vec2{20, 8}, f32.Vec2{20, 15}, f32.Vec2{25, 15},
			f32.Vec2{15, 25}, f32.Vec2{15, 18}, f32.Vec2{10, 18})
	case components.PowerUpAutofire:
		fillCircle(img, autofireAmb, 15, 15, 13)
		fillRect(img, colornames.White, 8, 12, 14, 6)
		fillRect(img, colornames.White, 14, 6, 3, 20)
	case components.PowerUpHeal:
		fillCircle(img, healGreen, 15, 15, 13)
		fillRect(img, colornames.White, 13, 6, 4, 18)
		fillRect(img, colornames.White, 6, 13, 18, 4)
	}
	return img
}
