package render

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/lixenwraith/void-shooter/vmath"
)

// circleSegments is the polygon resolution for circles
const circleSegments = 32

// SpriteTransform returns the source-to-canvas affine for img centered at pos,
// scaled to w×h logical units and rotated deg degrees counter-clockwise on screen
func SpriteTransform(vp Viewport, src image.Rectangle, pos vmath.Vec2, w, h, deg float64) f64.Aff3 {
	sw, sh := float64(src.Dx()), float64(src.Dy())
	if sw == 0 || sh == 0 {
		return f64.Aff3{}
	}
	kx, ky := w/sw, h/sh
	cx := float64(src.Min.X) + sw/2
	cy := float64(src.Min.Y) + sh/2
	sx, sy := vp.ScaleX(), vp.ScaleY()

	rad := vmath.Radians(deg)
	c, s := math.Cos(rad), math.Sin(rad)

	// Counter-clockwise on a y-down screen: x' = x·cos + y·sin, y' = -x·sin + y·cos
	return f64.Aff3{
		sx * c * kx, sx * s * ky, sx * (pos.X - c*kx*cx - s*ky*cy),
		-sy * s * kx, sy * c * ky, sy * (pos.Y + s*kx*cx - c*ky*cy),
	}
}

// DrawSprite composites img onto the canvas; see SpriteTransform for placement
func DrawSprite(c *Canvas, vp Viewport, img image.Image, pos vmath.Vec2, w, h, deg float64) {
	if img == nil {
		return
	}
	m := SpriteTransform(vp, img.Bounds(), pos, w, h, deg)
	if m == (f64.Aff3{}) {
		return
	}
	xdraw.ApproxBiLinear.Transform(c.Image(), m, img, img.Bounds(), xdraw.Over, nil)
}

// DrawDisc fills a circle of the given logical radius, clipped to clip in canvas pixels
func DrawDisc(c *Canvas, vp Viewport, center vmath.Vec2, radius float64, clip image.Rectangle, col RGB, alpha float64) {
	if radius <= 0 || alpha <= 0 {
		return
	}
	clip = clip.Intersect(c.Image().Bounds())
	if clip.Empty() {
		return
	}
	// Mask coordinates are relative to the clip origin
	r := vector.NewRasterizer(clip.Dx(), clip.Dy())
	addCircle(r, vp, center, radius, clip.Min)
	r.Draw(c.Image(), clip, image.NewUniform(col.NRGBA(alpha)), image.Point{})
}

// addCircle appends a closed polygon scaled per axis by the viewport, shifted by -origin
func addCircle(r *vector.Rasterizer, vp Viewport, center vmath.Vec2, radius float64, origin image.Point) {
	point := func(i int) f32.Vec2 {
		a := 2 * math.Pi * float64(i) / circleSegments
		x, y := vp.ToPixel(center.Add(vmath.V(math.Cos(a)*radius, math.Sin(a)*radius)))
		return f32.Vec2{float32(x) - float32(origin.X), float32(y) - float32(origin.Y)}
	}
	start := point(0)
	r.MoveTo(start[0], start[1])
	for i := 1; i < circleSegments; i++ {
		p := point(i)
		r.LineTo(p[0], p[1])
	}
	r.ClosePath()
}
