package render

import (
	"image"
	"math"

	"github.com/lixenwraith/void-shooter/vmath"
)

// Viewport maps the logical play area onto a block of terminal cells.
// Fullscreen stretches over the whole terminal; windowed is centered at a fixed size.
type Viewport struct {
	// Top-left cell of the play area on screen
	X, Y int

	// Size in cells; pixel height is 2×Rows
	Cols, Rows int

	// Logical play area
	Width, Height float64
}

// NewViewport fits the play area to a screenW×screenH terminal
func NewViewport(screenW, screenH int, fullscreen bool, winCols, winRows int, width, height float64) Viewport {
	vp := Viewport{Cols: screenW, Rows: screenH, Width: width, Height: height}
	if !fullscreen {
		vp.Cols = min(winCols, screenW)
		vp.Rows = min(winRows, screenH)
		vp.X = (screenW - vp.Cols) / 2
		vp.Y = (screenH - vp.Rows) / 2
	}
	vp.Cols, vp.Rows = max(vp.Cols, 0), max(vp.Rows, 0)
	return vp
}

// ScaleX returns pixels per logical unit horizontally
func (v Viewport) ScaleX() float64 {
	if v.Width <= 0 {
		return 0
	}
	return float64(v.Cols) / v.Width
}

// ScaleY returns pixels per logical unit vertically
func (v Viewport) ScaleY() float64 {
	if v.Height <= 0 {
		return 0
	}
	return float64(v.Rows*2) / v.Height
}

// ToPixel converts a logical point to fractional canvas pixel coordinates
func (v Viewport) ToPixel(p vmath.Vec2) (float64, float64) {
	return p.X * v.ScaleX(), p.Y * v.ScaleY()
}

// PixelRect converts a logical box to the canvas pixels it covers
func (v Viewport) PixelRect(r vmath.Rect) image.Rectangle {
	sx, sy := v.ScaleX(), v.ScaleY()
	return image.Rect(
		int(math.Round(r.X*sx)), int(math.Round(r.Y*sy)),
		int(math.Round(r.Right()*sx)), int(math.Round(r.Bottom()*sy)),
	)
}

// Cell converts a logical point to the canvas cell containing it
func (v Viewport) Cell(p vmath.Vec2) (col, row int) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0
	}
	return int(p.X * float64(v.Cols) / v.Width), int(p.Y * float64(v.Rows) / v.Height)
}

// ToLogical maps a screen cell to the logical point at its center.
// Returns false for cells outside the play area.
func (v Viewport) ToLogical(cx, cy int) (vmath.Vec2, bool) {
	lx, ly := cx-v.X, cy-v.Y
	if v.Cols == 0 || v.Rows == 0 || lx < 0 || ly < 0 || lx >= v.Cols || ly >= v.Rows {
		return vmath.Vec2{}, false
	}
	return vmath.V(
		(float64(lx)+0.5)/float64(v.Cols)*v.Width,
		(float64(ly)+0.5)/float64(v.Rows)*v.Height,
	), true
}
