package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lixenwraith/void-shooter/vmath"
)

// unitViewport maps one logical unit to one pixel on both axes
func unitViewport() Viewport {
	return Viewport{Cols: 200, Rows: 100, Width: 200, Height: 200}
}

func applyAff(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func TestSpriteTransform(t *testing.T) {
	src := image.Rect(0, 0, 10, 10)
	tests := []struct {
		name       string
		deg        float64
		srcX, srcY float64
		wantX      float64
		wantY      float64
	}{
		{"Unrotated corner", 0, 0, 0, 95, 95},
		{"Unrotated nose", 0, 5, 0, 100, 95},
		{"Quarter turn nose points left", 90, 5, 0, 95, 100},
		{"Quarter clockwise nose points right", -90, 5, 0, 105, 100},
		{"Half turn nose points down", 180, 5, 0, 100, 105},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := SpriteTransform(unitViewport(), src, vmath.V(100, 100), 10, 10, tt.deg)
			x, y := applyAff(m, tt.srcX, tt.srcY)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Expected (%v,%v), got (%v,%v)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestSpriteTransformScalesToSize(t *testing.T) {
	// 50px source drawn at 10 logical units
	m := SpriteTransform(unitViewport(), image.Rect(0, 0, 50, 50), vmath.V(20, 20), 10, 10, 0)
	x, y := applyAff(m, 50, 50)
	if math.Abs(x-25) > 1e-9 || math.Abs(y-25) > 1e-9 {
		t.Errorf("Expected far corner at (25,25), got (%v,%v)", x, y)
	}
}

func TestDrawSpriteComposites(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	c := NewCanvas(200, 100)
	DrawSprite(c, unitViewport(), img, vmath.V(50, 50), 10, 10, 30)

	if got := c.Pixel(50, 50); got != (RGB{255, 255, 255}) {
		t.Errorf("Expected white at sprite center, got %v", got)
	}
	if got := c.Pixel(70, 70); got != RgbBackground {
		t.Errorf("Expected background outside sprite, got %v", got)
	}

	// Nil image is a no-op
	DrawSprite(c, unitViewport(), nil, vmath.V(0, 0), 10, 10, 0)
}

func TestDrawDisc(t *testing.T) {
	c := NewCanvas(200, 100)
	white := RGB{255, 255, 255}
	clip := image.Rect(0, 0, 200, 200)

	DrawDisc(c, unitViewport(), vmath.V(100, 100), 10, clip, white, 1)
	if got := c.Pixel(100, 100); got != white {
		t.Errorf("Expected lit center, got %v", got)
	}
	if got := c.Pixel(100, 115); got != RgbBackground {
		t.Errorf("Expected unlit outside radius, got %v", got)
	}

	// Clip cuts the disc
	c.Clear(RgbBackground)
	DrawDisc(c, unitViewport(), vmath.V(100, 100), 10, image.Rect(100, 0, 200, 200), white, 1)
	if got := c.Pixel(95, 100); got != RgbBackground {
		t.Errorf("Expected clipped half unlit, got %v", got)
	}
	if got := c.Pixel(105, 100); got != white {
		t.Errorf("Expected unclipped half lit, got %v", got)
	}
}

func TestRGBConversions(t *testing.T) {
	c := RGB{10, 20, 30}
	if got := c.NRGBA(0.5); got != (color.NRGBA{10, 20, 30, 127}) {
		t.Errorf("Expected half alpha NRGBA, got %v", got)
	}
	if got := FromColor(color.NRGBA{10, 20, 30, 255}); got != c {
		t.Errorf("Expected round trip, got %v", got)
	}
}
