package render

import (
	"image"
	"math"
	"testing"

	"github.com/lixenwraith/void-shooter/vmath"
)

func TestViewportPlacement(t *testing.T) {
	tests := []struct {
		name             string
		screenW, screenH int
		fullscreen       bool
		want             Viewport
	}{
		{"Windowed centered", 120, 40, false, Viewport{X: 10, Y: 1, Cols: 100, Rows: 38, Width: 800, Height: 600}},
		{"Windowed clipped to small terminal", 50, 20, false, Viewport{X: 0, Y: 0, Cols: 50, Rows: 20, Width: 800, Height: 600}},
		{"Fullscreen fills terminal", 80, 24, true, Viewport{X: 0, Y: 0, Cols: 80, Rows: 24, Width: 800, Height: 600}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewViewport(tt.screenW, tt.screenH, tt.fullscreen, 100, 38, 800, 600)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestViewportToLogical(t *testing.T) {
	vp := NewViewport(120, 40, false, 100, 38, 800, 600)
	tests := []struct {
		name   string
		cx, cy int
		want   vmath.Vec2
		inside bool
	}{
		{"Top-left cell center", 10, 1, vmath.V(4, 600*0.5/38), true},
		{"Bottom-right cell center", 109, 38, vmath.V(796, 600*37.5/38), true},
		{"Left letterbox", 9, 1, vmath.Vec2{}, false},
		{"Right letterbox", 110, 5, vmath.Vec2{}, false},
		{"Above play area", 50, 0, vmath.Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := vp.ToLogical(tt.cx, tt.cy)
			if ok != tt.inside {
				t.Fatalf("Expected inside=%v, got %v", tt.inside, ok)
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestViewportPixelMapping(t *testing.T) {
	vp := NewViewport(100, 38, true, 100, 38, 800, 600)

	got := vp.PixelRect(vmath.Rect{X: 10, Y: 10, W: 200, H: 20})
	if want := image.Rect(1, 1, 26, 4); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if col, row := vp.Cell(vmath.V(400, 300)); col != 50 || row != 19 {
		t.Errorf("Expected center cell (50,19), got (%d,%d)", col, row)
	}

	empty := Viewport{}
	if _, ok := empty.ToLogical(0, 0); ok {
		t.Error("Expected zero viewport to reject every cell")
	}
}
