package render

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestCanvasClearAndBlend(t *testing.T) {
	c := NewCanvas(4, 2)
	if got := c.Pixel(3, 3); got != RgbBackground {
		t.Errorf("Expected background after create, got %v", got)
	}

	c.BlendPixel(1, 1, RGB{255, 255, 255}, 0.5)
	if got := c.Pixel(1, 1); got != (RGB{127, 127, 127}) {
		t.Errorf("Expected half blend, got %v", got)
	}

	// Out of range is ignored
	c.BlendPixel(-1, 0, RGB{255, 0, 0}, 1)
	c.BlendPixel(4, 4, RGB{255, 0, 0}, 1)

	c.DrawText(0, 0, "hi", RGB{1, 2, 3})
	c.Clear(RGB{9, 9, 9})
	if got := c.Pixel(1, 1); got != (RGB{9, 9, 9}) {
		t.Errorf("Expected clear color, got %v", got)
	}
	if r, _ := c.Glyph(0, 0); r != 0 {
		t.Errorf("Expected text cleared, got %q", r)
	}
}

func TestCanvasDrawTextClips(t *testing.T) {
	c := NewCanvas(3, 1)
	c.DrawText(1, 0, "abc", RGB{255, 255, 255})
	c.DrawText(0, 5, "zzz", RGB{255, 255, 255})

	tests := []struct {
		col  int
		want rune
	}{
		{0, 0},
		{1, 'a'},
		{2, 'b'},
	}
	for _, tt := range tests {
		if r, _ := c.Glyph(tt.col, 0); r != tt.want {
			t.Errorf("col %d: expected %q, got %q", tt.col, tt.want, r)
		}
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Resize(2, 3)
	if cols, rows := c.Size(); cols != 2 || rows != 3 {
		t.Fatalf("Expected 2x3, got %dx%d", cols, rows)
	}
	if b := c.Image().Bounds(); b.Dx() != 2 || b.Dy() != 6 {
		t.Errorf("Expected 2x6 pixel plane, got %v", b)
	}
	c.Resize(20, 20)
	if b := c.Image().Bounds(); b.Dx() != 20 || b.Dy() != 40 {
		t.Errorf("Expected 20x40 pixel plane, got %v", b)
	}
	if got := c.Pixel(19, 39); got != RgbBackground {
		t.Errorf("Expected grown canvas cleared, got %v", got)
	}
}

func TestCanvasFlushHalfBlocks(t *testing.T) {
	screen := newSimScreen(t, 10, 4)
	red := RGB{255, 0, 0}

	c := NewCanvas(3, 1)
	c.FillRect(image.Rect(0, 0, 1, 1), red, 1)
	c.DrawText(2, 0, "A", RGB{0, 255, 0})
	c.Flush(screen, 2, 1)

	r, _, style, _ := screen.GetContent(2, 1)
	fg, bg, _ := style.Decompose()
	if r != halfBlock || TcellToRGB(fg) != red || TcellToRGB(bg) != RgbBackground {
		t.Errorf("Expected red-over-background half block, got %q fg=%v bg=%v", r, TcellToRGB(fg), TcellToRGB(bg))
	}

	r, _, style, _ = screen.GetContent(3, 1)
	_, bg, _ = style.Decompose()
	if r != ' ' || TcellToRGB(bg) != RgbBackground {
		t.Errorf("Expected uniform cell as space, got %q bg=%v", r, TcellToRGB(bg))
	}

	r, _, style, _ = screen.GetContent(4, 1)
	fg, _, _ = style.Decompose()
	if r != 'A' || TcellToRGB(fg) != (RGB{0, 255, 0}) {
		t.Errorf("Expected green text, got %q fg=%v", r, TcellToRGB(fg))
	}
}

func TestBlendHelpers(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	tests := []struct {
		name string
		got  RGB
		want RGB
	}{
		{"Blend zero alpha", Blend(a, b, 0), a},
		{"Blend full alpha", Blend(a, b, 1), b},
		{"Lerp midpoint", Lerp(a, b, 0.5), RGB{100, 50, 25}},
		{"Scale half", Scale(b, 0.5), RGB{100, 50, 25}},
		{"Scale clamps", Scale(b, 2), RGB{255, 200, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, tt.got)
			}
		})
	}
}
