package render

import (
	"testing"
)

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
	paint   RGB
}

func (r *recordingRenderer) Render(ctx RenderContext, canvas *Canvas) {
	*r.log = append(*r.log, r.name)
	canvas.FillRect(canvas.Image().Bounds(), r.paint, 1)
}

func (r *recordingRenderer) IsVisible(RenderContext) bool {
	return r.visible
}

func TestOrchestratorOrderAndVisibility(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	o := NewRenderOrchestrator(screen, false, 10, 4)

	var calls []string
	o.Register(&recordingRenderer{name: "ui", log: &calls, visible: true, paint: RGB{0, 0, 255}}, PriorityUI)
	o.Register(&recordingRenderer{name: "bg", log: &calls, visible: true, paint: RGB{255, 0, 0}}, PriorityBackground)
	o.Register(&recordingRenderer{name: "hidden", log: &calls, visible: false}, PriorityEntities)
	o.Register(&recordingRenderer{name: "ui2", log: &calls, visible: true, paint: RGB{0, 255, 0}}, PriorityUI)

	vp := o.Viewport(800, 600)
	if vp.X != 5 || vp.Y != 1 || vp.Cols != 10 || vp.Rows != 4 {
		t.Fatalf("Unexpected viewport %+v", vp)
	}
	o.RenderFrame(RenderContext{Viewport: vp})

	want := []string{"bg", "ui", "ui2"}
	if len(calls) != len(want) {
		t.Fatalf("Expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], calls[i])
		}
	}

	// Last renderer's paint reaches the play area; letterbox stays outside
	_, _, style, _ := screen.GetContent(5, 1)
	if _, bg, _ := style.Decompose(); TcellToRGB(bg) != (RGB{0, 255, 0}) {
		t.Errorf("Expected play area painted green, got %v", TcellToRGB(bg))
	}
	_, _, style, _ = screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); TcellToRGB(bg) != RgbLetterbox {
		t.Errorf("Expected letterbox outside play area, got %v", TcellToRGB(bg))
	}
}

func TestOrchestratorFollowsTerminalSize(t *testing.T) {
	screen := newSimScreen(t, 20, 6)
	o := NewRenderOrchestrator(screen, true, 10, 4)

	vp := o.Viewport(800, 600)
	o.RenderFrame(RenderContext{Viewport: vp})
	if cols, rows := o.Canvas().Size(); cols != 20 || rows != 6 {
		t.Fatalf("Expected canvas 20x6, got %dx%d", cols, rows)
	}

	screen.SetSize(30, 8)
	o.Resize()
	vp = o.Viewport(800, 600)
	o.RenderFrame(RenderContext{Viewport: vp})
	if cols, rows := o.Canvas().Size(); cols != 30 || rows != 8 {
		t.Errorf("Expected canvas 30x8 after resize, got %dx%d", cols, rows)
	}
}
