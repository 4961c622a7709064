package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int

	fullscreen bool
	winCols    int
	winRows    int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen, fullscreen bool, winCols, winRows int) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:     screen,
		canvas:     NewCanvas(0, 0),
		renderers:  make([]rendererEntry, 0, 8),
		fullscreen: fullscreen,
		winCols:    winCols,
		winRows:    winRows,
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Viewport returns the play area placement for the current terminal size
func (o *RenderOrchestrator) Viewport(width, height float64) Viewport {
	w, h := o.screen.Size()
	return NewViewport(w, h, o.fullscreen, o.winCols, o.winRows, width, height)
}

// Resize syncs the terminal after a size change; the canvas follows on the next frame
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// Screen returns the terminal the orchestrator draws to
func (o *RenderOrchestrator) Screen() tcell.Screen {
	return o.screen
}

// Canvas exposes the compositor for inspection
func (o *RenderOrchestrator) Canvas() *Canvas {
	return o.canvas
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	vp := ctx.Viewport
	o.screen.Fill(' ', tcell.StyleDefault.Background(RgbLetterbox.Tcell()))
	o.canvas.Resize(vp.Cols, vp.Rows)
	o.canvas.Clear(RgbBackground)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}

	o.canvas.Flush(o.screen, vp.X, vp.Y)
	o.screen.Show()
}
