package renderers

import (
	"image"

	"github.com/lixenwraith/void-shooter/render"
	"github.com/lixenwraith/void-shooter/vmath"
)

// StarfieldRenderer draws the parallax background, back layers first
type StarfieldRenderer struct{}

// NewStarfieldRenderer creates a starfield renderer
func NewStarfieldRenderer() *StarfieldRenderer {
	return &StarfieldRenderer{}
}

// IsVisible hides the sky behind the game over screen
func (r *StarfieldRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.GameOver
}

// Render composites every star; stars smaller than a pixel blend by coverage
func (r *StarfieldRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	sf := ctx.World.Stars
	if sf == nil {
		return
	}
	vp := ctx.Viewport
	sx := vp.ScaleX()

	for li := range sf.Layers {
		layer := &sf.Layers[li]
		diameter := 2 * layer.Radius * sx
		for _, s := range layer.Stars {
			alpha := float64(layer.Opacity(s)) / 255
			pos := vmath.V(s.X, s.Y)

			if diameter >= 2 {
				px, py := vp.ToPixel(pos)
				rad := int(diameter) + 1
				clip := image.Rect(int(px)-rad, int(py)-rad, int(px)+rad+1, int(py)+rad+1)
				render.DrawDisc(canvas, vp, pos, layer.Radius, clip, render.RgbStar, alpha)
				continue
			}

			px, py := vp.ToPixel(pos)
			canvas.BlendPixel(int(px), int(py), render.RgbStar, alpha*min(1, diameter))
		}
	}
}
