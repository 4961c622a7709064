package renderers

import (
	"github.com/lixenwraith/void-shooter/render"
	"github.com/lixenwraith/void-shooter/vmath"
)

// flashBox is the square the flash is drawn into; the disc is clipped once it outgrows it
const flashBox = 100.0

// EffectsRenderer draws explosions and pickup flashes
type EffectsRenderer struct{}

// NewEffectsRenderer creates an effects renderer
func NewEffectsRenderer() *EffectsRenderer {
	return &EffectsRenderer{}
}

// IsVisible hides effects behind the game over screen
func (r *EffectsRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.GameOver
}

// Render draws explosion frames then flash discs
func (r *EffectsRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	w, vp := ctx.World, ctx.Viewport

	for _, ex := range w.Explosions.All() {
		render.DrawSprite(canvas, vp, ctx.Assets.Explosion(ex.Frame), ex.Pos, ex.Size, ex.Size, 0)
	}

	for _, f := range w.Flashes.All() {
		alpha := float64(f.Alpha()) / 255
		clip := vp.PixelRect(vmath.RectCentered(f.Pos, flashBox, flashBox))
		render.DrawDisc(canvas, vp, f.Pos, f.Radius, clip, render.RgbFlash, alpha)
	}
}
