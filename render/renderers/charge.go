package renderers

import (
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/render"
	"github.com/lixenwraith/void-shooter/vmath"
)

// chargeInset is the gap between outline and fill
const chargeInset = 2

// ChargeRenderer draws the beam charge gauge at the bottom center, filling upward
type ChargeRenderer struct{}

// NewChargeRenderer creates a charge gauge renderer
func NewChargeRenderer() *ChargeRenderer {
	return &ChargeRenderer{}
}

// IsVisible shows the gauge only when the beam ability is owned
func (r *ChargeRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.GameOver && ctx.State.BeamEnabled()
}

// Render draws outline and fill proportional to charge progress
func (r *ChargeRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	vp := ctx.Viewport
	progress := ctx.State.Charge.Progress(ctx.Now, ctx.Config.BeamChargeIdle)

	const w, h = constants.ChargeBarWidth, constants.ChargeBarHeight
	x := float64(int(ctx.Config.PlayWidth)/2 - w/2)
	y := ctx.Config.PlayHeight - h - constants.ChargeBarMargin

	canvas.StrokeRect(vp.PixelRect(vmath.Rect{X: x, Y: y, W: w, H: h}), render.RgbChargeOutline)

	fillH := float64(int((h - 2*chargeInset) * progress))
	if fillH <= 0 {
		return
	}
	fill := vmath.Rect{X: x + chargeInset, Y: y + h - chargeInset - fillH, W: w - 2*chargeInset, H: fillH}
	canvas.FillRect(vp.PixelRect(fill), render.RgbChargeFill, 1)
}
