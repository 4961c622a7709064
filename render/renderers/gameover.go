package renderers

import (
	"fmt"

	"github.com/lixenwraith/void-shooter/render"
	"github.com/lixenwraith/void-shooter/vmath"
)

// GameOverRenderer draws the end-of-session summary on black
type GameOverRenderer struct{}

// NewGameOverRenderer creates a game over renderer
func NewGameOverRenderer() *GameOverRenderer {
	return &GameOverRenderer{}
}

// IsVisible shows the summary only after defeat
func (r *GameOverRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.GameOver
}

// Render draws the centered title, final score and hint
func (r *GameOverRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	canvas.Clear(render.RGBBlack)
	cx, cy := ctx.Config.PlayWidth/2, ctx.Config.PlayHeight/2

	drawCentered(ctx.Viewport, canvas, vmath.V(cx, cy-40), "GAME OVER", render.RgbGameOverTitle)
	drawCentered(ctx.Viewport, canvas, vmath.V(cx, cy+20), fmt.Sprintf("Score: %d", ctx.State.Score), render.RgbGameOverText)
	drawCentered(ctx.Viewport, canvas, vmath.V(cx, cy+70), "Returning to menu...", render.RgbGameOverHint)
}

func drawCentered(vp render.Viewport, canvas *render.Canvas, at vmath.Vec2, s string, fg render.RGB) {
	col, row := vp.Cell(at)
	canvas.DrawText(col-len([]rune(s))/2, row, s, fg)
}
