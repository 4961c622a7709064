package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/render"
	"github.com/lixenwraith/void-shooter/vmath"
)

// HUD text baselines in play-area units
const (
	hudStatusY = 40
	hudBuffY   = 70
	hudLevelX  = 230 // from the right edge
	hudLevelY  = 10
)

// HUDRenderer draws the health bar, score line, active buff and enemy level
type HUDRenderer struct{}

// NewHUDRenderer creates a HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// IsVisible hides the HUD behind the game over screen
func (r *HUDRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.GameOver
}

// Render draws HUD elements over the play area
func (r *HUDRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	vp := ctx.Viewport
	p := ctx.World.Player
	st := ctx.State

	back := vmath.Rect{X: constants.HealthBarX, Y: constants.HealthBarY, W: constants.HealthBarWidth, H: constants.HealthBarHeight}
	canvas.FillRect(vp.PixelRect(back), render.RgbHealthBack, 1)
	fill := back
	fill.W = float64(2 * p.Health)
	canvas.FillRect(vp.PixelRect(fill), render.RgbHealthFill, 1)

	col, row := vp.Cell(vmath.V(constants.HealthBarX, hudStatusY))
	canvas.DrawText(col, row, fmt.Sprintf("HP: %d   SCORE: %d", p.Health, st.Score), render.RgbHUDText)

	if st.Buff.Active {
		col, row = vp.Cell(vmath.V(constants.HealthBarX, hudBuffY))
		canvas.DrawText(col, row, "Power-Up: "+strings.ToUpper(st.Buff.Kind.String()), render.RgbBuffText)
	}

	col, row = vp.Cell(vmath.V(ctx.Config.PlayWidth-hudLevelX, hudLevelY))
	canvas.DrawText(col, row, fmt.Sprintf("Enemy Level: %d", st.Level), render.RgbLevelText)
}
