package render

import (
	"time"

	"github.com/lixenwraith/void-shooter/assets"
	"github.com/lixenwraith/void-shooter/config"
	"github.com/lixenwraith/void-shooter/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Session clock at this frame
	Now time.Duration

	Viewport Viewport
	Config   config.Gameplay
	Assets   *assets.Cache

	World *engine.World
	State *engine.GameState

	// GameOver switches the pipeline to the summary screen
	GameOver bool
}

// NewRenderContextFromGame creates a RenderContext from the simulation context
func NewRenderContextFromGame(ctx *engine.GameContext, vp Viewport, cache *assets.Cache) RenderContext {
	return RenderContext{
		Now:      ctx.Tick.Now,
		Viewport: vp,
		Config:   ctx.Config,
		Assets:   cache,
		World:    ctx.World,
		State:    ctx.State,
		GameOver: ctx.State.Defeated,
	}
}
