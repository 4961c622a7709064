package renderers

import (
	"image"
	"image/color"

	"github.com/lixenwraith/void-shooter/assets"
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/render"
)

// chargedTint is blended into charged bolt sprites
var chargedTint = color.NRGBA{R: 0, G: 255, B: 120, A: 100}

// EntityRenderer draws pickups, enemies, projectiles and the player hull
type EntityRenderer struct {
	// tinted caches charged variants of bolt frames
	tinted map[*image.NRGBA]*image.NRGBA
}

// NewEntityRenderer creates an entity renderer
func NewEntityRenderer() *EntityRenderer {
	return &EntityRenderer{tinted: make(map[*image.NRGBA]*image.NRGBA)}
}

// IsVisible hides entities behind the game over screen
func (r *EntityRenderer) IsVisible(ctx render.RenderContext) bool {
	return !ctx.GameOver
}

// Render draws every pool, player last so it stays on top
func (r *EntityRenderer) Render(ctx render.RenderContext, canvas *render.Canvas) {
	w, vp, a := ctx.World, ctx.Viewport, ctx.Assets

	for _, pu := range w.PowerUps.All() {
		render.DrawSprite(canvas, vp, a.PowerUp(pu.Kind), pu.Pos, constants.PowerUpSize, constants.PowerUpSize, 0)
	}
	for _, e := range w.Enemies.All() {
		render.DrawSprite(canvas, vp, a.Enemy(e.Variant), e.Pos, constants.EnemySize, constants.EnemySize, 0)
	}
	for _, b := range w.Bullets.All() {
		render.DrawSprite(canvas, vp, r.projectileSprite(a, b), b.Pos, b.Width, b.Height, b.SpriteAngle())
	}

	p := w.Player
	render.DrawSprite(canvas, vp, a.Hull(p.Tier()), p.Pos, constants.PlayerSize, constants.PlayerSize, p.Angle)
}

func (r *EntityRenderer) projectileSprite(a *assets.Cache, b *components.Projectile) *image.NRGBA {
	if b.Kind == components.ProjectileBeam {
		return a.Beam()
	}
	img := a.Bolt(b.Frame)
	if !b.Charged {
		return img
	}
	if t, ok := r.tinted[img]; ok {
		return t
	}
	t := Tint(img, chargedTint)
	r.tinted[img] = t
	return t
}

// Tint blends tint over every pixel of img, keeping the source alpha
func Tint(img *image.NRGBA, tint color.NRGBA) *image.NRGBA {
	out := image.NewNRGBA(img.Bounds())
	alpha := float64(tint.A) / 255
	over := render.RGB{R: tint.R, G: tint.G, B: tint.B}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			src := img.NRGBAAt(x, y)
			if src.A == 0 {
				continue
			}
			c := render.Blend(render.RGB{R: src.R, G: src.G, B: src.B}, over, alpha)
			out.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: src.A})
		}
	}
	return out
}
