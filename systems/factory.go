package systems

import (
	"github.com/lixenwraith/void-shooter/assets"
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/config"
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/vmath"
)

// Factory builds entities sized to the loaded sprite set
type Factory struct {
	cfg    config.Gameplay
	assets *assets.Cache
}

// NewFactory creates a factory; a nil cache uses procedural placeholders
func NewFactory(cfg config.Gameplay, cache *assets.Cache) *Factory {
	if cache == nil {
		cache = assets.Placeholders()
	}
	return &Factory{cfg: cfg, assets: cache}
}

// Assets returns the sprite cache
func (f *Factory) Assets() *assets.Cache {
	return f.assets
}

// Muzzle returns the firing point at dist along angle (screen-math degrees)
func Muzzle(center vmath.Vec2, angle, dist float64) vmath.Vec2 {
	return center.Add(vmath.FromAngleDeg(angle).Scale(dist))
}

// Bolt creates a standard shot whose nose sits at muzzle
func (f *Factory) Bolt(muzzle vmath.Vec2, angle float64) *components.Projectile {
	p := &components.Projectile{
		Kind:   components.ProjectileBolt,
		Angle:  angle,
		Vel:    vmath.FromAngleDeg(angle).Scale(f.cfg.BulletSpeed),
		Pierce: 0,
	}

	half := constants.BoltPlaceholderHalfLength
	p.Width, p.Height = constants.BoltPlaceholderWidth, constants.BoltPlaceholderHeight
	if f.assets.BoltAnimated() {
		half = constants.BoltHalfLength
		p.Width, p.Height = constants.BoltWidth, constants.BoltHeight
		p.FrameCount = f.assets.BoltFrames()
	}

	p.Pos = muzzle.Sub(vmath.FromAngleDeg(angle).Scale(half))
	return p
}

// Beam creates the wide piercing shot, pulled back by half its length and
// shifted laterally so it leaves from the nose
func (f *Factory) Beam(muzzle vmath.Vec2, angle float64) *components.Projectile {
	dir := vmath.FromAngleDeg(angle)
	center := muzzle.Sub(dir.Scale(constants.BeamHalfLength)).
		Add(dir.Perp().Scale(constants.BeamLateralOffset))

	return &components.Projectile{
		Kind:   components.ProjectileBeam,
		Pos:    center,
		Angle:  angle,
		Vel:    dir.Scale(f.cfg.BulletSpeed * f.cfg.BeamSpeedMultiplier),
		Pierce: f.cfg.BeamPierce,
		Width:  constants.BeamWidth,
		Height: constants.BeamHeight,
	}
}

// Enemy creates a hostile at pos tagged with level
func (f *Factory) Enemy(pos vmath.Vec2, level, variant int) *components.Enemy {
	return &components.Enemy{
		Pos:     pos,
		Level:   level,
		Speed:   f.cfg.EnemySpeed,
		Variant: variant,
	}
}

// Explosion creates a kill or contact explosion of the given size
func (f *Factory) Explosion(pos vmath.Vec2, size float64) *components.Explosion {
	return components.NewExplosion(pos, size, f.assets.ExplosionFrames(), constants.ExplosionFPS)
}
