package assets

import (
	"image"

	"github.com/lixenwraith/void-shooter/components"
)

// Cache holds every decoded sprite, keyed by logical role.
// Built once by Load and read-only afterwards; every accessor returns a usable image.
type Cache struct {
	hulls      map[components.HealthTier]*image.NRGBA
	enemies    []*image.NRGBA
	explosions []*image.NRGBA
	lasers     []*image.NRGBA
	beam       *image.NRGBA
	powerUps   map[components.PowerUpKind]*image.NRGBA

	// laserPlaceholder is set when no laser frames were found
	laserPlaceholder bool
}

// Placeholders returns a cache built entirely from procedural shapes
func Placeholders() *Cache {
	c := &Cache{hulls: make(map[components.HealthTier]*image.NRGBA)}
	c.fillMissing()
	return c
}

// fillMissing substitutes a placeholder for every role that failed to load
func (c *Cache) fillMissing() {
	if c.hulls == nil {
		c.hulls = make(map[components.HealthTier]*image.NRGBA)
	}
	if c.hulls[components.TierFull] == nil {
		c.hulls[components.TierFull] = PlayerPlaceholder()
	}
	// Each tier falls back to the next healthier one
	for _, tier := range []components.HealthTier{components.TierSlight, components.TierVery, components.TierDamaged} {
		if c.hulls[tier] == nil {
			c.hulls[tier] = c.hulls[tier-1]
		}
	}
	if len(c.enemies) == 0 {
		c.enemies = []*image.NRGBA{EnemyPlaceholder()}
	}
	if len(c.explosions) == 0 {
		c.explosions = ExplosionPlaceholder()
	}
	if len(c.lasers) == 0 {
		c.lasers = []*image.NRGBA{BoltPlaceholder()}
		c.laserPlaceholder = true
	}
	if c.beam == nil {
		c.beam = BeamPlaceholder()
	}
	if c.powerUps == nil {
		c.powerUps = make(map[components.PowerUpKind]*image.NRGBA)
		for _, k := range components.PowerUpKinds {
			c.powerUps[k] = PowerUpIcon(k)
		}
	}
}

// Hull returns the player sprite for a health tier
func (c *Cache) Hull(tier components.HealthTier) *image.NRGBA {
	if img, ok := c.hulls[tier]; ok {
		return img
	}
	return c.hulls[components.TierFull]
}

// EnemyVariants returns the number of enemy hull sprites
func (c *Cache) EnemyVariants() int {
	return len(c.enemies)
}

// Enemy returns an enemy hull, wrapping out-of-range variants
func (c *Cache) Enemy(variant int) *image.NRGBA {
	return c.enemies[wrap(variant, len(c.enemies))]
}

// ExplosionFrames returns the explosion sequence length
func (c *Cache) ExplosionFrames() int {
	return len(c.explosions)
}

// Explosion returns one explosion frame
func (c *Cache) Explosion(frame int) *image.NRGBA {
	return c.explosions[wrap(frame, len(c.explosions))]
}

// BoltAnimated reports whether real laser frames were loaded
func (c *Cache) BoltAnimated() bool {
	return !c.laserPlaceholder
}

// BoltFrames returns the laser sequence length
func (c *Cache) BoltFrames() int {
	return len(c.lasers)
}

// Bolt returns one laser frame
func (c *Cache) Bolt(frame int) *image.NRGBA {
	return c.lasers[wrap(frame, len(c.lasers))]
}

// Beam returns the beam sprite
func (c *Cache) Beam() *image.NRGBA {
	return c.beam
}

// PowerUp returns the icon for a pickup kind
func (c *Cache) PowerUp(kind components.PowerUpKind) *image.NRGBA {
	return c.powerUps[kind]
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
