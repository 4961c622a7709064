package systems

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/engine"
)

// SeedStarfield places stars for every layer from rng; the same seed gives the same sky
func SeedStarfield(width, height float64, layers int, density float64, rng *rand.Rand) *components.Starfield {
	sf := &components.Starfield{Width: width, Height: height}
	for i := 0; i < layers; i++ {
		fi := float64(i)
		count := int(density * width * height / 10000 * (constants.StarCountFactor + fi*constants.StarCountFactor))
		layer := components.StarLayer{
			Speed:  constants.StarSpeedBase + fi*constants.StarSpeedStep,
			Radius: constants.StarRadiusBase + fi*constants.StarRadiusStep,
			Alpha:  constants.StarAlphaBase + i*constants.StarAlphaStep,
			Stars:  make([]components.Star, count),
		}
		for j := range layer.Stars {
			layer.Stars[j] = components.Star{
				X:     rng.Float64() * width,
				Y:     rng.Float64() * height,
				Phase: rng.Float64() * 2 * math.Pi,
			}
		}
		sf.Layers = append(sf.Layers, layer)
	}
	return sf
}

// StarfieldSystem scrolls and twinkles the background
type StarfieldSystem struct {
	rng *rand.Rand
}

// NewStarfieldSystem creates the system; rng supplies wrap jitter
func NewStarfieldSystem(rng *rand.Rand) *StarfieldSystem {
	return &StarfieldSystem{rng: rng}
}

// Priority runs last, after gameplay
func (s *StarfieldSystem) Priority() int {
	return PriorityStarfield
}

// Update advances the sky by the tick's real elapsed time
func (s *StarfieldSystem) Update(ctx *engine.GameContext) {
	AdvanceStarfield(ctx.World.Stars, ctx.Tick.DeltaMs(), s.rng)
}

// AdvanceStarfield scrolls every layer by speed scaled to elapsed ms at 60 Hz.
// A star leaving the bottom re-enters at the top keeping its overflow, with horizontal jitter.
func AdvanceStarfield(sf *components.Starfield, elapsedMs float64, rng *rand.Rand) {
	for li := range sf.Layers {
		layer := &sf.Layers[li]
		step := layer.Speed * (elapsedMs / constants.TargetFrameMs)
		for i := range layer.Stars {
			star := &layer.Stars[i]
			star.Y += step
			if star.Y > sf.Height {
				jitter := (rng.Float64()*2 - 1) * constants.StarWrapJitter
				star.X = math.Mod(star.X+jitter, sf.Width)
				if star.X < 0 {
					star.X += sf.Width
				}
				star.Y -= sf.Height
			}
			star.Phase += constants.TwinkleStep
		}
	}
}
