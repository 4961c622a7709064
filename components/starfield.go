package components

import (
	"math"

	"github.com/lixenwraith/void-shooter/constants"
)

// Star is one background dot; Phase drives its twinkle
type Star struct {
	X, Y  float64
	Phase float64
}

// StarLayer is one parallax plane
type StarLayer struct {
	Speed  float64 // units per 60 Hz frame
	Radius float64
	Alpha  int
	Stars  []Star
}

// Starfield is the procedural background, layers ordered back to front
type Starfield struct {
	Width, Height float64
	Layers        []StarLayer
}

// Opacity returns a star's twinkle-modulated alpha, never below the visible floor
func (l *StarLayer) Opacity(s Star) uint8 {
	a := l.Alpha + int(constants.TwinkleAmplitude*math.Sin(s.Phase))
	if a < constants.StarAlphaFloor {
		a = constants.StarAlphaFloor
	}
	if a > constants.StarAlphaCeiling {
		a = constants.StarAlphaCeiling
	}
	return uint8(a)
}
