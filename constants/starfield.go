package constants

// Procedural starfield
const (
	// StarLayers is the default number of parallax layers
	StarLayers = 3

	// StarDensity is stars per 100×100 units on the slowest layer before layer scaling
	StarDensity = 0.9

	// StarSeed makes star placement reproducible
	StarSeed = 42

	// Per-layer progression: value = base + index * step
	StarSpeedBase   = 0.3
	StarSpeedStep   = 0.5
	StarRadiusBase  = 1.0
	StarRadiusStep  = 1.0
	StarAlphaBase   = 140
	StarAlphaStep   = 40
	StarCountFactor = 0.6

	// StarWrapJitter is the horizontal jitter range applied on wrap
	StarWrapJitter = 20.0

	// Twinkle
	TwinkleStep      = 0.05
	TwinkleAmplitude = 40.0
	StarAlphaFloor   = 60
	StarAlphaCeiling = 255
)
