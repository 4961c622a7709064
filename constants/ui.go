package constants

import "time"

// HUD layout (play-area units, scaled with the viewport)
const (
	HealthBarX      = 10
	HealthBarY      = 10
	HealthBarWidth  = 200
	HealthBarHeight = 20

	ChargeBarWidth  = 28
	ChargeBarHeight = 80
	ChargeBarMargin = 12
)

// Windowed viewport size in terminal cells (fullscreen uses the whole terminal)
const (
	WindowedCols = 100
	WindowedRows = 38
)

// Terminal input: keys have no release event, so a press counts as held for a window.
// The first press of a key covers the typical auto-repeat start delay.
const (
	KeyHoldInitial = 300 * time.Millisecond
	KeyHoldRepeat  = 100 * time.Millisecond
)
