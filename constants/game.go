package constants

import "time"

// Game Loop Timing Constants
const (
	// TargetFPS is the fixed simulation and render rate
	TargetFPS = 60

	// FrameUpdateInterval is the frame limiter interval (~60 FPS)
	FrameUpdateInterval = time.Second / TargetFPS

	// TargetFrameMs normalizes time-scaled motion to a 60 FPS frame
	TargetFrameMs = 16.666

	// MaxFrameDelta caps the elapsed time fed into time-scaled systems after a stall
	MaxFrameDelta = 100 * time.Millisecond

	// GameOverDisplayDuration is how long the summary screen stays up before returning
	GameOverDisplayDuration = 2500 * time.Millisecond
)

// Play Area (logical units, independent of terminal size)
const (
	PlayWidth  = 800
	PlayHeight = 600
)
