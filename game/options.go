package game

import (
	"log"

	"github.com/lixenwraith/void-shooter/assets"
	"github.com/lixenwraith/void-shooter/config"
	"github.com/lixenwraith/void-shooter/engine"
)

// Outcome is how a session ended
type Outcome string

const (
	// OutcomeQuit is an explicit quit; no summary, no score report
	OutcomeQuit Outcome = "quit"
	// OutcomeGameOver follows defeat and the summary screen
	OutcomeGameOver Outcome = "game_over"
)

//go:generate mockgen -destination=mocks/mock_score_recorder.go -package=mocks github.com/lixenwraith/void-shooter/game ScoreRecorder

// ScoreRecorder receives the final score when a session ends in defeat.
// Implementations compare against and persist the previous best.
type ScoreRecorder interface {
	RecordScore(score int) (newBest bool, err error)
}

// Options configures one session
type Options struct {
	Fullscreen bool

	// Purchases maps ability IDs to ownership
	Purchases map[string]bool

	// Config defaults to config.Default when nil
	Config *config.Config

	// Assets defaults to procedural placeholders when nil
	Assets *assets.Cache

	Sound  engine.SoundPlayer
	Scores ScoreRecorder
	Logger *log.Logger

	// Clock defaults to the monotonic system clock
	Clock engine.TimeProvider
}
