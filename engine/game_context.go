package engine

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/config"
	"github.com/lixenwraith/void-shooter/input"
)

// Tick is the timing of one simulation step, read by every system
type Tick struct {
	// Now is session time, fixed for the whole tick
	Now time.Duration
	// Delta is the time since the previous tick, capped by the loop
	Delta time.Duration
	Frame uint64
}

// DeltaMs returns Delta in fractional milliseconds
func (t Tick) DeltaMs() float64 {
	return float64(t.Delta) / float64(time.Millisecond)
}

// SoundPlayer receives audio cues from systems
type SoundPlayer interface {
	Play(audio.Cue)
}

type silentPlayer struct{}

func (silentPlayer) Play(audio.Cue) {}

// GameContext is everything a system may read or mutate during a tick.
// Owned by the frame loop goroutine; no field is synchronized.
type GameContext struct {
	Config config.Gameplay
	World  *World
	State  *GameState

	Tick  Tick
	Input input.Frame

	Rand   *rand.Rand
	Sound  SoundPlayer
	Logger *log.Logger
}

// NewGameContext wires a context; nil sound or logger fall back to no-ops
func NewGameContext(cfg config.Gameplay, world *World, state *GameState, rng *rand.Rand, sound SoundPlayer, logger *log.Logger) *GameContext {
	if sound == nil {
		sound = silentPlayer{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &GameContext{
		Config: cfg,
		World:  world,
		State:  state,
		Rand:   rng,
		Sound:  sound,
		Logger: logger,
	}
}
