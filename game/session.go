// Package game runs one play session: it wires systems and renderers around a
// shared context and drives them from a frame loop until quit or defeat.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/void-shooter/assets"
	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/config"
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/engine"
	"github.com/lixenwraith/void-shooter/input"
	"github.com/lixenwraith/void-shooter/render"
	"github.com/lixenwraith/void-shooter/render/renderers"
	"github.com/lixenwraith/void-shooter/shop"
	"github.com/lixenwraith/void-shooter/systems"
	"github.com/lixenwraith/void-shooter/vmath"
)

// muter is implemented by sound players that support muting
type muter interface {
	ToggleMute() bool
}

// Session is a single game from spawn to quit or game over.
// All methods must be called from the loop goroutine.
type Session struct {
	id     uuid.UUID
	cfg    config.Config
	logger *log.Logger
	scores ScoreRecorder
	assets *assets.Cache

	ctx       *engine.GameContext
	scheduler *engine.Scheduler
	input     *input.State
	clock     *engine.SessionClock

	orchestrator *render.RenderOrchestrator
	viewport     render.Viewport

	lastNow    time.Duration
	defeatedAt time.Duration
	finished   bool
	outcome    Outcome
}

// NewSession builds a session drawing to screen
func NewSession(screen tcell.Screen, opts Options) (*Session, error) {
	if screen == nil {
		return nil, errors.New("nil screen")
	}

	cfg := config.Default()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gp := cfg.Gameplay

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	cache := opts.Assets
	if cache == nil {
		cache = assets.Placeholders()
	}
	provider := opts.Clock
	if provider == nil {
		provider = engine.NewMonotonicTimeProvider()
	}

	id := uuid.New()
	logger = log.New(logger.Writer(), fmt.Sprintf("%ssession=%s ", logger.Prefix(), id.String()[:8]), logger.Flags())

	seed := gp.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	starRng := rand.New(rand.NewSource(gp.StarSeed))

	player := components.NewPlayer(vmath.V(gp.PlayWidth/2, gp.PlayHeight/2), gp.PlayerMaxHealth, gp.PlayerSpeed)
	world := engine.NewWorld(player)
	world.Stars = systems.SeedStarfield(gp.PlayWidth, gp.PlayHeight, gp.StarLayers, gp.StarDensity, starRng)

	beam := opts.Purchases[shop.AbilityQuantumCapacitor]
	state := engine.NewGameState(constants.InitialEnemyLevel, beam)
	ctx := engine.NewGameContext(gp, world, state, rand.New(rand.NewSource(seed)), opts.Sound, logger)

	factory := systems.NewFactory(gp, cache)
	scheduler := engine.NewScheduler(
		systems.NewChargeSystem(),
		systems.NewFireSystem(factory),
		systems.NewSpawnSystem(factory),
		systems.NewDifficultySystem(),
		systems.NewKinematicsSystem(),
		systems.NewEffectsSystem(),
		systems.NewCollisionSystem(factory),
		systems.NewBuffSystem(),
		systems.NewStarfieldSystem(starRng),
	)

	s := &Session{
		id:        id,
		cfg:       cfg,
		logger:    logger,
		scores:    opts.Scores,
		assets:    cache,
		ctx:       ctx,
		scheduler: scheduler,
		input: input.NewState(input.DefaultKeyTable(), cfg.Input.KeyHoldInitial, cfg.Input.KeyHoldRepeat,
			vmath.V(gp.PlayWidth/2, 0)),
		clock:        engine.NewSessionClock(provider),
		orchestrator: render.NewRenderOrchestrator(screen, opts.Fullscreen, cfg.Render.WindowedCols, cfg.Render.WindowedRows),
	}
	s.registerRenderers()
	s.viewport = s.orchestrator.Viewport(gp.PlayWidth, gp.PlayHeight)
	s.input.SetMapper(func(x, y int) (vmath.Vec2, bool) {
		return s.viewport.ToLogical(x, y)
	})

	logger.Printf("session start: fullscreen=%v beam=%v seed=%d", opts.Fullscreen, beam, seed)
	return s, nil
}

func (s *Session) registerRenderers() {
	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}

	rendererList := []rendererDef{
		{renderers.NewStarfieldRenderer(), render.PriorityBackground},
		{renderers.NewEntityRenderer(), render.PriorityEntities},
		{renderers.NewEffectsRenderer(), render.PriorityEffects},
		{renderers.NewHUDRenderer(), render.PriorityUI},
		{renderers.NewChargeRenderer(), render.PriorityUI},
		{renderers.NewGameOverRenderer(), render.PriorityOverlay},
	}

	for _, def := range rendererList {
		s.orchestrator.Register(def.renderer, def.priority)
	}
}

// ID returns the session identifier used in log lines
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Context exposes the simulation state
func (s *Session) Context() *engine.GameContext {
	return s.ctx
}

// Now returns elapsed session time
func (s *Session) Now() time.Duration {
	return s.clock.Elapsed()
}

// HandleEvent folds a terminal event into the pending input
func (s *Session) HandleEvent(ev tcell.Event, now time.Duration) {
	if _, ok := ev.(*tcell.EventResize); ok {
		s.orchestrator.Resize()
		s.viewport = s.orchestrator.Viewport(s.cfg.Gameplay.PlayWidth, s.cfg.Gameplay.PlayHeight)
		return
	}
	s.input.HandleEvent(ev, now)
}

// Step runs one tick at session time now.
// done is true once the session has ended; later calls return the same outcome.
func (s *Session) Step(now time.Duration) (outcome Outcome, done bool) {
	if s.finished {
		return s.outcome, true
	}

	frame := s.input.Snapshot(now)
	if frame.Quit {
		return s.stop("quit key"), true
	}
	if frame.ToggleMute {
		if m, ok := s.ctx.Sound.(muter); ok {
			s.logger.Printf("audio muted=%v", m.ToggleMute())
		}
	}

	state := s.ctx.State
	if state.Defeated {
		s.ctx.Tick.Now = now
		if now-s.defeatedAt < s.cfg.Gameplay.GameOverDelay {
			return "", false
		}
		s.reportScore()
		return s.finish(OutcomeGameOver), true
	}

	delta := max(0, min(now-s.lastNow, constants.MaxFrameDelta))
	s.lastNow = now
	s.ctx.Tick = engine.Tick{Now: now, Delta: delta, Frame: s.ctx.Tick.Frame + 1}
	s.ctx.Input = frame
	s.scheduler.Update(s.ctx)

	if state.Defeated {
		s.defeatedAt = now
		s.ctx.Sound.Play(audio.CueGameOver)
	}
	return "", false
}

// Render draws the current state
func (s *Session) Render() {
	s.viewport = s.orchestrator.Viewport(s.cfg.Gameplay.PlayWidth, s.cfg.Gameplay.PlayHeight)
	s.orchestrator.RenderFrame(render.NewRenderContextFromGame(s.ctx, s.viewport, s.assets))
}

// Viewport returns the play area placement used by the last render
func (s *Session) Viewport() render.Viewport {
	return s.viewport
}

// stop ends the session early. A defeated player has already lost,
// so the score is reported and the outcome stays game_over.
func (s *Session) stop(reason string) Outcome {
	if s.finished {
		return s.outcome
	}
	if s.ctx.State.Defeated {
		s.logger.Printf("summary cut short: %s", reason)
		s.reportScore()
		return s.finish(OutcomeGameOver)
	}
	s.logger.Printf("session quit: %s score=%d", reason, s.ctx.State.Score)
	return s.finish(OutcomeQuit)
}

func (s *Session) reportScore() {
	score := s.ctx.State.Score
	if s.scores == nil {
		return
	}
	best, err := s.scores.RecordScore(score)
	if err != nil {
		s.logger.Printf("failed to record score %d: %v", score, err)
		return
	}
	if best {
		s.logger.Printf("new top score: %d", score)
	}
}

func (s *Session) finish(o Outcome) Outcome {
	s.finished = true
	s.outcome = o
	s.logger.Printf("session end: outcome=%s score=%d level=%d frames=%d",
		o, s.ctx.State.Score, s.ctx.State.Level, s.ctx.Tick.Frame)
	return o
}
