package game

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
)

// eventBuffer bounds input queued between frames
const eventBuffer = 256

// Run plays one session on screen and blocks until it ends.
// Cancelling ctx or closing the terminal counts as a quit, unless the
// player was already defeated.
func Run(ctx context.Context, screen tcell.Screen, opts Options) (Outcome, error) {
	s, err := NewSession(screen, opts)
	if err != nil {
		return OutcomeQuit, err
	}
	return s.Run(ctx)
}

// Run drives the session from a frame ticker until quit or game over
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	interval := s.cfg.Render.FrameInterval
	if interval <= 0 {
		interval = time.Second / 60
	}

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, eventBuffer)
	pollErr := make(chan error, 1)
	// Input polling uses a raw goroutine as it blocks on the terminal
	go func() {
		defer close(eventChan)
		defer func() {
			if r := recover(); r != nil {
				pollErr <- fmt.Errorf("event poller crashed: %v\n%s", r, debug.Stack())
			}
		}()

		screen := s.orchestrator.Screen()
		for {
			ev := screen.PollEvent()
			// nil after Fini: terminal closed
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	s.Render()
	for {
		select {
		case <-ctx.Done():
			return s.stop(fmt.Sprintf("cancelled: %v", ctx.Err())), nil

		case err := <-pollErr:
			return s.stop("poller failed"), err

		case ev, ok := <-eventChan:
			if !ok {
				select {
				case err := <-pollErr:
					return s.stop("poller failed"), err
				default:
				}
				return s.stop("terminal closed"), nil
			}
			s.HandleEvent(ev, s.Now())

		case <-frameTicker.C:
			if outcome, over := s.Step(s.Now()); over {
				return outcome, nil
			}
			s.Render()
		}
	}
}
