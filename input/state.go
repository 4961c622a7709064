package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-shooter/vmath"
)

// Frame is the input snapshot consumed by one simulation tick
type Frame struct {
	Up, Down, Left, Right bool

	// Fire is true while mouse button 1 is held
	Fire bool

	// Focused tracks terminal focus; autofire only fires while focused
	Focused bool

	// Pointer is the last known mouse position in play-area units
	Pointer vmath.Vec2

	Quit       bool
	ToggleMute bool
}

// Moving reports any directional input
func (f Frame) Moving() bool {
	return f.Up || f.Down || f.Left || f.Right
}

// Direction returns the unnormalized movement vector, +y down
func (f Frame) Direction() vmath.Vec2 {
	var d vmath.Vec2
	if f.Left {
		d.X--
	}
	if f.Right {
		d.X++
	}
	if f.Up {
		d.Y--
	}
	if f.Down {
		d.Y++
	}
	return d
}

// PointerMapper converts a terminal cell to play-area coordinates.
// ok is false when the cell lies outside the play viewport.
type PointerMapper func(x, y int) (p vmath.Vec2, ok bool)

// State accumulates terminal events between ticks.
// Terminals report key presses and auto-repeats but never releases, so a
// direction is considered held until its hold window lapses without a repeat.
type State struct {
	table *KeyTable

	holdInitial time.Duration
	holdRepeat  time.Duration
	heldUntil   [4]time.Duration
	held        [4]bool

	mapper    PointerMapper
	pointer   vmath.Vec2
	mouseDown bool
	focused   bool

	quit       bool
	toggleMute bool
}

// NewState creates an input state with the initial pointer position
func NewState(table *KeyTable, holdInitial, holdRepeat time.Duration, pointer vmath.Vec2) *State {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &State{
		table:       table,
		holdInitial: holdInitial,
		holdRepeat:  holdRepeat,
		pointer:     pointer,
		focused:     true,
	}
}

// SetMapper installs the cell to play-area conversion used for mouse events
func (s *State) SetMapper(m PointerMapper) {
	s.mapper = m
}

// HandleEvent folds one terminal event into the state at session time now
func (s *State) HandleEvent(ev tcell.Event, now time.Duration) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev, now)

	case *tcell.EventMouse:
		s.mouseDown = ev.Buttons()&tcell.Button1 != 0
		if s.mapper != nil {
			x, y := ev.Position()
			if p, ok := s.mapper(x, y); ok {
				s.pointer = p
			}
		}

	case *tcell.EventFocus:
		s.focused = ev.Focused
		if !ev.Focused {
			s.mouseDown = false
			s.releaseAll()
		}
	}
}

func (s *State) handleKey(ev *tcell.EventKey, now time.Duration) {
	intent := s.table.Lookup(ev)
	switch {
	case intent == IntentQuit:
		s.quit = true
	case intent == IntentToggleMute:
		s.toggleMute = true
	case intent.isMove():
		d := intent.direction()
		if s.held[d] && now <= s.heldUntil[d] {
			s.heldUntil[d] = now + s.holdRepeat
		} else {
			s.heldUntil[d] = now + s.holdInitial
		}
		s.held[d] = true
	}
}

func (s *State) releaseAll() {
	for i := range s.held {
		s.held[i] = false
	}
}

// Snapshot returns the frame for a tick at now and clears one-shot intents
func (s *State) Snapshot(now time.Duration) Frame {
	for i := range s.held {
		if s.held[i] && now > s.heldUntil[i] {
			s.held[i] = false
		}
	}

	f := Frame{
		Up:         s.held[IntentMoveUp.direction()],
		Down:       s.held[IntentMoveDown.direction()],
		Left:       s.held[IntentMoveLeft.direction()],
		Right:      s.held[IntentMoveRight.direction()],
		Fire:       s.mouseDown,
		Focused:    s.focused,
		Pointer:    s.pointer,
		Quit:       s.quit,
		ToggleMute: s.toggleMute,
	}
	s.quit = false
	s.toggleMute = false
	return f
}
