package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable runes, matched case-insensitively by Lookup
	Runes map[rune]Intent
}

// DefaultKeyTable returns WASD plus arrows for movement
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyUp:     IntentMoveUp,
			tcell.KeyDown:   IntentMoveDown,
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			'w': IntentMoveUp,
			's': IntentMoveDown,
			'a': IntentMoveLeft,
			'd': IntentMoveRight,
		},
	}
}

// Lookup resolves a key event to an intent
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return t.Runes[r]
	}
	return t.SpecialKeys[ev.Key()]
}
