package input

// Intent is the semantic action bound to a key
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit       // Esc, q, Ctrl+C
	IntentToggleMute // Ctrl+S

	// Held movement
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
)

// isMove reports whether the intent is one of the four held directions
func (i Intent) isMove() bool {
	return i >= IntentMoveUp && i <= IntentMoveRight
}

// direction indexes the held-key table
func (i Intent) direction() int {
	return int(i - IntentMoveUp)
}
