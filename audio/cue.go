package audio

// Cue identifies a one-shot sound effect
type Cue uint8

const (
	CueBolt Cue = iota
	CueBeam
	CueExplosion
	CuePickup
	CueChargeReady
	CueGameOver
	cueCount
)

var cueNames = [cueCount]string{
	CueBolt:        "bolt",
	CueBeam:        "beam",
	CueExplosion:   "explosion",
	CuePickup:      "pickup",
	CueChargeReady: "charge_ready",
	CueGameOver:    "game_over",
}

// String returns the log name of the cue
func (c Cue) String() string {
	if c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}
