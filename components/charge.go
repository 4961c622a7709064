package components

import "time"

// ChargePhase is the beam charge state
type ChargePhase uint8

const (
	ChargeIdle ChargePhase = iota
	ChargeCharging
	ChargeReady
)

// String returns a log-friendly name
func (p ChargePhase) String() string {
	switch p {
	case ChargeCharging:
		return "charging"
	case ChargeReady:
		return "ready"
	default:
		return "idle"
	}
}

// ChargeState tracks idle time toward a banked beam shot
type ChargeState struct {
	Phase ChargePhase
	Since time.Duration // valid while Charging
}

// Step advances the machine for one tick and reports entry into Ready.
// Movement always hard-resets; Ready is held until movement resumes.
func (c *ChargeState) Step(moving bool, now, threshold time.Duration) (becameReady bool) {
	if moving {
		c.Phase = ChargeIdle
		c.Since = 0
		return false
	}

	switch c.Phase {
	case ChargeIdle:
		c.Phase = ChargeCharging
		c.Since = now
	case ChargeCharging:
		if now-c.Since >= threshold {
			c.Phase = ChargeReady
			return true
		}
	}
	return false
}

// Ready reports whether a beam is banked
func (c *ChargeState) Ready() bool {
	return c.Phase == ChargeReady
}

// Progress returns charge fill in [0, 1]
func (c *ChargeState) Progress(now, threshold time.Duration) float64 {
	switch c.Phase {
	case ChargeReady:
		return 1
	case ChargeCharging:
		if threshold <= 0 {
			return 1
		}
		p := float64(now-c.Since) / float64(threshold)
		return max(0, min(1, p))
	default:
		return 0
	}
}
