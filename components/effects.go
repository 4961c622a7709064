package components

import (
	"github.com/lixenwraith/void-shooter/constants"
	"github.com/lixenwraith/void-shooter/vmath"
)

// Explosion is a frame-sequence animation spawned on enemy destruction
type Explosion struct {
	Pos        vmath.Vec2
	Size       float64
	Frame      int
	FrameCount int
	FrameDelay int // ticks per frame
	Timer      int
}

// NewExplosion creates an explosion of size px running at fps on a 60 FPS loop
func NewExplosion(pos vmath.Vec2, size float64, frameCount, fps int) *Explosion {
	delay := 1
	if fps > 0 && constants.TargetFPS/fps > 1 {
		delay = constants.TargetFPS / fps
	}
	return &Explosion{
		Pos:        pos,
		Size:       size,
		FrameCount: frameCount,
		FrameDelay: delay,
	}
}

// Advance steps the animation one tick, returning true when it has played out
func (e *Explosion) Advance() bool {
	e.Timer++
	if e.Timer < e.FrameDelay {
		return false
	}
	e.Timer = 0
	e.Frame++
	return e.Frame >= e.FrameCount
}

// Flash is an expanding, fading ring
type Flash struct {
	Pos    vmath.Vec2
	Radius float64
	Life   int
}

// NewFlash creates a ring at pos
func NewFlash(pos vmath.Vec2) *Flash {
	return &Flash{
		Pos:    pos,
		Radius: constants.FlashStartRadius,
		Life:   constants.FlashLife,
	}
}

// Advance grows and fades the ring, returning true when it is gone
func (f *Flash) Advance() bool {
	f.Life--
	f.Radius += constants.FlashGrowth
	return f.Life <= 0
}

// Alpha is the ring opacity in [0, 255]
func (f *Flash) Alpha() uint8 {
	if f.Life <= 0 {
		return 0
	}
	return uint8(255 * f.Life / constants.FlashLife)
}
