package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave, optionally sweeping frequency
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies gain with an exponential decay and a short linear attack
type envelope struct {
	streamer beep.Streamer
	gain     float64
	decay    float64 // per second
	attack   int
	rate     beep.SampleRate
	pos      int
}

// NewEnvelope wraps s with gain and exponential decay
func NewEnvelope(s beep.Streamer, gain, decay float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		gain:     gain,
		decay:    decay,
		attack:   rate.N(2 * time.Millisecond),
		rate:     rate,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.pos) / float64(e.rate)
		amp := e.gain * math.Exp(-t*e.decay)
		if e.pos < e.attack {
			amp *= float64(e.pos) / float64(e.attack)
		}
		samples[i][0] *= amp
		samples[i][1] *= amp
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Build synthesizes the streamer for a cue
func Build(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueBolt:
		return NewEnvelope(NewSweep(1200, 600, 70*time.Millisecond, WaveSquare, rate), 0.25, 30, rate)
	case CueBeam:
		return NewEnvelope(NewSweep(180, 900, 260*time.Millisecond, WaveSaw, rate), 0.35, 4, rate)
	case CueExplosion:
		return beep.Mix(
			NewEnvelope(NewOscillator(0, 350*time.Millisecond, WaveNoise, rate), 0.4, 9, rate),
			NewEnvelope(NewSweep(90, 40, 350*time.Millisecond, WaveSine, rate), 0.4, 6, rate),
		)
	case CuePickup:
		return beep.Seq(
			NewEnvelope(NewOscillator(660, 70*time.Millisecond, WaveSine, rate), 0.35, 8, rate),
			NewEnvelope(NewOscillator(990, 110*time.Millisecond, WaveSine, rate), 0.35, 8, rate),
		)
	case CueChargeReady:
		return beep.Seq(
			NewEnvelope(NewOscillator(523, 60*time.Millisecond, WaveSine, rate), 0.3, 5, rate),
			NewEnvelope(NewOscillator(659, 60*time.Millisecond, WaveSine, rate), 0.3, 5, rate),
			NewEnvelope(NewOscillator(784, 140*time.Millisecond, WaveSine, rate), 0.3, 5, rate),
		)
	case CueGameOver:
		return NewEnvelope(NewSweep(440, 110, 700*time.Millisecond, WaveSaw, rate), 0.3, 2, rate)
	default:
		return beep.Silence(0)
	}
}
