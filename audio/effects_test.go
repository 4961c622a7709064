package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the total sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0 || buf[j][0] > 1.0 {
				t.Fatalf("Sample %d out of range: %f", total+j, buf[j][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Streamer never finished")
	return total
}

func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got %d %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected mono output", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	got := drain(t, NewOscillator(440, 100*time.Millisecond, WaveSaw, rate))
	if want := rate.N(100 * time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

func TestEnvelopeDecays(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := NewEnvelope(NewOscillator(0, 500*time.Millisecond, WaveSquare, rate), 0.5, 10, rate)

	buf := make([][2]float64, rate.N(500*time.Millisecond))
	n, _ := s.Stream(buf)
	early := math.Abs(buf[rate.N(5*time.Millisecond)][0])
	late := math.Abs(buf[n-1][0])
	if early <= late {
		t.Errorf("Expected decay, early=%f late=%f", early, late)
	}
	if early > 0.5 {
		t.Errorf("Expected gain cap 0.5, got %f", early)
	}
}

func TestBuildCues(t *testing.T) {
	rate := beep.SampleRate(48000)
	for c := CueBolt; c < cueCount; c++ {
		t.Run(c.String(), func(t *testing.T) {
			if n := drain(t, Build(c, rate)); n == 0 {
				t.Errorf("Cue %s produced no samples", c)
			}
		})
	}
}

func TestCueString(t *testing.T) {
	if CueBeam.String() != "beam" {
		t.Errorf("Expected beam, got %s", CueBeam.String())
	}
	if Cue(200).String() != "unknown" {
		t.Errorf("Expected unknown for out of range cue")
	}
}
