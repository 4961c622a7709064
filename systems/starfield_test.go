package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/constants"
)

func TestSeedStarfieldDeterministic(t *testing.T) {
	a := SeedStarfield(800, 600, 3, 0.9, rand.New(rand.NewSource(constants.StarSeed)))
	b := SeedStarfield(800, 600, 3, 0.9, rand.New(rand.NewSource(constants.StarSeed)))

	wantCounts := []int{25, 51, 77}
	for i, layer := range a.Layers {
		if len(layer.Stars) != wantCounts[i] {
			t.Errorf("Layer %d: expected %d stars, got %d", i, wantCounts[i], len(layer.Stars))
		}
		for j := range layer.Stars {
			if layer.Stars[j] != b.Layers[i].Stars[j] {
				t.Fatalf("Layer %d star %d differs between identical seeds", i, j)
			}
		}
	}
	if a.Layers[0].Speed >= a.Layers[2].Speed {
		t.Error("Expected back layer slower than front layer")
	}
	if a.Layers[2].Radius != 3 || a.Layers[2].Alpha != 220 {
		t.Errorf("Expected front layer radius 3 alpha 220, got %v %d", a.Layers[2].Radius, a.Layers[2].Alpha)
	}
}

func TestStarWrapKeepsOverflow(t *testing.T) {
	sf := &components.Starfield{
		Width:  800,
		Height: 600,
		Layers: []components.StarLayer{{Speed: 1, Stars: []components.Star{{X: 400, Y: 599.5}}}},
	}
	// Two 60 Hz frames of elapsed time move the star 2 units
	AdvanceStarfield(sf, 2*constants.TargetFrameMs, rand.New(rand.NewSource(1)))

	s := sf.Layers[0].Stars[0]
	if math.Abs(s.Y-1.5) > 1e-9 {
		t.Errorf("Expected wrapped y 1.5, got %v", s.Y)
	}
	if s.X < 380 || s.X > 420 {
		t.Errorf("Expected jitter within ±20, got x=%v", s.X)
	}
	if math.Abs(s.Phase-constants.TwinkleStep) > 1e-12 {
		t.Errorf("Expected phase advanced by twinkle step, got %v", s.Phase)
	}
}

func TestStarWrapJitterStaysInWidth(t *testing.T) {
	sf := &components.Starfield{
		Width:  800,
		Height: 600,
		Layers: []components.StarLayer{{Speed: 10, Stars: []components.Star{{X: 1, Y: 595}, {X: 799, Y: 595}}}},
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		AdvanceStarfield(sf, constants.TargetFrameMs*60, rng)
		for _, s := range sf.Layers[0].Stars {
			if s.X < 0 || s.X >= 800 {
				t.Fatalf("Star x out of range: %v", s.X)
			}
		}
	}
}

func TestStarOpacityFloor(t *testing.T) {
	layer := components.StarLayer{Alpha: 80}
	for phase := 0.0; phase < 2*math.Pi; phase += 0.1 {
		if a := layer.Opacity(components.Star{Phase: phase}); a < constants.StarAlphaFloor {
			t.Fatalf("Opacity %d below floor at phase %v", a, phase)
		}
	}
	bright := components.StarLayer{Alpha: 240}
	if a := bright.Opacity(components.Star{Phase: math.Pi / 2}); a != 255 {
		t.Errorf("Expected ceiling 255, got %d", a)
	}
}
