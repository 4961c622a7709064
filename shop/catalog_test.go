package shop

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got := len(c.Abilities()); got != 5 {
		t.Fatalf("abilities = %d, want 5", got)
	}

	a, ok := c.Lookup(AbilityQuantumCapacitor)
	if !ok {
		t.Fatal("quantum capacitor missing")
	}
	if a.Price != 0 || !a.Implemented {
		t.Errorf("quantum capacitor = %+v", a)
	}

	impl := c.Implemented()
	if len(impl) != 1 || impl[0] != AbilityQuantumCapacitor {
		t.Errorf("Implemented = %v", impl)
	}
}

func TestBuy(t *testing.T) {
	c, err := Parse([]byte(`
abilities:
  - id: cheap
    price: 3
  - id: pricey
    price: 50
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name      string
		id        string
		coins     int
		owned     bool
		wantCoins int
		wantErr   error
		wantOwned bool
	}{
		{"affordable", "cheap", 10, false, 7, nil, true},
		{"exact", "cheap", 3, false, 0, nil, true},
		{"too expensive", "pricey", 10, false, 10, ErrInsufficientCoins, false},
		{"already owned", "pricey", 10, true, 10, nil, true},
		{"unknown", "nope", 10, false, 10, ErrUnknownAbility, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purchases := map[string]bool{}
			if tt.owned {
				purchases[tt.id] = true
			}
			coins, err := c.Buy(tt.id, tt.coins, purchases)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if coins != tt.wantCoins {
				t.Errorf("coins = %d, want %d", coins, tt.wantCoins)
			}
			if purchases[tt.id] != tt.wantOwned {
				t.Errorf("owned = %v, want %v", purchases[tt.id], tt.wantOwned)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing id", "abilities:\n  - name: x\n"},
		{"duplicate", "abilities:\n  - id: a\n  - id: a\n"},
		{"negative price", "abilities:\n  - id: a\n    price: -1\n"},
		{"malformed", "abilities: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
