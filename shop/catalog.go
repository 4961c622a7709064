package shop

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// AbilityQuantumCapacitor unlocks the idle-charged beam
const AbilityQuantumCapacitor = "quantum_capacitor"

var (
	ErrUnknownAbility    = errors.New("unknown ability")
	ErrInsufficientCoins = errors.New("insufficient coins")
)

//go:embed catalog.yaml
var catalogYAML []byte

// Ability is one shop entry
type Ability struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Price       int    `yaml:"price"`
	Description string `yaml:"description"`

	// Implemented marks abilities with in-game effect; the rest can be bought but do nothing
	Implemented bool `yaml:"implemented"`
}

// Catalog is the ordered list of purchasable abilities
type Catalog struct {
	abilities []Ability
}

type catalogFile struct {
	Abilities []Ability `yaml:"abilities"`
}

// Default returns the built-in catalog
func Default() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document; IDs must be unique and prices non-negative
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(f.Abilities))
	for _, a := range f.Abilities {
		switch {
		case a.ID == "":
			return nil, errors.New("catalog entry without id")
		case seen[a.ID]:
			return nil, fmt.Errorf("duplicate ability %q", a.ID)
		case a.Price < 0:
			return nil, fmt.Errorf("ability %q has negative price", a.ID)
		}
		seen[a.ID] = true
	}
	return &Catalog{abilities: f.Abilities}, nil
}

// Abilities returns a copy of the catalog in display order
func (c *Catalog) Abilities() []Ability {
	return slices.Clone(c.abilities)
}

// Lookup finds an ability by ID
func (c *Catalog) Lookup(id string) (Ability, bool) {
	i := slices.IndexFunc(c.abilities, func(a Ability) bool { return a.ID == id })
	if i < 0 {
		return Ability{}, false
	}
	return c.abilities[i], true
}

// Buy marks id as owned in purchases and returns the remaining coins.
// Buying an owned ability changes nothing.
func (c *Catalog) Buy(id string, coins int, purchases map[string]bool) (int, error) {
	a, ok := c.Lookup(id)
	if !ok {
		return coins, fmt.Errorf("%w: %s", ErrUnknownAbility, id)
	}
	if purchases[id] {
		return coins, nil
	}
	if coins < a.Price {
		return coins, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCoins, id, a.Price, coins)
	}
	purchases[id] = true
	return coins - a.Price, nil
}

// Implemented lists IDs of abilities with gameplay effect
func (c *Catalog) Implemented() []string {
	var ids []string
	for _, a := range c.abilities {
		if a.Implemented {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
