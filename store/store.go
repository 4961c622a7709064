// Package store persists the small player files kept next to the game:
// owned abilities, the best score and the coin balance.
// Unreadable or malformed files read as empty, matching a first run.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Store locates the persistence files
type Store struct {
	mu sync.Mutex

	purchasesPath string
	topScorePath  string
	coinsPath     string
}

// New creates a store over the three file paths
func New(purchasesPath, topScorePath, coinsPath string) *Store {
	return &Store{
		purchasesPath: purchasesPath,
		topScorePath:  topScorePath,
		coinsPath:     coinsPath,
	}
}

// Purchases returns owned abilities; missing or malformed file yields an empty map
func (s *Store) Purchases() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]bool)
	data, err := os.ReadFile(s.purchasesPath)
	if err != nil {
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return make(map[string]bool)
	}
	return out
}

// SavePurchases writes owned abilities
func (s *Store) SavePurchases(p map[string]bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode purchases: %w", err)
	}
	return writeFile(s.purchasesPath, data)
}

// TopScore returns the stored best score, 0 when absent or unreadable
func (s *Store) TopScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readInt(s.topScorePath)
}

// RecordScore stores score when it beats the previous best and reports whether it did
func (s *Store) RecordScore(score int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if score <= readInt(s.topScorePath) {
		return false, nil
	}
	if err := writeFile(s.topScorePath, []byte(strconv.Itoa(score))); err != nil {
		return false, err
	}
	return true, nil
}

// Coins returns the coin balance, 0 when absent or unreadable
func (s *Store) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readInt(s.coinsPath)
}

// SetCoins writes the coin balance
func (s *Store) SetCoins(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFile(s.coinsPath, []byte(strconv.Itoa(n)))
}

func readInt(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
