package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// Prepare creates the assets root and its role subdirectories if absent
func Prepare(dir string) error {
	for _, sub := range []string{"", DirPlayer, DirEnemies, DirExplosions, DirLasers, DirBackgrounds} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("failed to prepare assets dir: %w", err)
		}
	}
	return nil
}
