package assets

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/void-shooter/components"
	"github.com/lixenwraith/void-shooter/constants"
)

// Subdirectories of the assets root
const (
	DirPlayer      = "player"
	DirEnemies     = "enemies"
	DirExplosions  = "explosions"
	DirLasers      = "lasers"
	DirBackgrounds = "backgrounds"
)

// BeamFile is the beam sprite inside the lasers directory
const BeamFile = "03.png"

// hullFiles maps tiers to the ship pack's file names
var hullFiles = map[components.HealthTier]string{
	components.TierFull:    "Main Ship - Base - Full health.png",
	components.TierSlight:  "Main Ship - Base - Slight damage.png",
	components.TierVery:    "Main Ship - Base - Very damaged.png",
	components.TierDamaged: "Main Ship - Base - Damaged.png",
}

// maxParallelDecodes bounds concurrent file decodes during Load
const maxParallelDecodes = 8

// Load decodes every sprite under dir in parallel and substitutes placeholders
// for anything missing or undecodable. Only context cancellation is an error.
func Load(ctx context.Context, dir string, logger *log.Logger) (*Cache, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	c := &Cache{hulls: make(map[components.HealthTier]*image.NRGBA)}

	enemyPaths := listPNG(filepath.Join(dir, DirEnemies), sortLexical)
	explosionPaths := listPNG(filepath.Join(dir, DirExplosions), sortLexical)
	laserPaths := listPNG(filepath.Join(dir, DirLasers), sortNumeric)

	hulls := make([]*image.NRGBA, len(hullFiles))
	enemies := make([]*image.NRGBA, len(enemyPaths))
	explosions := make([]*image.NRGBA, len(explosionPaths))
	lasers := make([]*image.NRGBA, len(laserPaths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelDecodes)

	submit := func(path string, w, h int, out **image.NRGBA) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := LoadScaled(path, w, h)
			if err != nil {
				if !os.IsNotExist(err) {
					logger.Printf("assets: %v, using placeholder", err)
				}
				return nil
			}
			*out = img
			return nil
		})
	}

	for tier, name := range hullFiles {
		submit(filepath.Join(dir, DirPlayer, name), constants.PlayerSize, constants.PlayerSize, &hulls[tier])
	}
	for i, p := range enemyPaths {
		submit(p, constants.EnemySize, constants.EnemySize, &enemies[i])
	}
	for i, p := range explosionPaths {
		submit(p, constants.ExplosionSize, constants.ExplosionSize, &explosions[i])
	}
	for i, p := range laserPaths {
		submit(p, constants.BoltWidth, constants.BoltHeight, &lasers[i])
	}
	submit(filepath.Join(dir, DirLasers, BeamFile), constants.BeamWidth, constants.BeamHeight, &c.beam)

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}

	for tier, img := range hulls {
		if img != nil {
			c.hulls[components.HealthTier(tier)] = img
		}
	}
	c.enemies = compact(enemies)
	// A partially decodable sequence plays without the broken frames
	c.explosions = compact(explosions)
	c.lasers = compact(lasers)

	c.fillMissing()
	logger.Printf("assets: loaded from %s: hull tiers=%d enemies=%d explosion frames=%d laser frames=%d animated=%v",
		dir, len(compact(hulls)), len(c.enemies), len(c.explosions), len(c.lasers), c.BoltAnimated())
	return c, nil
}

// LoadScaled decodes a PNG and resamples it to w×h
func LoadScaled(path string, w, h int) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return scale(src, w, h), nil
}

// scale resamples src into a new w×h image
func scale(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

type sortMode int

const (
	sortLexical sortMode = iota
	sortNumeric
)

// listPNG returns the .png files in dir, sorted. A missing dir yields nil.
func listPNG(dir string, mode sortMode) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	if mode == sortNumeric {
		slices.SortStableFunc(paths, compareNumeric)
	} else {
		slices.Sort(paths)
	}
	return paths
}

// compareNumeric orders numeric stems by value ahead of non-numeric stems
func compareNumeric(a, b string) int {
	na, errA := strconv.Atoi(stem(a))
	nb, errB := strconv.Atoi(stem(b))
	switch {
	case errA == nil && errB == nil:
		return na - nb
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func compact(imgs []*image.NRGBA) []*image.NRGBA {
	return slices.DeleteFunc(slices.Clone(imgs), func(img *image.NRGBA) bool { return img == nil })
}
