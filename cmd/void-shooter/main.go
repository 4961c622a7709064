package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-shooter/assets"
	"github.com/lixenwraith/void-shooter/audio"
	"github.com/lixenwraith/void-shooter/config"
	"github.com/lixenwraith/void-shooter/engine"
	"github.com/lixenwraith/void-shooter/game"
	"github.com/lixenwraith/void-shooter/shop"
	"github.com/lixenwraith/void-shooter/store"
)

var (
	fullscreenFlag = flag.Bool("fullscreen", false, "Use the whole terminal as the play area")
	configFlag     = flag.String("config", "", "Config file (toml, yaml or json)")
	debugFlag      = flag.Bool("debug", false, "Write a debug log to the logs directory")
	colorModeFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256 (overrides config)")
	abilitiesFlag  = flag.Bool("abilities", false, "List shop abilities and exit")
	buyFlag        = flag.String("buy", "", "Buy an ability by id and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logDir = cfg.Paths.LogDir
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	st := store.New(cfg.Paths.PurchasesFile, cfg.Paths.TopScoreFile, cfg.Paths.CoinsFile)

	if *abilitiesFlag || *buyFlag != "" {
		catalog, err := shop.Default()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load shop: %v\n", err)
			os.Exit(1)
		}
		if *buyFlag != "" {
			err = buyAbility(os.Stdout, catalog, st, *buyFlag)
		} else {
			err = listAbilities(os.Stdout, catalog, st)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Shop: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, st); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, st *store.Store) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	colorMode := cfg.Render.ColorMode
	if *colorModeFlag != "" {
		colorMode = *colorModeFlag
	}
	switch colorMode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}

	if err := assets.Prepare(cfg.Paths.AssetsDir); err != nil {
		log.Printf("asset scaffolding skipped: %v", err)
	}
	cache, err := assets.Load(ctx, cfg.Paths.AssetsDir, log.Default())
	if err != nil {
		return fmt.Errorf("failed to load assets: %w", err)
	}

	var sound engine.SoundPlayer
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
		defer sm.Cleanup()
		sound = sm
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Panic recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVOID-SHOOTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	outcome, err := game.Run(ctx, screen, game.Options{
		Fullscreen: *fullscreenFlag,
		Purchases:  st.Purchases(),
		Config:     &cfg,
		Assets:     cache,
		Sound:      sound,
		Scores:     st,
		Logger:     log.Default(),
	})
	screen.Fini()
	if err != nil {
		return err
	}

	if outcome == game.OutcomeGameOver {
		fmt.Printf("Game over. Top score: %d\n", st.TopScore())
	}
	return nil
}
