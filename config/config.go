package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/lixenwraith/void-shooter/constants"
)

// EnvPrefix prefixes environment overrides, e.g. VOID_GAMEPLAY_PLAYER_SPEED
const EnvPrefix = "VOID"

// Config is the full application configuration
type Config struct {
	Gameplay Gameplay     `mapstructure:"gameplay"`
	Render   RenderConfig `mapstructure:"render"`
	Audio    AudioConfig  `mapstructure:"audio"`
	Input    InputConfig  `mapstructure:"input"`
	Paths    PathsConfig  `mapstructure:"paths"`
}

// Gameplay is the session configuration threaded through the frame loop.
// Buff overrides live on the session state, never here.
type Gameplay struct {
	PlayWidth  float64 `mapstructure:"play_width"`
	PlayHeight float64 `mapstructure:"play_height"`

	PlayerSpeed      float64 `mapstructure:"player_speed"`
	PlayerBoostSpeed float64 `mapstructure:"player_boost_speed"`
	PlayerHalfExtent float64 `mapstructure:"player_half_extent"`
	PlayerMaxHealth  int     `mapstructure:"player_max_health"`
	MuzzleDistance   float64 `mapstructure:"muzzle_distance"`
	RotationOffset   float64 `mapstructure:"rotation_offset"`

	BulletSpeed         float64 `mapstructure:"bullet_speed"`
	BeamSpeedMultiplier float64 `mapstructure:"beam_speed_multiplier"`
	BeamPierce          int     `mapstructure:"beam_pierce"`

	EnemySpeed         float64       `mapstructure:"enemy_speed"`
	EnemySpawnInterval time.Duration `mapstructure:"enemy_spawn_interval"`

	DifficultyInterval time.Duration `mapstructure:"difficulty_interval"`
	MaxEnemyLevel      int           `mapstructure:"max_enemy_level"`

	KillScoreBase         int `mapstructure:"kill_score_base"`
	KillScorePerLevel     int `mapstructure:"kill_score_per_level"`
	ContactDamageBase     int `mapstructure:"contact_damage_base"`
	ContactDamagePerLevel int `mapstructure:"contact_damage_per_level"`

	PowerUpInterval    time.Duration `mapstructure:"powerup_interval"`
	PowerUpDuration    time.Duration `mapstructure:"powerup_duration"`
	PowerUpSpawnChance float64       `mapstructure:"powerup_spawn_chance"`
	PowerUpCap         int           `mapstructure:"powerup_cap"`
	HealAmount         int           `mapstructure:"heal_amount"`

	BeamChargeIdle time.Duration `mapstructure:"beam_charge_idle"`

	FireWindow     time.Duration `mapstructure:"fire_window"`
	FireWindowOpen time.Duration `mapstructure:"fire_window_open"`

	StarLayers  int     `mapstructure:"star_layers"`
	StarDensity float64 `mapstructure:"star_density"`
	StarSeed    int64   `mapstructure:"star_seed"`

	// Seed drives spawn randomness; 0 picks a time-based seed
	Seed int64 `mapstructure:"seed"`

	GameOverDelay time.Duration `mapstructure:"game_over_delay"`
}

// RenderConfig controls terminal output
type RenderConfig struct {
	// ColorMode is one of auto, truecolor, 256
	ColorMode     string        `mapstructure:"color_mode"`
	WindowedCols  int           `mapstructure:"windowed_cols"`
	WindowedRows  int           `mapstructure:"windowed_rows"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Volume is a base-2 exponent offset; 0 is unchanged, -1 halves amplitude
	Volume float64 `mapstructure:"volume"`
}

// InputConfig tunes terminal key-hold emulation
type InputConfig struct {
	KeyHoldInitial time.Duration `mapstructure:"key_hold_initial"`
	KeyHoldRepeat  time.Duration `mapstructure:"key_hold_repeat"`
}

// PathsConfig holds on-disk locations
type PathsConfig struct {
	AssetsDir     string `mapstructure:"assets_dir"`
	PurchasesFile string `mapstructure:"purchases_file"`
	TopScoreFile  string `mapstructure:"top_score_file"`
	CoinsFile     string `mapstructure:"coins_file"`
	LogDir        string `mapstructure:"log_dir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Gameplay: DefaultGameplay(),
		Render: RenderConfig{
			ColorMode:     "auto",
			WindowedCols:  constants.WindowedCols,
			WindowedRows:  constants.WindowedRows,
			FrameInterval: constants.FrameUpdateInterval,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1,
		},
		Input: InputConfig{
			KeyHoldInitial: constants.KeyHoldInitial,
			KeyHoldRepeat:  constants.KeyHoldRepeat,
		},
		Paths: PathsConfig{
			AssetsDir:     constants.DefaultAssetsDir,
			PurchasesFile: constants.DefaultPurchasesFile,
			TopScoreFile:  constants.DefaultTopScoreFile,
			CoinsFile:     constants.DefaultCoinsFile,
			LogDir:        constants.DefaultLogDir,
		},
	}
}

// DefaultGameplay returns the stock tuning
func DefaultGameplay() Gameplay {
	return Gameplay{
		PlayWidth:  constants.PlayWidth,
		PlayHeight: constants.PlayHeight,

		PlayerSpeed:      constants.PlayerSpeedBase,
		PlayerBoostSpeed: constants.PlayerSpeedBoost,
		PlayerHalfExtent: constants.PlayerHalfExtent,
		PlayerMaxHealth:  constants.PlayerMaxHealth,
		MuzzleDistance:   constants.PlayerMuzzleDist,
		RotationOffset:   constants.PlayerRotationOffset,

		BulletSpeed:         constants.BulletSpeed,
		BeamSpeedMultiplier: constants.BeamSpeedMultiplier,
		BeamPierce:          constants.BeamPierce,

		EnemySpeed:         constants.EnemySpeed,
		EnemySpawnInterval: constants.EnemySpawnInterval,

		DifficultyInterval: constants.DifficultyInterval,
		MaxEnemyLevel:      constants.MaxEnemyLevel,

		KillScoreBase:         constants.KillScoreBase,
		KillScorePerLevel:     constants.KillScorePerLevel,
		ContactDamageBase:     constants.ContactDamageBase,
		ContactDamagePerLevel: constants.ContactDamagePerLevel,

		PowerUpInterval:    constants.PowerUpInterval,
		PowerUpDuration:    constants.PowerUpDuration,
		PowerUpSpawnChance: constants.PowerUpSpawnChance,
		PowerUpCap:         constants.PowerUpCap,
		HealAmount:         constants.HealAmount,

		BeamChargeIdle: constants.BeamChargeIdle,

		FireWindow:     constants.FireWindow,
		FireWindowOpen: constants.FireWindowOpen,

		StarLayers:  constants.StarLayers,
		StarDensity: constants.StarDensity,
		StarSeed:    constants.StarSeed,

		GameOverDelay: constants.GameOverDisplayDuration,
	}
}

// Load reads configuration from path (toml, yaml or json by extension) layered over defaults.
// An empty path loads defaults plus environment overrides only.
func Load(path string) (Config, error) {
	v := viper.New()
	if err := setDefaults(v, Default()); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults registers every field so AutomaticEnv can resolve nested keys
func setDefaults(v *viper.Viper, cfg Config) error {
	var tree map[string]any
	if err := mapstructure.Decode(cfg, &tree); err != nil {
		return fmt.Errorf("failed to flatten defaults: %w", err)
	}
	for section, values := range tree {
		fields, ok := values.(map[string]any)
		if !ok {
			v.SetDefault(section, values)
			continue
		}
		for key, val := range fields {
			v.SetDefault(section+"."+key, val)
		}
	}
	return nil
}

// Validate rejects values that would break the frame loop
func (c Config) Validate() error {
	g := c.Gameplay
	var errs []error
	if g.PlayWidth <= 2*g.PlayerHalfExtent || g.PlayHeight <= 2*g.PlayerHalfExtent {
		errs = append(errs, errors.New("play area must be larger than the player hull"))
	}
	if g.PlayerMaxHealth <= 0 {
		errs = append(errs, errors.New("player_max_health must be positive"))
	}
	if g.MaxEnemyLevel < constants.InitialEnemyLevel {
		errs = append(errs, fmt.Errorf("max_enemy_level must be at least %d", constants.InitialEnemyLevel))
	}
	if g.FireWindow <= 0 || g.FireWindowOpen <= 0 || g.FireWindowOpen > g.FireWindow {
		errs = append(errs, errors.New("fire_window_open must be in (0, fire_window]"))
	}
	if g.PowerUpSpawnChance < 0 || g.PowerUpSpawnChance > 1 {
		errs = append(errs, errors.New("powerup_spawn_chance must be in [0, 1]"))
	}
	if g.StarLayers < 0 {
		errs = append(errs, errors.New("star_layers must not be negative"))
	}
	if c.Render.FrameInterval <= 0 {
		errs = append(errs, errors.New("render.frame_interval must be positive"))
	}
	switch c.Render.ColorMode {
	case "auto", "truecolor", "256":
	default:
		errs = append(errs, fmt.Errorf("unknown render.color_mode %q", c.Render.ColorMode))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
