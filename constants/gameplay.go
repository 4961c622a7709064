package constants

import "time"

// Player
const (
	// PlayerSpeedBase is movement per tick without buffs
	PlayerSpeedBase = 5.0

	// PlayerSpeedBoost is movement per tick while the speed buff is active
	PlayerSpeedBoost = 8.0

	// PlayerSize is the hull sprite edge length
	PlayerSize = 50

	// PlayerHalfExtent keeps the hull inside the play area when clamping
	PlayerHalfExtent = 25.0

	// PlayerMaxHealth is the health ceiling
	PlayerMaxHealth = 100

	// PlayerMuzzleDist is the distance from hull center to the nose along the fire direction
	PlayerMuzzleDist = 28.0

	// PlayerRotationOffset corrects hull sprites that do not face up in their source image
	PlayerRotationOffset = 0.0
)

// Health tiers for hull sprite selection (strictly greater than)
const (
	HealthTierFull   = 70
	HealthTierSlight = 40
	HealthTierVery   = 20
)

// Projectiles
const (
	// BulletSpeed is bolt travel per tick
	BulletSpeed = 10.0

	// BoltFrameDelay is ticks per laser animation frame
	BoltFrameDelay = 2

	// Bolt sprite with laser frames loaded
	BoltWidth      = 8
	BoltHeight     = 24
	BoltHalfLength = 12.0

	// Bolt placeholder when no laser frames exist
	BoltPlaceholderWidth      = 6
	BoltPlaceholderHeight     = 16
	BoltPlaceholderHalfLength = 8.0

	// BeamSpeedMultiplier scales BulletSpeed for beams
	BeamSpeedMultiplier = 2.2

	// BeamPierce is effectively unlimited
	BeamPierce = 999

	// Beam sprite is scaled to this size (5x a bolt)
	BeamWidth      = 40
	BeamHeight     = 120
	BeamHalfLength = 60.0

	// BeamLateralOffset shifts the beam along the left perpendicular to leave from the nose
	BeamLateralOffset = -6.0
)

// Enemies
const (
	// EnemySpeed is pursuit travel per tick
	EnemySpeed = 2.0

	// EnemySize is the hull sprite edge length
	EnemySize = 40

	// EnemySpawnMargin is how far outside the edge enemies appear
	EnemySpawnMargin = 20.0

	// EnemySpawnInterval is the time between enemy spawns
	EnemySpawnInterval = 1000 * time.Millisecond
)

// Difficulty
const (
	// DifficultyInterval is the time between level increments
	DifficultyInterval = 10 * time.Second

	// InitialEnemyLevel is the level at session start
	InitialEnemyLevel = 1

	// MaxEnemyLevel caps difficulty escalation
	MaxEnemyLevel = 15
)

// Scoring and damage: value = base + level * multiplier
const (
	KillScoreBase         = 10
	KillScorePerLevel     = 5
	ContactDamageBase     = 10
	ContactDamagePerLevel = 2
)

// Power-ups
const (
	// PowerUpInterval is the time between spawn rolls
	PowerUpInterval = 7 * time.Second

	// PowerUpDuration is how long a timed buff lasts
	PowerUpDuration = 5 * time.Second

	// PowerUpSpawnChance is the probability a due roll spawns
	PowerUpSpawnChance = 0.6

	// PowerUpCap is the maximum live power-ups
	PowerUpCap = 3

	// PowerUpMargin keeps power-ups away from the edges
	PowerUpMargin = 50

	// PowerUpSize is the pickup sprite edge length
	PowerUpSize = 30

	// HealAmount is the instant health restored by a heal pickup
	HealAmount = 25
)

// Beam charge (quantum capacitor)
const (
	// BeamChargeIdle is continuous idle time required to bank a beam charge
	BeamChargeIdle = 5 * time.Second
)

// Fire gate: a shot is allowed when elapsed mod FireWindow < FireWindowOpen
const (
	FireWindow     = 200 * time.Millisecond
	FireWindowOpen = 20 * time.Millisecond
)

// Visual effects
const (
	// ExplosionSize is the kill explosion edge length
	ExplosionSize = 48

	// ContactExplosionSize is the player-contact explosion edge length
	ContactExplosionSize = 40

	// ExplosionFPS is the explosion animation rate
	ExplosionFPS = 18

	// ExplosionPlaceholderFrames is the frame count when no explosion frames load
	ExplosionPlaceholderFrames = 8

	// FlashLife is the flash lifetime in ticks
	FlashLife = 15

	// FlashStartRadius and FlashGrowth shape the expanding ring
	FlashStartRadius = 10.0
	FlashGrowth      = 8.0
)
