package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per frame)
	RunSpeed  float64 `yaml:"runSpeed"`
	JumpSpeed float64 `yaml:"jumpSpeed"`

	// Jumps allowed before landing again. Wall contact ignores this budget.
	JumpBudget int `yaml:"jumpBudget"`

	// Physics
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`

	// Death
	KnockbackX         float64 `yaml:"knockbackX"`
	KnockbackY         float64 `yaml:"knockbackY"`
	DeathRestartFrames int     `yaml:"deathRestartFrames"` // Forced restart if the body never leaves the level

	// Dimensions
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name        string  `yaml:"name"`
	PatrolSpeed float64 `yaml:"patrolSpeed"`
	Gravity     float64 `yaml:"gravity"`

	// Dimensions
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`

	// Visual
	RunAnimation string     `yaml:"runAnimation"`
	TintColor    color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy configuration keyed by spawn type tag
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"types"`
}

// FruitConfig contains pickup configuration
type FruitConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Sprite string  `yaml:"sprite"`
}

// LevelConfig contains footprints for invisible level bodies and the fall-out margin
type LevelConfig struct {
	ColliderWidth  float64 `yaml:"colliderWidth"`
	ColliderHeight float64 `yaml:"colliderHeight"`
	TriggerWidth   float64 `yaml:"triggerWidth"`
	TriggerHeight  float64 `yaml:"triggerHeight"`

	// Player dies once its top edge passes mapHeight + FallMargin
	FallMargin float64 `yaml:"fallMargin"`

	// Levels allowed to omit the end zone (tutorial/endless variants), by file stem
	Endless []string `yaml:"endless"`
}

// PhysicsConfig contains physics-space configuration values
type PhysicsConfig struct {
	CellSize     int     `yaml:"cellSize"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

// ScoreConfig contains scoring and score label configuration
type ScoreConfig struct {
	FruitValue    int     `yaml:"fruitValue"`
	LabelX        int     `yaml:"labelX"`
	LabelY        int     `yaml:"labelY"`
	PulseScale    float32 `yaml:"pulseScale"`
	PulseDuration float32 `yaml:"pulseDuration"` // seconds
}

// EnvConfig maps decorative Env object type tags to sprite names
type EnvConfig struct {
	Sprites map[string]string `yaml:"sprites"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool `yaml:"skipMenu"`      // Skip menu and go directly to game
	DrawColliders bool `yaml:"drawColliders"` // Outline every physics body
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Fruit FruitConfig
var Level LevelConfig
var Physics PhysicsConfig
var Score ScoreConfig
var Env EnvConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Sky          = color.RGBA{R: 33, G: 31, B: 48, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		CellSize:     16,
		MaxFallSpeed: 10.0,
	}

	Player = PlayerConfig{
		RunSpeed:   3.0,
		JumpSpeed:  7.5,
		JumpBudget: 2, // one jump from the ground plus one extra in the air

		Gravity:      0.35,
		MaxFallSpeed: 10.0,

		KnockbackX:         4.0,
		KnockbackY:         6.0,
		DeathRestartFrames: 180,

		CollisionWidth:  20,
		CollisionHeight: 26,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			EnemyMushroom.String(): {
				Name:            "Mushroom",
				PatrolSpeed:     0.5, // 30 px/s at 60 TPS
				Gravity:         0.35,
				CollisionWidth:  28,
				CollisionHeight: 22,
				RunAnimation:    "m-run",
				TintColor:       Orange,
			},
		},
	}

	Fruit = FruitConfig{
		Width:  16,
		Height: 16,
		Sprite: "cherry",
	}

	Level = LevelConfig{
		ColliderWidth:  16,
		ColliderHeight: 16,
		TriggerWidth:   32,
		TriggerHeight:  32,
		FallMargin:     64,
	}

	Score = ScoreConfig{
		FruitValue:    10,
		LabelX:        90,
		LabelY:        60,
		PulseScale:    1.4,
		PulseDuration: 0.25,
	}

	Env = EnvConfig{
		Sprites: map[string]string{
			"start": "start",
			"end":   "end",
			"tree":  "env-tree",
			"bush":  "env-bush",
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:      false,
		DrawColliders: false,
	}
}
