package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the tunable globals. Decoding into copies of the current
// values means keys absent from the file keep their defaults. Enemy types are
// map values and are replaced whole.
type overrides struct {
	Game    Config        `yaml:"game"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Fruit   FruitConfig   `yaml:"fruit"`
	Level   LevelConfig   `yaml:"level"`
	Physics PhysicsConfig `yaml:"physics"`
	Score   ScoreConfig   `yaml:"score"`
	Env     EnvConfig     `yaml:"env"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   DebugConfig   `yaml:"debug"`
}

// LoadOverrides reads a YAML file and applies it on top of the defaults.
// The globals are only replaced when the whole file decodes and validates.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config overrides: %w", err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides applies a YAML document on top of the current configuration.
func ApplyOverrides(data []byte) error {
	doc := overrides{
		Game:    *C,
		Player:  Player,
		Enemy:   EnemyConfig{Types: copyEnemyTypes(Enemy.Types)},
		Fruit:   Fruit,
		Level:   Level,
		Physics: Physics,
		Score:   Score,
		Env:     EnvConfig{Sprites: copySprites(Env.Sprites)},
		Audio:   Audio,
		Debug:   Debug,
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config overrides: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid config overrides: %w", err)
	}

	game := doc.Game
	C = &game
	Player = doc.Player
	Enemy = doc.Enemy
	Fruit = doc.Fruit
	Level = doc.Level
	Physics = doc.Physics
	Score = doc.Score
	Env = doc.Env
	Audio = doc.Audio
	Debug = doc.Debug
	return nil
}

// Validate checks values the gameplay code divides by or relies on being positive.
func (o *overrides) Validate() error {
	var errs []error
	if o.Game.Width <= 0 || o.Game.Height <= 0 {
		errs = append(errs, fmt.Errorf("game size must be positive, got %dx%d", o.Game.Width, o.Game.Height))
	}
	if o.Game.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", o.Game.TPS))
	}
	if o.Player.RunSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.runSpeed must be positive, got %v", o.Player.RunSpeed))
	}
	if o.Player.JumpSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.jumpSpeed must be positive, got %v", o.Player.JumpSpeed))
	}
	if o.Player.JumpBudget < 0 {
		errs = append(errs, fmt.Errorf("player.jumpBudget must not be negative, got %d", o.Player.JumpBudget))
	}
	if o.Player.CollisionWidth <= 0 || o.Player.CollisionHeight <= 0 {
		errs = append(errs, errors.New("player collision size must be positive"))
	}
	if _, ok := o.Enemy.Types[DefaultEnemyKind.String()]; !ok {
		errs = append(errs, fmt.Errorf("enemy.types must define the default type %q", DefaultEnemyKind))
	}
	for name, t := range o.Enemy.Types {
		if t.CollisionWidth <= 0 || t.CollisionHeight <= 0 {
			errs = append(errs, fmt.Errorf("enemy type %q collision size must be positive", name))
		}
	}
	if o.Physics.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.cellSize must be positive, got %d", o.Physics.CellSize))
	}
	if o.Score.FruitValue < 0 {
		errs = append(errs, fmt.Errorf("score.fruitValue must not be negative, got %d", o.Score.FruitValue))
	}
	return errors.Join(errs...)
}

func copyEnemyTypes(src map[string]EnemyTypeConfig) map[string]EnemyTypeConfig {
	dst := make(map[string]EnemyTypeConfig, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copySprites(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
