package config

import "strings"

// EnemyKind enumerates the enemy behaviours a spawn zone can ask for.
type EnemyKind int

const (
	EnemyMushroom EnemyKind = iota
)

// DefaultEnemyKind is used for spawn zones whose type tag is not recognised.
// A visually wrong enemy is preferred over refusing to load the level.
const DefaultEnemyKind = EnemyMushroom

func (k EnemyKind) String() string {
	switch k {
	case EnemyMushroom:
		return "mushroom"
	default:
		return "unknown"
	}
}

// ParseEnemyKind maps a spawn type tag to an EnemyKind. The mapping is total:
// unknown or empty tags return DefaultEnemyKind with ok=false so callers can
// report the fallback.
func ParseEnemyKind(tag string) (kind EnemyKind, ok bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "mushroom":
		return EnemyMushroom, true
	default:
		return DefaultEnemyKind, false
	}
}

// EnemyType returns the configuration for kind, falling back to the default kind.
func EnemyType(kind EnemyKind) EnemyTypeConfig {
	if t, ok := Enemy.Types[kind.String()]; ok {
		return t
	}
	return Enemy.Types[DefaultEnemyKind.String()]
}
