// Package leveldata turns Tiled maps into level descriptors. It has no
// dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

import "strings"

// Layer and property names the interpreter reads from a map.
const (
	LayerPlatforms = "Platforms"
	LayerZones     = "Zones"
	LayerFruit     = "Fruit"
	LayerEnv       = "Env"

	PropertyCollide = "collide"
	PropertyType    = "type"
)

// ZoneKind is the role of an object on the Zones layer, taken from its name.
type ZoneKind int

const (
	ZoneUnknown ZoneKind = iota
	ZoneStart
	ZoneEnd
	ZoneSpawn
	ZoneCollider
)

func (k ZoneKind) String() string {
	switch k {
	case ZoneStart:
		return "start"
	case ZoneEnd:
		return "end"
	case ZoneSpawn:
		return "spawn"
	case ZoneCollider:
		return "collider"
	default:
		return "unknown"
	}
}

// ParseZoneKind maps an object name to its zone kind.
func ParseZoneKind(name string) ZoneKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "start":
		return ZoneStart
	case "end":
		return ZoneEnd
	case "spawn":
		return ZoneSpawn
	case "collider":
		return ZoneCollider
	default:
		return ZoneUnknown
	}
}

type Point struct {
	X, Y float64
}

// Zone is a named point or region from the Zones layer. Zones are immutable
// once interpreted.
type Zone struct {
	Kind     ZoneKind
	ID       uint32
	Position Point
	Width    float64
	Height   float64
	Type     string // Free-form type tag, e.g. the enemy species of a spawn
}

// SolidRect is a run of colliding tiles on one row of the Platforms layer.
type SolidRect struct {
	X, Y, W, H float64
}

// FruitSpawn is a pickup position from the Fruit layer.
type FruitSpawn struct {
	ID       uint32
	Position Point
	Sprite   string // Optional type tag; empty uses the default fruit
}

// EnvObject is a decorative object from the Env layer.
type EnvObject struct {
	ID       uint32
	Type     string
	Position Point
	Width    float64
	Height   float64
}

// LevelDescriptor is everything the entity factory needs to build a session.
// Spawns, Colliders, Fruits and Env keep the order of the source map.
type LevelDescriptor struct {
	Name       string // File stem, e.g. "level_1"
	Number     int    // 1-based position in the level sequence
	Width      float64
	Height     float64
	TileWidth  int
	TileHeight int

	// Endless levels may omit the end zone.
	Endless bool

	Solids    []SolidRect
	Start     Zone
	End       *Zone
	Spawns    []Zone
	Colliders []Zone
	Fruits    []FruitSpawn
	Env       []EnvObject
}
