package leveldata

import (
	"log"

	"github.com/lafriks/go-tiled"
)

// Interpret builds a LevelDescriptor from a parsed map. It fails with
// ErrMissingRequiredZone when start is absent, or when end is absent and the
// level is not endless, and with ErrDuplicateZone when either appears twice.
// Objects on the Zones layer with any other name are skipped with a warning.
func Interpret(name string, m *tiled.Map, endless bool) (*LevelDescriptor, error) {
	desc := &LevelDescriptor{
		Name:       name,
		Width:      float64(m.Width * m.TileWidth),
		Height:     float64(m.Height * m.TileHeight),
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Endless:    endless,
	}

	desc.Solids = solidRects(m)

	var start *Zone
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case LayerZones:
			for _, o := range og.Objects {
				zone := Zone{
					Kind:     ParseZoneKind(o.Name),
					ID:       o.ID,
					Position: Point{X: o.X, Y: o.Y},
					Width:    o.Width,
					Height:   o.Height,
					Type:     typeTag(o),
				}

				switch zone.Kind {
				case ZoneStart:
					if start != nil {
						return nil, &ZoneError{Level: name, Zone: "start", Err: ErrDuplicateZone}
					}
					start = &zone
				case ZoneEnd:
					if desc.End != nil {
						return nil, &ZoneError{Level: name, Zone: "end", Err: ErrDuplicateZone}
					}
					desc.End = &zone
				case ZoneSpawn:
					desc.Spawns = append(desc.Spawns, zone)
				case ZoneCollider:
					desc.Colliders = append(desc.Colliders, zone)
				default:
					log.Printf("Warning: level %s: ignoring zone object %d with unknown name %q", name, o.ID, o.Name)
				}
			}
		case LayerFruit:
			for _, o := range og.Objects {
				desc.Fruits = append(desc.Fruits, FruitSpawn{
					ID:       o.ID,
					Position: Point{X: o.X, Y: o.Y},
					Sprite:   typeTag(o),
				})
			}
		case LayerEnv:
			for _, o := range og.Objects {
				desc.Env = append(desc.Env, EnvObject{
					ID:       o.ID,
					Type:     typeTag(o),
					Position: Point{X: o.X, Y: o.Y},
					Width:    o.Width,
					Height:   o.Height,
				})
			}
		}
	}

	if start == nil {
		return nil, &ZoneError{Level: name, Zone: "start", Err: ErrMissingRequiredZone}
	}
	desc.Start = *start

	if desc.End == nil && !endless {
		return nil, &ZoneError{Level: name, Zone: "end", Err: ErrMissingRequiredZone}
	}

	return desc, nil
}

// typeTag reads an object's free-form type: the Tiled class, the legacy type
// attribute, then a "type" custom property.
func typeTag(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	if o.Type != "" { //nolint:staticcheck // TMX uses type= attribute
		return o.Type //nolint:staticcheck
	}
	return o.Properties.GetString(PropertyType)
}

// solidRects collects colliding tiles from the Platforms layer, merging
// horizontal runs into one rectangle each. A tile collides when its tileset
// tile carries collide=true.
func solidRects(m *tiled.Map) []SolidRect {
	var rects []SolidRect

	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	for _, layer := range m.Layers {
		if layer.Name != LayerPlatforms {
			continue
		}
		for y := 0; y < m.Height; y++ {
			runStart := -1
			for x := 0; x <= m.Width; x++ {
				solid := x < m.Width && isSolid(layer, y*m.Width+x)
				if solid && runStart < 0 {
					runStart = x
				}
				if !solid && runStart >= 0 {
					rects = append(rects, SolidRect{
						X: float64(runStart) * tileW,
						Y: float64(y) * tileH,
						W: float64(x-runStart) * tileW,
						H: tileH,
					})
					runStart = -1
				}
			}
		}
		break
	}

	return rects
}

func isSolid(layer *tiled.Layer, index int) bool {
	if index >= len(layer.Tiles) {
		return false
	}
	tile := layer.Tiles[index]
	if tile == nil || tile.IsNil() || tile.Tileset == nil {
		return false
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return false
	}
	return tilesetTile.Properties.GetBool(PropertyCollide)
}
