package factory

import (
	"github.com/automoto/fruitrun/archetypes"
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/leveldata"
	"github.com/automoto/fruitrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEndOfLevel creates the overlap-only exit trigger at the end zone.
func CreateEndOfLevel(ecs *ecs.ECS, zone leveldata.Zone) *donburi.Entry {
	end := archetypes.EndOfLevel.Spawn(ecs)

	obj := newBody(end, zone.Position.X, zone.Position.Y,
		cfg.Level.TriggerWidth, cfg.Level.TriggerHeight, tags.ResolvEndOfLevel)
	components.Object.SetValue(end, components.ObjectData{Object: obj})
	components.EndOfLevel.SetValue(end, components.EndOfLevelData{
		Disabled: false,
	})

	addToSpace(ecs, obj)
	return end
}
