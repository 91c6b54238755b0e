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

// CreateCollider creates an invisible box that only enemies bump into.
// Every box has the same footprint regardless of the zone's own size.
func CreateCollider(ecs *ecs.ECS, zone leveldata.Zone) *donburi.Entry {
	collider := archetypes.Collider.Spawn(ecs)

	obj := newBody(collider, zone.Position.X, zone.Position.Y,
		cfg.Level.ColliderWidth, cfg.Level.ColliderHeight, tags.ResolvCollider)
	components.Object.SetValue(collider, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return collider
}
