package factory

import (
	"github.com/automoto/fruitrun/archetypes"
	"github.com/automoto/fruitrun/components"
	"github.com/automoto/fruitrun/leveldata"
	"github.com/automoto/fruitrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a static solid body from a run of colliding tiles.
func CreatePlatform(ecs *ecs.ECS, rect leveldata.SolidRect) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)
	return platform
}
