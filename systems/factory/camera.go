package factory

import (
	"github.com/automoto/fruitrun/archetypes"
	"github.com/automoto/fruitrun/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: components.Vector{X: x, Y: y},
	})
	return camera
}
