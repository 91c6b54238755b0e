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

// CreateFruit places a pickup from the Fruit layer.
func CreateFruit(ecs *ecs.ECS, spawn leveldata.FruitSpawn) *donburi.Entry {
	fruit := archetypes.Fruit.Spawn(ecs)

	obj := newBody(fruit, spawn.Position.X, spawn.Position.Y, cfg.Fruit.Width, cfg.Fruit.Height, tags.ResolvFruit)
	components.Object.SetValue(fruit, components.ObjectData{Object: obj})

	sprite := spawn.Sprite
	if sprite == "" {
		sprite = cfg.Fruit.Sprite
	}
	components.Fruit.SetValue(fruit, components.FruitData{Sprite: sprite})
	components.Animation.Get(fruit).Play("fruit", 0)

	addToSpace(ecs, obj)
	register(ecs, fruit, components.BehaviorFruit)
	return fruit
}
