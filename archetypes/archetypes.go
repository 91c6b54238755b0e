package archetypes

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
		components.Behavior,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Animation,
		components.Physics,
		components.Behavior,
	)
	Fruit = newArchetype(
		tags.Fruit,
		components.Fruit,
		components.Object,
		components.Animation,
		components.Behavior,
	)
	Collider = newArchetype(
		tags.Collider,
		components.Object,
	)
	EndOfLevel = newArchetype(
		tags.EndOfLevel,
		components.EndOfLevel,
		components.Object,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Decoration,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Score,
		components.Contacts,
		components.Scheduler,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
