package factory

import (
	"math/rand"

	"github.com/automoto/fruitrun/archetypes"
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/leveldata"
	"github.com/automoto/fruitrun/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, desc *leveldata.LevelDescriptor) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Descriptor:    desc,
		Width:         desc.Width,
		Height:        desc.Height,
		FallThreshold: desc.Height + cfg.Level.FallMargin,
	})
	return level
}

// BuildSession populates a fresh world with the level ctx currently points
// at. Scheduler order is player, enemies in spawn order, then fruit in layer
// order.
func BuildSession(ecs *ecs.ECS, ctx *session.Context, rng *rand.Rand) *donburi.Entry {
	desc := ctx.Current()

	s := CreateSession(ecs, ctx)
	CreateLevel(ecs, desc)

	cell := cfg.Physics.CellSize
	spaceHeight := int(desc.Height+cfg.Level.FallMargin) + cell
	CreateSpace(ecs, int(desc.Width), spaceHeight, cell, cell)

	for _, rect := range desc.Solids {
		CreatePlatform(ecs, rect)
	}
	for _, zone := range desc.Colliders {
		CreateCollider(ecs, zone)
	}
	if desc.End != nil {
		CreateEndOfLevel(ecs, *desc.End)
	}
	for _, obj := range desc.Env {
		CreateDecoration(ecs, obj)
	}

	CreatePlayer(ecs, desc.Start.Position.X, desc.Start.Position.Y)
	for _, zone := range desc.Spawns {
		CreateEnemy(ecs, zone, rng)
	}
	for _, spawn := range desc.Fruits {
		CreateFruit(ecs, spawn)
	}

	CreateCamera(ecs, desc.Start.Position.X, desc.Start.Position.Y)
	return s
}
