package factory

import (
	"github.com/automoto/fruitrun/archetypes"
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer creates the player centred on (x, y) and registers it first
// with the scheduler.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := newBody(player, x, y, w, h, tags.ResolvPlayer)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction:  components.Vector{X: cfg.DirectionRight, Y: 0},
		Alive:      true,
		JumpCount:  0,
		JumpBudget: cfg.Player.JumpBudget,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})
	components.Animation.Get(player).Play(cfg.StateToAnimation[cfg.Idle], 0)

	addToSpace(ecs, obj)
	register(ecs, player, components.BehaviorPlayer)
	return player
}
