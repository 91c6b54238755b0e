package systems

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounds restarts the session without advancing the level when the
// player falls out of the level, or when a dead player has not fallen out
// within Player.DeathRestartFrames.
func UpdateBounds(ecs *ecs.ECS) {
	if RestartRequested(ecs) {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	obj := components.Object.Get(playerEntry)

	if obj.Y > level.FallThreshold {
		KillPlayer(ecs, playerEntry)
		RequestRestart(ecs, components.RestartDeath)
		return
	}

	player := components.Player.Get(playerEntry)
	if player.Alive {
		return
	}
	player.DeathTimer++
	if player.DeathTimer >= cfg.Player.DeathRestartFrames {
		RequestRestart(ecs, components.RestartDeath)
	}
}
