package systems

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerController drives the player state machine once per frame.
type PlayerController struct{}

func (PlayerController) Update(ecs *ecs.ECS, playerEntry *donburi.Entry, dt float64) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	animData := components.Animation.Get(playerEntry)

	// Hit is terminal for this life: no input, no state changes.
	if !player.Alive {
		state.Transition(cfg.Hit)
		animData.Play(cfg.StateToAnimation[cfg.Hit], dt)
		return
	}

	input := getOrCreateInput(ecs)

	handleMovementInput(input, player, physics, animData)

	grounded := physics.OnGround != nil
	if grounded {
		player.JumpCount = 0
	}
	jumped := handleJumpInput(ecs, input, player, physics)

	next := nextPlayerState(grounded && !jumped, physics)
	state.Transition(next)
	animData.Play(cfg.StateToAnimation[next], dt)
}

// handleMovementInput sets horizontal speed from the held direction. Left is
// evaluated before right, so right wins when both are held.
func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, animData *components.AnimationData) {
	physics.SpeedX = 0

	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		physics.SpeedX = -cfg.Player.RunSpeed
		player.Direction.X = cfg.DirectionLeft
		animData.FlipX = true
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		physics.SpeedX = cfg.Player.RunSpeed
		player.Direction.X = cfg.DirectionRight
		animData.FlipX = false
	}
}

// handleJumpInput jumps on the rising edge of the jump action while budget
// remains, or at any time while touching a wall.
func handleJumpInput(ecs *ecs.ECS, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) bool {
	if !GetAction(input, cfg.ActionJump).JustPressed {
		return false
	}

	wallAssist := physics.TouchingLeft || physics.TouchingRight
	if player.JumpCount >= player.JumpBudget && !wallAssist {
		return false
	}

	physics.SpeedY = -cfg.Player.JumpSpeed
	player.JumpCount++
	PlaySFX(ecs, cfg.SoundJump)
	return true
}

func nextPlayerState(grounded bool, physics *components.PhysicsData) cfg.StateID {
	switch {
	case grounded && physics.SpeedX != 0:
		return cfg.Run
	case grounded:
		return cfg.Idle
	case physics.SpeedY < 0:
		return cfg.Jump
	default:
		return cfg.Fall
	}
}

// KillPlayer ends the player's life. It returns false, and changes nothing,
// when the player is already dead. The body stops colliding and is knocked
// up and away from the side it was touching.
func KillPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) bool {
	dir := cfg.DirectionRight
	if components.Physics.Get(playerEntry).TouchingRight {
		dir = cfg.DirectionLeft
	}
	return killPlayer(ecs, playerEntry, dir)
}

// killPlayer is KillPlayer with the horizontal knockback direction given.
func killPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, dir float64) bool {
	player := components.Player.Get(playerEntry)
	if !player.Alive {
		return false
	}
	player.Alive = false
	player.DeathTimer = 0

	physics := components.Physics.Get(playerEntry)
	physics.CollisionDisabled = true
	physics.OnGround = nil
	physics.SpeedX = dir * cfg.Player.KnockbackX
	physics.SpeedY = -cfg.Player.KnockbackY

	components.State.Get(playerEntry).Transition(cfg.Hit)
	PlaySFX(ecs, cfg.SoundHit)
	return true
}
