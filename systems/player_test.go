package systems

import (
	"testing"

	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPlayerLandsIdle(t *testing.T) {
	h := newHarness(t, flatLevel("level_1"))
	h.step(30)

	p := h.player(t)
	physics := components.Physics.Get(p)
	if physics.OnGround == nil {
		t.Fatal("player not on ground after 30 frames")
	}
	obj := components.Object.Get(p)
	if obj.Y+obj.H != 144 {
		t.Errorf("player bottom = %v, want 144", obj.Y+obj.H)
	}
	if got := components.State.Get(p).CurrentState; got != cfg.Idle {
		t.Errorf("state = %v, want idle", got)
	}
	if got := components.Animation.Get(p).Name(); got != "idle" {
		t.Errorf("animation = %q, want idle", got)
	}
}

func TestRightWinsWhenBothHeld(t *testing.T) {
	h := newHarness(t, flatLevel("level_1"))
	h.step(30)

	h.input[cfg.ActionMoveLeft] = true
	h.input[cfg.ActionMoveRight] = true
	h.step(1)

	p := h.player(t)
	if got := components.Physics.Get(p).SpeedX; got != cfg.Player.RunSpeed {
		t.Errorf("SpeedX = %v, want %v", got, cfg.Player.RunSpeed)
	}
	if got := components.Player.Get(p).Direction.X; got != cfg.DirectionRight {
		t.Errorf("direction = %v, want right", got)
	}
	if components.Animation.Get(p).FlipX {
		t.Error("sprite flipped while facing right")
	}
	if got := components.State.Get(p).CurrentState; got != cfg.Run {
		t.Errorf("state = %v, want run", got)
	}
}

func TestRunLeftFlipsSprite(t *testing.T) {
	h := newHarness(t, flatLevel("level_1"))
	h.step(30)

	h.input[cfg.ActionMoveLeft] = true
	h.step(1)

	p := h.player(t)
	if got := components.Physics.Get(p).SpeedX; got != -cfg.Player.RunSpeed {
		t.Errorf("SpeedX = %v, want %v", got, -cfg.Player.RunSpeed)
	}
	if !components.Animation.Get(p).FlipX {
		t.Error("sprite not flipped while facing left")
	}
}

func TestJumpBudget(t *testing.T) {
	h := newHarness(t, flatLevel("level_1"))
	h.step(30)
	p := h.player(t)
	player := components.Player.Get(p)
	physics := components.Physics.Get(p)

	h.input[cfg.ActionJump] = true
	h.step(1)
	if physics.SpeedY != -cfg.Player.JumpSpeed || player.JumpCount != 1 {
		t.Fatalf("after ground jump SpeedY = %v count = %d", physics.SpeedY, player.JumpCount)
	}
	if got := components.State.Get(p).CurrentState; got != cfg.Jump {
		t.Errorf("state = %v, want jump", got)
	}

	// Holding jump does not jump again.
	h.step(1)
	if player.JumpCount != 1 {
		t.Fatalf("held jump counted again: %d", player.JumpCount)
	}

	h.input[cfg.ActionJump] = false
	h.step(1)
	h.input[cfg.ActionJump] = true
	h.step(1)
	if physics.SpeedY != -cfg.Player.JumpSpeed || player.JumpCount != 2 {
		t.Fatalf("after air jump SpeedY = %v count = %d", physics.SpeedY, player.JumpCount)
	}

	h.input[cfg.ActionJump] = false
	h.step(1)
	h.input[cfg.ActionJump] = true
	h.step(1)
	if physics.SpeedY == -cfg.Player.JumpSpeed || player.JumpCount != 2 {
		t.Errorf("jumped past the budget: SpeedY = %v count = %d", physics.SpeedY, player.JumpCount)
	}
	if got := h.audio.count(cfg.SoundJump); got != 2 {
		t.Errorf("jump cues = %d, want 2", got)
	}

	// Landing restores the budget.
	h.input[cfg.ActionJump] = false
	h.step(120)
	if physics.OnGround == nil || player.JumpCount != 0 {
		t.Errorf("after landing grounded = %v count = %d", physics.OnGround != nil, player.JumpCount)
	}
}

func TestHandleJumpInput(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		touching  bool
		pressed   bool
		wantJump  bool
		wantCount int
	}{
		{name: "budget left", count: 1, pressed: true, wantJump: true, wantCount: 2},
		{name: "budget spent", count: 2, pressed: true, wantJump: false, wantCount: 2},
		{name: "budget spent on wall", count: 2, touching: true, pressed: true, wantJump: true, wantCount: 3},
		{name: "not pressed", count: 0, pressed: false, wantJump: false, wantCount: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ecs.NewECS(donburi.NewWorld())
			input := &components.InputData{}
			input.Current[cfg.ActionJump] = tt.pressed
			player := &components.PlayerData{JumpCount: tt.count, JumpBudget: 2}
			physics := &components.PhysicsData{TouchingLeft: tt.touching}

			got := handleJumpInput(e, input, player, physics)
			if got != tt.wantJump {
				t.Errorf("jumped = %v, want %v", got, tt.wantJump)
			}
			if player.JumpCount != tt.wantCount {
				t.Errorf("JumpCount = %d, want %d", player.JumpCount, tt.wantCount)
			}
			if tt.wantJump && physics.SpeedY != -cfg.Player.JumpSpeed {
				t.Errorf("SpeedY = %v, want %v", physics.SpeedY, -cfg.Player.JumpSpeed)
			}
		})
	}
}

func TestNextPlayerState(t *testing.T) {
	tests := []struct {
		name     string
		grounded bool
		speedX   float64
		speedY   float64
		want     cfg.StateID
	}{
		{"idle", true, 0, 0, cfg.Idle},
		{"run", true, 3, 0, cfg.Run},
		{"jump", false, 0, -2, cfg.Jump},
		{"fall", false, 3, 1, cfg.Fall},
		{"apex", false, 0, 0, cfg.Fall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextPlayerState(tt.grounded, &components.PhysicsData{SpeedX: tt.speedX, SpeedY: tt.speedY})
			if got != tt.want {
				t.Errorf("nextPlayerState() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKillPlayerIsIdempotent(t *testing.T) {
	h := newHarness(t, flatLevel("level_1"))
	h.step(30)
	p := h.player(t)

	if !KillPlayer(h.ecs, p) {
		t.Fatal("first KillPlayer() = false")
	}
	physics := components.Physics.Get(p)
	if !physics.CollisionDisabled || physics.OnGround != nil {
		t.Errorf("collision disabled = %v, grounded = %v", physics.CollisionDisabled, physics.OnGround != nil)
	}
	if physics.SpeedX != cfg.Player.KnockbackX || physics.SpeedY != -cfg.Player.KnockbackY {
		t.Errorf("knockback = (%v, %v)", physics.SpeedX, physics.SpeedY)
	}

	if KillPlayer(h.ecs, p) {
		t.Error("second KillPlayer() = true")
	}
	if n := len(GetOrCreateAudio(h.ecs).PendingSFX); n != 1 {
		t.Errorf("queued %d cues, want 1", n)
	}

	// Input is ignored once dead.
	h.input[cfg.ActionJump] = true
	h.input[cfg.ActionMoveLeft] = true
	h.step(1)
	if got := components.State.Get(p).CurrentState; got != cfg.Hit {
		t.Errorf("state = %v, want hit", got)
	}
	if got := components.Animation.Get(p).Name(); got != "hit" {
		t.Errorf("animation = %q, want hit", got)
	}
	if physics.SpeedX != cfg.Player.KnockbackX {
		t.Errorf("dead player steered: SpeedX = %v", physics.SpeedX)
	}
}
