package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

type PhysicsData struct {
	SpeedX       float64
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64

	// Bounce reverses SpeedX instead of zeroing it when a rigid body or
	// world edge blocks horizontal movement.
	Bounce bool

	// CollisionDisabled bodies keep integrating velocity but pass through
	// everything and report no contacts.
	CollisionDisabled bool

	OnGround      *resolv.Object
	TouchingLeft  bool
	TouchingRight bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
