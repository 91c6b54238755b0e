package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction  Vector
	Alive      bool
	JumpCount  int
	JumpBudget int
	DeathTimer int // Frames since death
}

var Player = donburi.NewComponentType[PlayerData]()
