package components

import (
	"github.com/automoto/fruitrun/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind      config.EnemyKind
	TypeName  string // Raw type tag from the spawn zone
	Direction Vector
}

var Enemy = donburi.NewComponentType[EnemyData]()
