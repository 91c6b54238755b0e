package systems

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyController keeps an enemy's facing in line with its velocity. Patrol
// and bounce are left to physics.
type EnemyController struct{}

func (EnemyController) Update(_ *ecs.ECS, enemyEntry *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(enemyEntry)
	physics := components.Physics.Get(enemyEntry)
	animData := components.Animation.Get(enemyEntry)

	// Sprites face left; flip when walking right.
	if physics.SpeedX > 0 {
		enemy.Direction.X = cfg.DirectionRight
		animData.FlipX = true
	} else {
		enemy.Direction.X = cfg.DirectionLeft
		animData.FlipX = false
	}

	animData.Play(cfg.EnemyType(enemy.Kind).RunAnimation, dt)
}

// FruitController animates pickups.
type FruitController struct{}

func (FruitController) Update(_ *ecs.ECS, fruitEntry *donburi.Entry, dt float64) {
	components.Animation.Get(fruitEntry).Play("fruit", dt)
}
