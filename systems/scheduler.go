package systems

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Behavior is an entity's own per-frame update. dt is in seconds.
type Behavior interface {
	Update(ecs *ecs.ECS, entry *donburi.Entry, dt float64)
}

var behaviors = map[components.BehaviorKind]Behavior{
	components.BehaviorPlayer: PlayerController{},
	components.BehaviorEnemy:  EnemyController{},
	components.BehaviorFruit:  FruitController{},
}

// UpdateScheduler runs each scheduled entity's behaviour in registration
// order. It stops as soon as a restart is requested, and drops entities
// that no longer exist.
func UpdateScheduler(ecs *ecs.ECS) {
	entry, ok := components.Scheduler.First(ecs.World)
	if !ok {
		return
	}
	scheduler := components.Scheduler.Get(entry)
	dt := 1.0 / float64(cfg.C.TPS)

	stale := false
	for _, entity := range scheduler.Entities {
		if RestartRequested(ecs) {
			break
		}
		if !ecs.World.Valid(entity) {
			stale = true
			continue
		}
		e := ecs.World.Entry(entity)
		if b, ok := behaviors[components.Behavior.Get(e).Kind]; ok {
			b.Update(ecs, e, dt)
		}
	}

	if stale {
		live := scheduler.Entities[:0]
		for _, entity := range scheduler.Entities {
			if ecs.World.Valid(entity) {
				live = append(live, entity)
			}
		}
		scheduler.Entities = live
	}
}
