package components

import "github.com/yohamta/donburi"

// BehaviorKind selects the per-frame behaviour run for an entity.
type BehaviorKind int

const (
	BehaviorNone BehaviorKind = iota
	BehaviorPlayer
	BehaviorEnemy
	BehaviorFruit
)

type BehaviorData struct {
	Kind BehaviorKind
}

var Behavior = donburi.NewComponentType[BehaviorData]()

// SchedulerData lists behaving entities in registration order.
type SchedulerData struct {
	Entities []donburi.Entity
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
