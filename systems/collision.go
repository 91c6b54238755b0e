package systems

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CollisionKind is how two bodies interact when they meet.
type CollisionKind int

const (
	// Rigid bodies block each other's movement.
	Rigid CollisionKind = iota
	// RigidCallback bodies run the handler when they touch or overlap.
	RigidCallback
	// Overlap bodies pass through each other and run the handler while overlapping.
	Overlap
)

// CollisionRule binds bodies tagged A meeting bodies tagged B to an effect.
// Handlers receive the A entry first.
type CollisionRule struct {
	Name    string
	A, B    string
	Kind    CollisionKind
	Handler func(ecs *ecs.ECS, a, b *donburi.Entry)
}

// CollisionRules is the full interaction table. Handlers run in this order
// within a frame.
var CollisionRules = []CollisionRule{
	{Name: "player-platform", A: tags.ResolvPlayer, B: tags.ResolvSolid, Kind: Rigid},
	{Name: "enemy-platform", A: tags.ResolvEnemy, B: tags.ResolvSolid, Kind: Rigid},
	{Name: "enemy-collider", A: tags.ResolvEnemy, B: tags.ResolvCollider, Kind: Rigid},
	{Name: "player-enemy", A: tags.ResolvPlayer, B: tags.ResolvEnemy, Kind: RigidCallback, Handler: onPlayerHit},
	{Name: "player-fruit", A: tags.ResolvPlayer, B: tags.ResolvFruit, Kind: Overlap, Handler: onCollectFruit},
	{Name: "player-end", A: tags.ResolvPlayer, B: tags.ResolvEndOfLevel, Kind: Overlap, Handler: onReachEnd},
}

// UpdateCollisions dispatches the contacts reported by UpdatePhysics. Once a
// handler requests a restart the remaining contacts are dropped.
func UpdateCollisions(ecs *ecs.ECS) {
	entry, ok := components.Contacts.First(ecs.World)
	if !ok {
		return
	}
	contacts := components.Contacts.Get(entry)

	for _, c := range contacts.Contacts {
		if RestartRequested(ecs) {
			break
		}
		a, aok := c.A.Data.(*donburi.Entry)
		b, bok := c.B.Data.(*donburi.Entry)
		if !aok || !bok || !a.Valid() || !b.Valid() {
			continue
		}
		CollisionRules[c.Rule].Handler(ecs, a, b)
	}
	contacts.Contacts = contacts.Contacts[:0]
}

// onPlayerHit knocks the player away from the enemy's side. The side comes
// from the bodies' centres: the player can run up to RunSpeed into an enemy
// before the contact is dispatched, past where the touching flags reach.
func onPlayerHit(ecs *ecs.ECS, player, enemy *donburi.Entry) {
	p := components.Object.Get(player).Object
	e := components.Object.Get(enemy).Object

	dir := cfg.DirectionRight
	if e.X+e.W/2 > p.X+p.W/2 {
		dir = cfg.DirectionLeft
	}
	killPlayer(ecs, player, dir)
}

// onCollectFruit is idempotent: a fruit already collected, or removed earlier
// in the frame, is ignored.
func onCollectFruit(ecs *ecs.ECS, _, fruit *donburi.Entry) {
	data := components.Fruit.Get(fruit)
	if data.Collected {
		return
	}
	data.Collected = true

	obj := components.Object.Get(fruit).Object
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}
	ecs.World.Remove(fruit.Entity())

	PlaySFX(ecs, cfg.SoundCollect)
	AddScore(ecs, cfg.Score.FruitValue)
}

// onReachEnd fires once per session: the trigger disables itself before
// advancing the level.
func onReachEnd(ecs *ecs.ECS, _, end *donburi.Entry) {
	trigger := components.EndOfLevel.Get(end)
	if trigger.Disabled {
		return
	}
	trigger.Disabled = true

	if s, ok := GetSession(ecs); ok && s.Context != nil {
		s.Context.Advance()
	}
	RequestRestart(ecs, components.RestartLevelComplete)
}

// rigidTagsFor lists the tags that block obj's movement.
func rigidTagsFor(obj *resolv.Object) []string {
	return tagsFor(obj, Rigid)
}

// wallTagsFor lists the tags that count as a wall for obj's touching flags.
// Only rigid bodies do: enemies and the world edge never grant a wall jump.
func wallTagsFor(obj *resolv.Object) []string {
	return tagsFor(obj, Rigid)
}

func tagsFor(obj *resolv.Object, kind CollisionKind) []string {
	var out []string
	for _, rule := range CollisionRules {
		if rule.Kind == kind && obj.HasTags(rule.A) {
			out = append(out, rule.B)
		}
	}
	return out
}
