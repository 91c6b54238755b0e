package factory

import (
	"log"
	"math/rand"

	"github.com/automoto/fruitrun/archetypes"
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/leveldata"
	"github.com/automoto/fruitrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type enemyConstructor func(ecs *ecs.ECS, zone leveldata.Zone, kind cfg.EnemyKind, rng *rand.Rand) *donburi.Entry

// enemyConstructors maps every enemy kind to its constructor. Kinds without
// an entry are built by the default kind's constructor.
var enemyConstructors = map[cfg.EnemyKind]enemyConstructor{
	cfg.EnemyMushroom: createPatroller,
}

// CreateEnemy builds the enemy a spawn zone asks for. Unrecognised type tags
// fall back to the default enemy so the level stays playable; the fallback is
// logged.
func CreateEnemy(ecs *ecs.ECS, zone leveldata.Zone, rng *rand.Rand) *donburi.Entry {
	kind, ok := cfg.ParseEnemyKind(zone.Type)
	if !ok {
		log.Printf("Warning: spawn %d has unknown enemy type %q, using %s", zone.ID, zone.Type, kind)
	}
	return enemyConstructorFor(kind)(ecs, zone, kind, rng)
}

func enemyConstructorFor(kind cfg.EnemyKind) enemyConstructor {
	if ctor, ok := enemyConstructors[kind]; ok {
		return ctor
	}
	return enemyConstructors[cfg.DefaultEnemyKind]
}

// createPatroller spawns an enemy walking left or right at its patrol speed,
// picked uniformly at random. Physics bounces it off anything rigid.
func createPatroller(ecs *ecs.ECS, zone leveldata.Zone, kind cfg.EnemyKind, rng *rand.Rand) *donburi.Entry {
	enemyType := cfg.EnemyType(kind)

	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := float64(enemyType.CollisionWidth), float64(enemyType.CollisionHeight)
	obj := newBody(enemy, zone.Position.X, zone.Position.Y, w, h, tags.ResolvEnemy)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	direction := cfg.DirectionLeft
	if rng.Intn(2) == 1 {
		direction = cfg.DirectionRight
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:      kind,
		TypeName:  zone.Type,
		Direction: components.Vector{X: direction, Y: 0},
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		SpeedX:       direction * enemyType.PatrolSpeed,
		Gravity:      enemyType.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		Bounce:       true,
	})
	components.Animation.Get(enemy).Play(enemyType.RunAnimation, 0)

	addToSpace(ecs, obj)
	register(ecs, enemy, components.BehaviorEnemy)
	return enemy
}
