package factory

import (
	"log"

	"github.com/automoto/fruitrun/archetypes"
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDecoration places a static Env object. Decorations have no body.
// Objects whose type has no sprite are skipped and nil is returned.
func CreateDecoration(ecs *ecs.ECS, obj leveldata.EnvObject) *donburi.Entry {
	sprite, ok := cfg.Env.Sprites[obj.Type]
	if !ok {
		log.Printf("Warning: env object %d has unknown type %q, skipping", obj.ID, obj.Type)
		return nil
	}

	decoration := archetypes.Decoration.Spawn(ecs)
	components.Decoration.SetValue(decoration, components.DecorationData{
		Type:   obj.Type,
		Sprite: sprite,
		X:      obj.Position.X,
		Y:      obj.Position.Y,
		W:      obj.Width,
		H:      obj.Height,
	})
	return decoration
}
