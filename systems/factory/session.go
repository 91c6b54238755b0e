package factory

import (
	"fmt"

	"github.com/automoto/fruitrun/archetypes"
	"github.com/automoto/fruitrun/components"
	"github.com/automoto/fruitrun/session"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the per-session singleton: score at 0, no contacts,
// an empty scheduler.
func CreateSession(ecs *ecs.ECS, ctx *session.Context) *donburi.Entry {
	s := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(s, components.SessionData{Context: ctx})
	components.Score.SetValue(s, components.ScoreData{
		Value: 0,
		Label: FormatScore(0),
		Scale: 1,
	})
	return s
}

// FormatScore renders the score label text.
func FormatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// register appends entry to the session's update schedule.
func register(ecs *ecs.ECS, entry *donburi.Entry, kind components.BehaviorKind) {
	components.Behavior.SetValue(entry, components.BehaviorData{Kind: kind})

	s, ok := components.Scheduler.First(ecs.World)
	if !ok {
		return
	}
	scheduler := components.Scheduler.Get(s)
	scheduler.Entities = append(scheduler.Entities, entry.Entity())
}
