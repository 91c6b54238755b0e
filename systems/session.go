package systems

import (
	"fmt"

	"github.com/automoto/fruitrun/components"
	"github.com/yohamta/donburi/ecs"
)

// GetSession returns the session singleton, if the world has one.
func GetSession(ecs *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// RequestRestart asks the scene to rebuild the session at the end of the
// frame. The first reason recorded in a frame wins.
func RequestRestart(ecs *ecs.ECS, reason components.RestartReason) {
	s, ok := GetSession(ecs)
	if !ok || s.RestartRequested {
		return
	}
	s.RestartRequested = true
	s.Reason = reason
}

func RestartRequested(ecs *ecs.ECS) bool {
	s, ok := GetSession(ecs)
	return ok && s.RestartRequested
}

// WithRestartGuard wraps a system to skip execution once a restart has been
// requested, so nothing mutates a session that is about to be discarded.
func WithRestartGuard(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if RestartRequested(e) {
			return
		}
		system(e)
	}
}

// FormatLevelStatus renders "Level n/total" for overlays.
func FormatLevelStatus(n, total int) string {
	return fmt.Sprintf("Level %d/%d", n, total)
}
