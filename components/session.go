package components

import (
	"github.com/automoto/fruitrun/session"
	"github.com/yohamta/donburi"
)

// RestartReason records why a session asked to be rebuilt.
type RestartReason int

const (
	RestartNone RestartReason = iota
	RestartLevelComplete
	RestartDeath
)

func (r RestartReason) String() string {
	switch r {
	case RestartLevelComplete:
		return "level complete"
	case RestartDeath:
		return "death"
	default:
		return "none"
	}
}

// SessionData ties the per-session world to the process-wide context.
// Once RestartRequested is set, nothing else in the session should mutate
// gameplay state for the rest of the frame.
type SessionData struct {
	Context          *session.Context
	RestartRequested bool
	Reason           RestartReason
}

var Session = donburi.NewComponentType[SessionData]()
