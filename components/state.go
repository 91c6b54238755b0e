package components

import (
	"github.com/automoto/fruitrun/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Transition moves to next and restarts the timer. Re-entering the current
// state only advances the timer.
func (s *StateData) Transition(next config.StateID) {
	if s.CurrentState == next {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
