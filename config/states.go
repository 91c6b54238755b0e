package config

// StateID identifies a player state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Run
	Jump
	Fall
	Hit
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Run:       "run",
	Jump:      "jump",
	Fall:      "fall",
	Hit:       "hit",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// StateToAnimation maps player states to animation keys.
var StateToAnimation = map[StateID]string{
	Idle: "idle",
	Run:  "run",
	Jump: "jump",
	Fall: "fall",
	Hit:  "hit",
}
