package components

import "github.com/yohamta/donburi"

// EndOfLevelData marks the level exit trigger. Disabled is set by the first
// overlap so the trigger fires once per session.
type EndOfLevelData struct {
	Disabled bool
}

var EndOfLevel = donburi.NewComponentType[EndOfLevelData]()
