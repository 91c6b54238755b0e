package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScoreData is the session score. Label is kept in sync with Value.
type ScoreData struct {
	Value int
	Label string

	// Pulse scales the label up briefly after each change.
	Pulse *gween.Tween
	Scale float32
}

var Score = donburi.NewComponentType[ScoreData]()
