package systems

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// AddScore adds amount to the session score, refreshes the label and
// starts the label pulse.
func AddScore(ecs *ecs.ECS, amount int) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	score.Value += amount
	score.Label = factory.FormatScore(score.Value)

	score.Scale = cfg.Score.PulseScale
	score.Pulse = gween.New(cfg.Score.PulseScale, 1, cfg.Score.PulseDuration, ease.OutQuad)
}

// UpdateScore advances the label pulse.
func UpdateScore(ecs *ecs.ECS) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	if score.Pulse == nil {
		return
	}

	scale, finished := score.Pulse.Update(1 / float32(cfg.C.TPS))
	score.Scale = scale
	if finished {
		score.Pulse = nil
		score.Scale = 1
	}
}
