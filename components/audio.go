package components

import (
	cfg "github.com/automoto/fruitrun/config"
	"github.com/yohamta/donburi"
)

// AudioData stores queued sound cues (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
