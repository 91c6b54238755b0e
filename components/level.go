package components

import (
	"github.com/automoto/fruitrun/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Descriptor    *leveldata.LevelDescriptor
	Width         float64
	Height        float64
	FallThreshold float64 // Bodies whose top passes this Y have left the level

	// Background is the pre-rendered tile layers, nil when headless.
	Background *ebiten.Image
}

var Level = donburi.NewComponentType[LevelData]()
