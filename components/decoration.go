package components

import "github.com/yohamta/donburi"

type DecorationData struct {
	Type   string
	Sprite string
	X, Y   float64
	W, H   float64
}

var Decoration = donburi.NewComponentType[DecorationData]()
