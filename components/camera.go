package components

import "github.com/yohamta/donburi"

type CameraData struct {
	Position Vector
}

var Camera = donburi.NewComponentType[CameraData]()
