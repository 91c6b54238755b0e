package components

import "github.com/yohamta/donburi"

type FruitData struct {
	Sprite    string
	Collected bool
}

var Fruit = donburi.NewComponentType[FruitData]()
