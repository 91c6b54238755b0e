package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Platform   = donburi.NewTag().SetName("Platform")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Fruit      = donburi.NewTag().SetName("Fruit")
	Collider   = donburi.NewTag().SetName("Collider")
	EndOfLevel = donburi.NewTag().SetName("EndOfLevel")
	Decoration = donburi.NewTag().SetName("Decoration")
)

// Resolv tags for physics collision. Every body carries exactly one.
const (
	ResolvSolid      = "solid"
	ResolvCollider   = "collider"
	ResolvPlayer     = "player"
	ResolvEnemy      = "enemy"
	ResolvFruit      = "fruit"
	ResolvEndOfLevel = "endoflevel"
)
