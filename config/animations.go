package config

// AnimationDef describes a frame range on a sprite sheet.
type AnimationDef struct {
	First int
	Last  int
	FPS   float64
	Loop  bool
}

// Animations keyed by the names the controllers play.
var Animations map[string]AnimationDef

func init() {
	Animations = map[string]AnimationDef{
		"idle":  {First: 0, Last: 10, FPS: 20, Loop: true},
		"run":   {First: 0, Last: 11, FPS: 20, Loop: true},
		"jump":  {First: 0, Last: 0, FPS: 0},
		"fall":  {First: 0, Last: 0, FPS: 0},
		"hit":   {First: 0, Last: 6, FPS: 20},
		"m-run": {First: 0, Last: 13, FPS: 20, Loop: true},
		"fruit": {First: 0, Last: 16, FPS: 20, Loop: true},
	}
}
