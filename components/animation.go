package components

import (
	"github.com/automoto/fruitrun/assets/animations"
	"github.com/automoto/fruitrun/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Current *animations.Animation
	FlipX   bool
}

// Play keeps the running animation going when name is already playing and
// starts name from its first frame otherwise.
func (a *AnimationData) Play(name string, dt float64) {
	if a.Current != nil && a.Current.Name == name {
		a.Current.Advance(dt)
		return
	}

	def, ok := config.Animations[name]
	if !ok {
		a.Current = animations.NewAnimation(name, 0, 0, 0, false)
		return
	}
	a.Current = animations.NewAnimation(name, def.First, def.Last, def.FPS, def.Loop)
}

// Name returns the playing animation, or "" before the first Play.
func (a *AnimationData) Name() string {
	if a.Current == nil {
		return ""
	}
	return a.Current.Name
}

var Animation = donburi.NewComponentType[AnimationData]()
