package animations

// Animation steps through the frame range [First, Last] at FPS frames per
// second of game time.
type Animation struct {
	Name  string
	First int
	Last  int
	FPS   float64
	Loop  bool

	elapsed float64
	Looped  bool
}

// Advance moves the animation forward by dt seconds.
func (a *Animation) Advance(dt float64) {
	a.elapsed += dt
	if a.Len() > 0 && a.FPS > 0 && a.elapsed*a.FPS >= float64(a.Len()) {
		a.Looped = true
	}
}

// Len is the number of frames in the range.
func (a *Animation) Len() int {
	return a.Last - a.First + 1
}

func (a *Animation) Frame() int {
	n := a.Len()
	if n <= 1 || a.FPS <= 0 {
		return a.First
	}
	step := int(a.elapsed * a.FPS)
	if step >= n && !a.Loop {
		return a.Last
	}
	return a.First + step%n
}

func (a *Animation) Elapsed() float64 {
	return a.elapsed
}

func (a *Animation) Restart() {
	a.elapsed = 0
	a.Looped = false
}

func NewAnimation(name string, first, last int, fps float64, loop bool) *Animation {
	if last < first {
		last = first
	}
	return &Animation{
		Name:  name,
		First: first,
		Last:  last,
		FPS:   fps,
		Loop:  loop,
	}
}
