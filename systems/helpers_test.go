package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/leveldata"
	"github.com/automoto/fruitrun/session"
	"github.com/automoto/fruitrun/systems/factory"
	"github.com/automoto/fruitrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// scriptedInput holds the actions a test wants pressed this frame.
type scriptedInput map[cfg.ActionID]bool

func (s scriptedInput) Pressed(action cfg.ActionID) bool {
	return s[action]
}

// cueRecorder collects every cue drained by the audio system.
type cueRecorder struct {
	played []cfg.SoundID
}

func (r *cueRecorder) Play(sound cfg.SoundID) {
	r.played = append(r.played, sound)
}

func (r *cueRecorder) count(sound cfg.SoundID) int {
	n := 0
	for _, s := range r.played {
		if s == sound {
			n++
		}
	}
	return n
}

type harness struct {
	ecs   *ecs.ECS
	ctx   *session.Context
	input scriptedInput
	audio *cueRecorder
}

// flatLevel is a 320x160 level with a floor along the bottom and the start
// zone at (32, 120). No end zone, enemies or fruit.
func flatLevel(name string) *leveldata.LevelDescriptor {
	return &leveldata.LevelDescriptor{
		Name:    name,
		Width:   320,
		Height:  160,
		Endless: true,
		Solids:  []leveldata.SolidRect{{X: 0, Y: 144, W: 320, H: 16}},
		Start:   leveldata.Zone{Kind: leveldata.ZoneStart, Position: leveldata.Point{X: 32, Y: 120}},
	}
}

// newHarness builds a session on the first of levels and registers the
// same system order as the play scene.
func newHarness(t *testing.T, levels ...*leveldata.LevelDescriptor) *harness {
	t.Helper()
	ctx, err := session.NewContext(levels)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}

	h := &harness{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		ctx:   ctx,
		input: scriptedInput{},
		audio: &cueRecorder{},
	}
	h.ecs.AddSystem(NewUpdateInput(h.input))
	h.ecs.AddSystem(WithRestartGuard(UpdatePhysics))
	h.ecs.AddSystem(UpdateCollisions)
	h.ecs.AddSystem(UpdateBounds)
	h.ecs.AddSystem(UpdateScheduler)
	h.ecs.AddSystem(WithRestartGuard(UpdateCamera))
	h.ecs.AddSystem(UpdateScore)
	h.ecs.AddSystem(NewUpdateAudio(h.audio))

	factory.BuildSession(h.ecs, ctx, rand.New(rand.NewSource(1)))
	return h
}

func (h *harness) step(frames int) {
	for i := 0; i < frames; i++ {
		h.ecs.Update()
	}
}

// press holds action for one frame and then releases it for one frame.
func (h *harness) press(action cfg.ActionID) {
	h.input[action] = true
	h.step(1)
	h.input[action] = false
	h.step(1)
}

func (h *harness) player(t *testing.T) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(h.ecs.World)
	if !ok {
		t.Fatal("no player")
	}
	return entry
}

func (h *harness) session(t *testing.T) *components.SessionData {
	t.Helper()
	s, ok := GetSession(h.ecs)
	if !ok {
		t.Fatal("no session")
	}
	return s
}

func (h *harness) score(t *testing.T) *components.ScoreData {
	t.Helper()
	entry, ok := components.Score.First(h.ecs.World)
	if !ok {
		t.Fatal("no score")
	}
	return components.Score.Get(entry)
}

// runUntilRestart steps until a restart is requested or limit frames pass.
func (h *harness) runUntilRestart(t *testing.T, limit int) *components.SessionData {
	t.Helper()
	for i := 0; i < limit; i++ {
		h.step(1)
		if s := h.session(t); s.RestartRequested {
			return s
		}
	}
	t.Fatalf("no restart within %d frames", limit)
	return nil
}
