package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/leveldata"
	"github.com/automoto/fruitrun/session"
	"github.com/automoto/fruitrun/systems"
	"github.com/automoto/fruitrun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options carries the process-wide collaborators every session is built with.
type Options struct {
	Input systems.InputSource
	Audio systems.CuePlayer // nil discards cues
	Rand  *rand.Rand        // nil seeds from the clock

	// Background renders a level's tile layers. Optional.
	Background func(desc *leveldata.LevelDescriptor) *ebiten.Image
}

// PlayScene is one play session: a fresh world built from the level the
// context points at. It is discarded whole on restart.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ctx          *session.Context
	opts         Options
	once         sync.Once
}

func NewPlayScene(sc SceneChanger, ctx *session.Context, opts Options) *PlayScene {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PlayScene{sceneChanger: sc, ctx: ctx, opts: opts}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	s, ok := systems.GetSession(ps.ecs)
	if !ok || !s.RestartRequested {
		return
	}
	log.Printf("[play] restart (%s), next %s", s.Reason,
		systems.FormatLevelStatus(ps.ctx.LevelToLoad(), ps.ctx.TotalLevels()))
	ps.sceneChanger.ChangeScene(NewPlayScene(ps.sceneChanger, ps.ctx, ps.opts))
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.NewUpdateInput(ps.opts.Input))

	ecs.AddSystem(systems.WithRestartGuard(systems.UpdatePhysics))
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateBounds)
	ecs.AddSystem(systems.UpdateScheduler)
	ecs.AddSystem(systems.WithRestartGuard(systems.UpdateCamera))
	ecs.AddSystem(systems.UpdateScore)

	// Cues queued this frame still play on the frame that restarts.
	ecs.AddSystem(systems.NewUpdateAudio(ps.opts.Audio))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	factory.BuildSession(ps.ecs, ps.ctx, ps.opts.Rand)

	if ps.opts.Background != nil {
		levelEntry, ok := components.Level.First(ps.ecs.World)
		if ok {
			level := components.Level.Get(levelEntry)
			level.Background = ps.opts.Background(level.Descriptor)
		}
	}
}
