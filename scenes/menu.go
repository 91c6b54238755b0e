package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/session"
	"github.com/automoto/fruitrun/systems"
	"github.com/automoto/fruitrun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene waits for the confirm action, then starts play.
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ctx          *session.Context
	opts         Options
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, ctx *session.Context, opts Options) *MenuScene {
	return &MenuScene{sceneChanger: sc, ctx: ctx, opts: opts}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// The menu only reads the context for its level line.
	factory.CreateSession(ms.ecs, ms.ctx)

	ms.ecs.AddSystem(systems.NewUpdateInput(ms.opts.Input))
	ms.ecs.AddSystem(systems.NewUpdateMenu(func() {
		ms.sceneChanger.ChangeScene(NewPlayScene(ms.sceneChanger, ms.ctx, ms.opts))
	}))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
