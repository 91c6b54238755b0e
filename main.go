package main

import (
	"flag"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/fruitrun/assets"
	"github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/fonts"
	"github.com/automoto/fruitrun/leveldata"
	"github.com/automoto/fruitrun/scenes"
	"github.com/automoto/fruitrun/session"
	"github.com/automoto/fruitrun/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	ctx     *session.Context
	loader  *leveldata.Loader
	watcher *leveldata.Watcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(ctx *session.Context, loader *leveldata.Loader, watcher *leveldata.Watcher) *Game {
	g := &Game{
		bounds:  image.Rectangle{},
		ctx:     ctx,
		loader:  loader,
		watcher: watcher,
	}

	opts := scenes.Options{
		Input: &systems.KeyboardInput{},
		Audio: assets.NewSoundBank(audio.NewContext(config.Audio.SampleRate), assets.AudioFS),
		Background: func(desc *leveldata.LevelDescriptor) *ebiten.Image {
			return assets.LevelBackground(loader.FS, loader.Dir, desc.Name)
		},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlayScene(g, ctx, opts)
	} else {
		g.scene = scenes.NewMenuScene(g, ctx, opts)
	}

	return g
}

func (g *Game) Update() error {
	g.reloadLevels()
	g.scene.Update()
	return nil
}

// reloadLevels swaps in the level set after a .tmx change. The running
// session keeps its level; the new set is used from the next restart.
func (g *Game) reloadLevels() {
	if g.watcher == nil {
		return
	}

	changed := false
	for drained := false; !drained; {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("[levels] %s changed", filepath.Base(name))
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("[levels] watcher error: %v", err)
		default:
			drained = true
		}
	}
	if !changed {
		return
	}

	levels, err := g.loader.LoadAll()
	if err != nil {
		log.Printf("Warning: keeping previous levels: %v", err)
		return
	}
	if err := g.ctx.SetLevels(levels); err != nil {
		log.Printf("Warning: keeping previous levels: %v", err)
		return
	}
	log.Printf("[levels] reloaded %d levels", len(levels))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	levelsDir := flag.String("levels", "", "load levels from this directory and reload them on change")
	skipMenu := flag.Bool("skip-menu", false, "skip the menu and start playing")
	debug := flag.Bool("debug", false, "outline physics bodies")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *debug {
		config.Debug.DrawColliders = true
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var fsys fs.FS = assets.LevelFS
	dir := assets.LevelDir
	if *levelsDir != "" {
		fsys = os.DirFS(*levelsDir)
		dir = "."
	}
	loader := leveldata.NewLoader(fsys, dir, config.Level.Endless...)

	levels, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	ctx, err := session.NewContext(levels)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	names := make([]string, 0, len(levels))
	for _, l := range levels {
		names = append(names, l.Name)
	}
	log.Printf("[levels] loaded %s", strings.Join(names, ", "))

	var watcher *leveldata.Watcher
	if *levelsDir != "" {
		watcher, err = leveldata.NewWatcher(*levelsDir)
		if err != nil {
			log.Printf("Warning: level hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Fruit Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(ctx, loader, watcher)); err != nil {
		log.Fatal(err)
	}
}
