package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

// LevelDir is the directory of the bundled levels inside LevelFS.
const LevelDir = "levels"

//go:embed levels
var LevelFS embed.FS

// LevelBackground renders the tile layers of dir/name.tmx marked with the
// "render" property into one image. It returns nil when the map or its
// tileset images cannot be loaded; the level still plays without it.
func LevelBackground(fsys fs.FS, dir, name string) *ebiten.Image {
	img, err := renderLevel(fsys, path.Join(dir, name+".tmx"))
	if err != nil {
		log.Printf("Warning: level %s has no background: %v", name, err)
		return nil
	}
	return img
}

func renderLevel(fsys fs.FS, tmxPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") || layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: failed to render layer %s: %v", layer.Name, err)
			continue
		}

		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		// Dispose temporary image to free GPU memory
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background, nil
}
