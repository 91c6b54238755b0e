package systems

import (
	"image"

	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var (
	scoreLabel *ebiten.Image
	hudDrawOp  = &ebiten.DrawImageOptions{}
)

// DrawHUD renders the score label, scaled around its centre while the
// collection pulse runs.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)

	face := fonts.Score.Get()
	bounds := text.BoundString(face, score.Label)
	ensureLabelImage(bounds)
	scoreLabel.Clear()
	text.Draw(scoreLabel, score.Label, face, -bounds.Min.X, -bounds.Min.Y, cfg.White)

	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	scale := float64(score.Scale)
	if scale <= 0 {
		scale = 1
	}

	hudDrawOp.GeoM.Reset()
	hudDrawOp.GeoM.Translate(-w/2, -h/2)
	hudDrawOp.GeoM.Scale(scale, scale)
	hudDrawOp.GeoM.Translate(float64(cfg.Score.LabelX), float64(cfg.Score.LabelY))
	screen.DrawImage(scoreLabel.SubImage(image.Rect(0, 0, bounds.Dx(), bounds.Dy())).(*ebiten.Image), hudDrawOp)
}

// ensureLabelImage grows the offscreen label so bounds fit.
func ensureLabelImage(bounds image.Rectangle) {
	if scoreLabel != nil {
		size := scoreLabel.Bounds().Size()
		if size.X >= bounds.Dx() && size.Y >= bounds.Dy() {
			return
		}
		scoreLabel.Deallocate()
	}
	scoreLabel = ebiten.NewImage(max(bounds.Dx()*2, 1), max(bounds.Dy(), 1))
}
