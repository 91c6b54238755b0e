package systems

import (
	"image/color"

	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// Height of a line of ebitenutil debug text.
const debugLineHeight = 16

// DrawDebug outlines every physics body when collider drawing is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	for _, obj := range space.Objects() {
		x := obj.X + camX
		y := obj.Y + camY

		// Cull objects outside viewport
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := debugColor(obj)
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}

	if s, ok := GetSession(ecs); ok {
		ctx := s.Context
		ebitenutil.DebugPrintAt(screen, FormatLevelStatus(ctx.LevelToLoad(), ctx.TotalLevels()), 4, int(height)-debugLineHeight-4)
	}
}

func debugColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return cfg.Grey
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.Blue
	case obj.HasTags(tags.ResolvEnemy):
		return cfg.Red
	case obj.HasTags(tags.ResolvFruit):
		return cfg.Green
	case obj.HasTags(tags.ResolvCollider):
		return cfg.Magenta
	default:
		return cfg.Cyan
	}
}
