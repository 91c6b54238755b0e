package systems

import (
	"image/color"

	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	platformColor   = color.RGBA{R: 86, G: 74, B: 60, A: 255}
	decorationColor = color.RGBA{R: 46, G: 90, B: 60, A: 255}
	endColor        = color.RGBA{R: 240, G: 220, B: 80, A: 160}
)

// DrawLevel fills the sky and draws the pre-rendered tile layers. Without a
// background image the solid runs are drawn as flat rectangles.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if level.Background != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(camX, camY)
		screen.DrawImage(level.Background, drawOp)
		return
	}

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		fillRect(screen, o.X+camX, o.Y+camY, o.W, o.H, platformColor)
	})
}

// DrawEntities draws decorations, the end trigger, fruit, enemies and the
// player as flat shapes, back to front.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	components.Decoration.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Decoration.Get(e)
		fillRect(screen, d.X+camX, d.Y+camY, d.W, d.H, decorationColor)
	})

	components.EndOfLevel.Each(ecs.World, func(e *donburi.Entry) {
		if components.EndOfLevel.Get(e).Disabled {
			return
		}
		o := components.Object.Get(e)
		fillRect(screen, o.X+camX, o.Y+camY, o.W, o.H, endColor)
	})

	components.Fruit.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		// Bob with the animation frame.
		bob := float64(components.Animation.Get(e).Current.Frame()%4) - 2
		fillRect(screen, o.X+camX+2, o.Y+camY+2+bob, o.W-4, o.H-4, cfg.Red)
	})

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		enemy := components.Enemy.Get(e)
		fillRect(screen, o.X+camX, o.Y+camY, o.W, o.H, cfg.EnemyType(enemy.Kind).TintColor)
		drawFacing(screen, o.X+camX, o.Y+camY, o.W, enemy.Direction.X)
	})

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	o := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	c := cfg.Blue
	if !player.Alive {
		c = cfg.Grey
	}
	fillRect(screen, o.X+camX, o.Y+camY, o.W, o.H, c)
	drawFacing(screen, o.X+camX, o.Y+camY, o.W, player.Direction.X)
}

// drawFacing marks the side a body is looking at.
func drawFacing(screen *ebiten.Image, x, y, w, dir float64) {
	eyeX := x + w - 6
	if dir < 0 {
		eyeX = x + 2
	}
	fillRect(screen, eyeX, y+4, 4, 4, cfg.White)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)
}
