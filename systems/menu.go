package systems

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	menuTitle  = "FRUIT RUN"
	menuPrompt = "Press Space to start"
)

// NewUpdateMenu creates a system that calls onStart on the rising edge of
// the confirm action.
func NewUpdateMenu(onStart func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionConfirm).JustPressed {
			onStart()
		}
	}
}

// DrawMenu renders the title screen.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	width := float64(screen.Bounds().Dx())
	height := screen.Bounds().Dy()

	titleFont := fonts.Title.Get()
	text.Draw(screen, menuTitle, titleFont, centerTextX(menuTitle, titleFont, width), height/2-24, cfg.White)

	face := fonts.Regular.Get()
	text.Draw(screen, menuPrompt, face, centerTextX(menuPrompt, face, width), height/2+16, cfg.White)

	if entry, ok := components.Session.First(e.World); ok {
		ctx := components.Session.Get(entry).Context
		status := FormatLevelStatus(ctx.LevelToLoad(), ctx.TotalLevels())
		text.Draw(screen, status, face, centerTextX(status, face, width), height/2+40, cfg.Grey)
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}
