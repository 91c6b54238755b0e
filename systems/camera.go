package systems

import (
	"math"

	"github.com/automoto/fruitrun/components"
	"github.com/automoto/fruitrun/config"
	"github.com/automoto/fruitrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const cameraFollowSmoothing = 0.15

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2

	// Keep the level filling the screen; a level smaller than the screen is centred.
	targetX = clampCamera(targetX, float64(config.C.Width), level.Width)
	targetY = clampCamera(targetY, float64(config.C.Height), level.Height)

	camera.Position.X += (targetX - camera.Position.X) * cameraFollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * cameraFollowSmoothing
}

func clampCamera(target, screenSize, levelSize float64) float64 {
	minPos := screenSize / 2
	maxPos := levelSize - screenSize/2
	if maxPos < minPos {
		return levelSize / 2
	}
	return math.Max(minPos, math.Min(maxPos, target))
}

// cameraOffset returns the translation from world to screen coordinates.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}
