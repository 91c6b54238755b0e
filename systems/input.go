package systems

import (
	"github.com/automoto/fruitrun/components"
	cfg "github.com/automoto/fruitrun/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports whether an action is held this frame.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
}

// KeyboardInput reads the configured keyboard and gamepad bindings.
type KeyboardInput struct {
	gamepadIDs []ebiten.GamepadID
}

// Poll refreshes the connected gamepads. Call once per frame before Pressed.
func (k *KeyboardInput) Poll() {
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])
}

func (k *KeyboardInput) Pressed(action cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[action]
	if !ok {
		return false
	}

	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}

	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
		if analogPressed(gpID, action) {
			return true
		}
	}
	return false
}

// analogPressed merges the left stick into the horizontal move actions.
func analogPressed(gpID ebiten.GamepadID, action cfg.ActionID) bool {
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	switch action {
	case cfg.ActionMoveLeft:
		return horizontal < -cfg.Input.AnalogDeadzone
	case cfg.ActionMoveRight:
		return horizontal > cfg.Input.AnalogDeadzone
	default:
		return false
	}
}

// NewUpdateInput creates a system that samples src into the Input singleton.
// Must run BEFORE the scheduler in the system order.
func NewUpdateInput(src InputSource) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}
		if src == nil {
			return
		}

		if k, ok := src.(*KeyboardInput); ok {
			k.Poll()
		}
		for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
			input.Current[id] = src.Pressed(id)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}
