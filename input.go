package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/hopper/ecs/component"
)

const stickDeadzone = 0.3

// keyboardInput reads A/D, the arrow keys, W/Up/Space and the first
// gamepad's left stick and primary button.
type keyboardInput struct{}

func (keyboardInput) Poll() component.Input {
	var in component.Input
	in.MoveLeft = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	in.MoveRight = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	in.Jump = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeySpace)

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -stickDeadzone {
			in.MoveLeft = true
		} else if leftX > stickDeadzone {
			in.MoveRight = true
		}
		if ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) {
			in.Jump = true
		}
	}
	return in
}
