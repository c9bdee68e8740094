package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/fpsarena/ecs/component"
)

const (
	stickDeadzone = 0.2
	// Pixels of pointer travel per frame at full right-stick deflection.
	stickLookSpeed = 12.0
)

var weaponKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// Input samples keyboard, mouse and the first gamepad into one frame of
// simulation input. Look deltas come from the captured cursor.
type Input struct {
	lastX, lastY int
	primed       bool
}

func NewInput() *Input {
	return &Input{}
}

// Sample reads this frame's input. current is the active weapon slot, used by
// the gamepad shoulder buttons to cycle weapons.
func (i *Input) Sample(locked bool, current component.WeaponID) component.Input {
	in := component.Input{
		Forward:       ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward:      ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:          ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:          inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Fire:          locked && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		PointerLocked: locked,
	}
	for idx, key := range weaponKeys {
		if inpututil.IsKeyJustPressed(key) {
			in.SelectWeapon = component.WeaponID(idx + 1)
		}
	}

	if locked {
		x, y := ebiten.CursorPosition()
		if i.primed {
			in.LookDX = float64(x - i.lastX)
			in.LookDY = float64(y - i.lastY)
		}
		i.lastX, i.lastY, i.primed = x, y, true
	} else {
		i.primed = false
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		i.sampleGamepad(gamepads[0], &in, current)
	}
	return in
}

func (i *Input) sampleGamepad(id ebiten.GamepadID, in *component.Input, current component.WeaponID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return
	}
	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	in.Left = in.Left || lx < -stickDeadzone
	in.Right = in.Right || lx > stickDeadzone
	in.Forward = in.Forward || ly < -stickDeadzone
	in.Backward = in.Backward || ly > stickDeadzone

	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	if math.Hypot(rx, ry) > stickDeadzone {
		in.LookDX += rx * stickLookSpeed
		in.LookDY += ry * stickLookSpeed
	}

	in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	in.Fire = in.Fire || (in.PointerLocked && inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight))
	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopLeft) {
		in.SelectWeapon = cycleWeapon(current, -1)
	}
	if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight) {
		in.SelectWeapon = cycleWeapon(current, 1)
	}
}

func cycleWeapon(cur component.WeaponID, dir int) component.WeaponID {
	n := len(weaponKeys)
	next := ((int(cur)-1+dir)%n + n) % n
	return component.WeaponID(next + 1)
}
