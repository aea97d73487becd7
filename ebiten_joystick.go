package main

import "github.com/hajimehoshi/ebiten/v2"

// Buttons, as bits:
// 0 - A
// 1 - B
// 2 - Select
// 3 - Start
// 4 - Up
// 5 - Down
// 6 - Left
// 7 - Right
var padKeys = []ebiten.Key{
	ebiten.KeyA,
	ebiten.KeyB,
	ebiten.KeySpace,
	ebiten.KeyEnter,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

// ebitenJoystick implements console.Joystick by polling ebiten's key
// state; it carries no data of its own beyond the key mapping.
type ebitenJoystick struct{}

func (ebitenJoystick) Poll() uint8 {
	var buttons uint8
	for i, key := range padKeys {
		if ebiten.IsKeyPressed(key) {
			buttons |= 1 << i
		}
	}
	return buttons
}
