// internal/input/keyboard.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard читает клавиатуру через ebiten.
// WASD/стрелки - движение, SPACE - огонь, SHIFT - щит, E - рывок.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Read() State {
	return State{
		Left:   held(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right:  held(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:     held(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:   held(ebiten.KeyArrowDown, ebiten.KeyS),
		Shoot:  held(ebiten.KeySpace),
		Shield: held(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),

		Dash:     pressed(ebiten.KeyE),
		Enter:    pressed(ebiten.KeyF, ebiten.KeyEnter),
		Pause:    pressed(ebiten.KeyP, ebiten.KeyF9),
		Back:     pressed(ebiten.KeyEscape, ebiten.KeyBackspace),
		MenuUp:   pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		MenuDown: pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Confirm:  pressed(ebiten.KeyEnter, ebiten.KeySpace),
	}
}

func held(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
