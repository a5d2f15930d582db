// internal/state/overlay.go
package state

import (
	"image/color"

	"go-space-fighter/internal/config"
	"go-space-fighter/pkg/render"
)

var dimColor = color.RGBA{0, 0, 0, 160}

// dim затемняет экран под модальным окном.
func dim(s render.Surface) {
	s.DrawSprite("overlay", 0, 0, config.ScreenWidth, config.ScreenHeight, dimColor)
}

func title(s render.Surface, text string, y float64, clr color.Color) {
	s.DrawText(text, 48, config.ScreenWidth/2, y, clr)
}
