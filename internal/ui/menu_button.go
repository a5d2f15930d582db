// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"go-space-fighter/internal/config"
	"go-space-fighter/pkg/render"
)

var (
	buttonColor   = color.RGBA{60, 60, 80, 255}
	buttonOutline = color.RGBA{200, 200, 200, 255}
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	X, Y, W, H float64
	Text       string
	Hint       string
}

// Draw отрисовывает кнопку; выбранная подсвечивается.
func (b *MenuButton) Draw(s render.Surface, selected bool, textColor color.RGBA) {
	s.DrawSprite("button", b.X, b.Y, b.W, b.H, buttonColor)
	outline := buttonOutline
	if selected {
		outline = config.HighlightColor
	}
	s.DrawSprite("frame", b.X, b.Y, b.W, b.H, outline)

	size := 24.0
	y := b.Y + (b.H-size)/2
	if b.Hint != "" {
		y = b.Y + 6
	}
	s.DrawText(b.Text, size, b.X+b.W/2, y, textColor)
	if b.Hint != "" {
		s.DrawText(b.Hint, 14, b.X+b.W/2, b.Y+b.H-20, config.TextColor)
	}
}

// Menu - вертикальный список кнопок с выбором стрелками.
type Menu struct {
	Buttons  []*MenuButton
	Selected int
}

// NewMenu раскладывает кнопки столбцом по центру экрана, начиная с top.
func NewMenu(top, w, h, gap float64, labels ...string) *Menu {
	m := &Menu{}
	x := config.ScreenWidth/2 - w/2
	for i, label := range labels {
		m.Buttons = append(m.Buttons, &MenuButton{X: x, Y: top + float64(i)*(h+gap), W: w, H: h, Text: label})
	}
	return m
}

// Move сдвигает выбор на delta с переходом через край.
func (m *Menu) Move(delta int) {
	n := len(m.Buttons)
	if n == 0 {
		return
	}
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// Draw рисует меню. colorOf может перекрасить текст кнопки, nil - белый.
func (m *Menu) Draw(s render.Surface, colorOf func(i int) color.RGBA) {
	for i, b := range m.Buttons {
		clr := config.TextColor
		if colorOf != nil {
			clr = colorOf(i)
		}
		b.Draw(s, i == m.Selected, clr)
	}
}
