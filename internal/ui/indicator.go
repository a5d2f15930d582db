// internal/ui/indicator.go
package ui

import (
	"fmt"
	"math"

	"go-space-fighter/internal/config"
	"go-space-fighter/pkg/render"
)

// ComboIndicator показывает множитель комбо и «подпрыгивает» при его росте.
type ComboIndicator struct {
	X, Y      float64
	FontSize  float64
	last      int
	changedAt int64
}

func NewComboIndicator(x, y, fontSize float64) *ComboIndicator {
	return &ComboIndicator{X: x, Y: y, FontSize: fontSize, last: 1}
}

// Scale - масштаб текста: всплеск при изменении комбо, затухающий экспоненциально.
func (i *ComboIndicator) Scale(now int64) float64 {
	elapsed := float64(now-i.changedAt) / 1000
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// Draw отрисовывает индикатор. Комбо x1 не показывается.
func (i *ComboIndicator) Draw(s render.Surface, combo int, now int64) {
	if combo != i.last {
		if combo > i.last {
			i.changedAt = now
		}
		i.last = combo
	}
	if combo <= 1 {
		return
	}
	s.DrawText(fmt.Sprintf("x%d", combo), i.FontSize*i.Scale(now), i.X, i.Y, config.HighlightColor)
}
