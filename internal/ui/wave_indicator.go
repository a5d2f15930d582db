// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-space-fighter/internal/config"
	"go-space-fighter/pkg/render"
)

// WaveIndicator отображает сектор римскими цифрами и номер волны под ним.
type WaveIndicator struct {
	X, Y     float64
	FontSize float64
	Color    color.RGBA
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, fontSize float64) *WaveIndicator {
	return &WaveIndicator{
		X:        x,
		Y:        y,
		FontSize: fontSize,
		Color:    config.TextColor,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveLabel - подпись под номером сектора.
func WaveLabel(wave, perSector int, bossFight bool) string {
	if bossFight {
		return "BOSS"
	}
	return fmt.Sprintf("Wave %d/%d", min(wave, perSector), perSector)
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(s render.Surface, sector, wave, perSector int, bossFight bool) {
	if sector <= 0 {
		return
	}
	textColor := i.Color
	if bossFight {
		textColor = config.BossBarColor
	}
	s.DrawText("Sector "+toRoman(sector), i.FontSize, i.X, i.Y, textColor)
	s.DrawText(WaveLabel(wave, perSector, bossFight), i.FontSize*0.7, i.X, i.Y+i.FontSize+4, textColor)
}
