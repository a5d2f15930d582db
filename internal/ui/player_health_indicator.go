// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/pkg/render"
)

const (
	barWidth  = 200.0
	barHeight = 16.0
	barGap    = 8.0
)

var (
	lowHealthColor = color.RGBA{255, 60, 60, 255}
	dashReadyColor = color.RGBA{255, 255, 255, 255}
)

// PlayerHealthIndicator отображает здоровье, энергию щита и готовность рывка.
type PlayerHealthIndicator struct {
	X, Y float64
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float64) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует полосы игрока. Меньше половины здоровья - полоса краснеет.
func (i *PlayerHealthIndicator) Draw(s render.Surface, p *component.Player, now int64) {
	if p == nil {
		return
	}
	hp := max(0, p.Health)
	healthColor := config.HealthBarColor
	if hp*2 <= p.MaxHealth {
		healthColor = lowHealthColor
	}
	s.DrawBar(i.X, i.Y, barWidth, barHeight, float64(hp)/float64(p.MaxHealth), healthColor)
	s.DrawText(strconv.Itoa(hp)+"/"+strconv.Itoa(p.MaxHealth), 12, i.X+barWidth/2, i.Y+2, config.TextColor)

	y := i.Y + barHeight + barGap
	s.DrawBar(i.X, y, barWidth, barHeight, p.Energy/p.MaxEnergy, config.EnergyBarColor)

	y += barHeight + barGap
	s.DrawBar(i.X, y, barWidth, barHeight/2, DashReadiness(p, now), dashReadyColor)
}

// DashReadiness - доля восстановленного кулдауна рывка, от 0 до 1.
func DashReadiness(p *component.Player, now int64) float64 {
	elapsed := float64(now - p.LastDash)
	return max(0, min(1, elapsed/config.HyperDashCooldown))
}

// Height возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) Height() float64 {
	return 2*(barHeight+barGap) + barHeight/2
}
