// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/pkg/render"
)

// HUD собирает все индикаторы поверх игрового поля.
type HUD struct {
	health *PlayerHealthIndicator
	wave   *WaveIndicator
	combo  *ComboIndicator
}

func NewHUD() *HUD {
	return &HUD{
		health: NewPlayerHealthIndicator(10, 10),
		wave:   NewWaveIndicator(config.ScreenWidth/2, 10, 24),
		combo:  NewComboIndicator(config.ScreenWidth-80, 70, 28),
	}
}

// Draw рисует HUD. boss == nil, если босса на поле нет.
func (h *HUD) Draw(s render.Surface, gs *component.GameState, p *component.Player, boss *component.Boss, now int64) {
	h.health.Draw(s, p, now)
	h.wave.Draw(s, gs.Sector, gs.Wave, gs.WavesPerSector, gs.BossFight)
	h.combo.Draw(s, gs.Combo, now)

	right := float64(config.ScreenWidth - 80)
	s.DrawText(fmt.Sprintf("Score %d", gs.Score), 18, right, 10, config.TextColor)
	s.DrawText(fmt.Sprintf("Best %d", gs.HighScore), 14, right, 32, config.TextColor)
	s.DrawText(fmt.Sprintf("Res %d", gs.Resources), 14, right, 50, config.AffordColor)

	if p != nil {
		s.DrawText(fmt.Sprintf("%s L%d  drones %d/%d", p.WeaponType, p.WeaponLevel, len(p.Drones), p.MaxDrones),
			12, 10+barWidth/2, 10+h.health.Height()+6, config.TextColor)
	}

	if boss != nil && boss.Alive() {
		w := float64(config.ScreenWidth) * 0.6
		x := float64(config.ScreenWidth)/2 - w/2
		y := float64(config.ScreenHeight) - 40
		s.DrawText(boss.Name, 16, config.ScreenWidth/2, y-22, config.BossBarColor)
		s.DrawBar(x, y, w, 14, float64(max(0, boss.Health))/float64(boss.MaxHealth), config.BossBarColor)
	}
}
