// internal/system/render.go
package system

import (
	"image/color"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/entity"
	"go-space-fighter/pkg/render"
)

var (
	sapperBeamColor = color.RGBA{180, 0, 255, 110}
	shieldOrbColor  = color.RGBA{0, 200, 255, 160}
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

// Draw рисует мир снизу вверх: порталы, бонусы, враги, боссы, пули, игрок.
func (s *RenderSystem) Draw(screen render.Surface, now int64) {
	for _, id := range entity.SortedIDs(s.ecs.Portals) {
		p := s.ecs.Portals[id]
		pulse := p.Pulse(now)
		w, h := p.Rect.W*pulse, p.Rect.H*pulse
		x, y := p.Rect.CenterX()-w/2, p.Rect.CenterY()-h/2
		screen.DrawSprite("portal", x, y, w, h, render.WithAlpha(p.Color, 180))
		screen.DrawSprite("shield", x, y, w, h, p.Color)
	}

	for _, id := range entity.SortedIDs(s.ecs.PowerUps) {
		pu := s.ecs.PowerUps[id]
		drawBody(screen, pu.Sprite, pu.Rect, pu.Color)
	}

	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		s.drawEnemy(screen, s.ecs.Enemies[id], now)
	}

	for _, id := range entity.SortedIDs(s.ecs.Goliaths) {
		g := s.ecs.Goliaths[id]
		for _, b := range g.AliveBarriers() {
			drawBody(screen, "barrier", b.Rect, defs.BarrierVisuals.Color)
		}
		drawBody(screen, g.Sprite, g.Rect, flashed(g.Color, g.DamageFlash, now))
		if g.HasShield {
			drawBody(screen, "shield", grow(g.Rect, 10), config.ShieldColor)
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.Bosses) {
		b := s.ecs.Bosses[id]
		drawBody(screen, b.Sprite, b.Rect, flashed(b.Color, b.DamageFlash, now))
	}

	for _, id := range entity.SortedIDs(s.ecs.Bullets) {
		b := s.ecs.Bullets[id]
		drawBody(screen, b.Sprite, b.Rect, b.Color)
	}
	for _, id := range entity.SortedIDs(s.ecs.EnemyBullets) {
		b := s.ecs.EnemyBullets[id]
		drawBody(screen, b.Sprite, b.Rect, b.Color)
	}

	s.drawPlayer(screen, now)
}

func (s *RenderSystem) drawEnemy(screen render.Surface, e *component.Enemy, now int64) {
	if !e.Alive() {
		return
	}
	if sp, ok := e.Sapper(); ok && sp.BeamActive {
		screen.DrawSprite("beam", e.Rect.X, e.Rect.Bottom(), e.Rect.W, config.ScreenHeight-e.Rect.Bottom(), sapperBeamColor)
	}
	clr := flashed(e.Color, e.DamageFlash, now)
	clr.A = e.Alpha
	drawBody(screen, e.Sprite, e.Rect, clr)
	if sh, ok := e.Shield(); ok && sh.Enabled {
		drawBody(screen, "shield", grow(e.Rect, 8), shieldOrbColor)
	}
}

func (s *RenderSystem) drawPlayer(screen render.Surface, now int64) {
	p := s.ecs.Player
	if p == nil || !p.Alive() {
		return
	}
	for _, d := range p.Drones {
		drawBody(screen, "drone", d.Rect, droneColor)
	}
	if !p.Visible {
		return
	}
	clr := playerColor
	if p.Invincible && !p.Dying && now/config.DyingBlink%2 == 1 {
		clr = render.WithAlpha(clr, 120)
	}
	drawBody(screen, "player", p.Rect, clr)
	if p.ShieldActive {
		drawBody(screen, "shield", grow(p.Rect, 12), config.ShieldColor)
	}
}

func drawBody(screen render.Surface, kind string, r component.Rect, clr color.RGBA) {
	screen.DrawSprite(kind, r.X, r.Y, r.W, r.H, clr)
}

// flashed подменяет цвет на вспышку урона, сохраняя альфу.
func flashed(c color.RGBA, f component.DamageFlash, now int64) color.RGBA {
	if f.Active(now) {
		return render.WithAlpha(render.FlashColor, c.A)
	}
	return c
}

func grow(r component.Rect, by float64) component.Rect {
	return component.Rect{X: r.X - by, Y: r.Y - by, W: r.W + 2*by, H: r.H + 2*by}
}
