// internal/app/autopilot.go
package app

import (
	"math"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/input"
)

const (
	dodgeLookahead = 140.0 // насколько выше игрока смотрим на вражеские пули
	dodgeMargin    = 12.0
	aimDeadZone    = 6.0
	shieldDistance = 50.0
	shieldReserve  = 30.0
)

// Autopilot - простой бот: уклоняется от пуль, держится под ближайшей
// целью и стреляет, а после босса летит в портал. Нужен для headless-прогонов.
type Autopilot struct {
	game *Game
}

func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g}
}

// Read реализует input.Reader.
func (a *Autopilot) Read() input.State {
	ecs := a.game.ECS
	p := ecs.Player
	if p == nil || !p.Alive() || p.Dying {
		return input.State{}
	}
	in := input.State{Shoot: true}
	px, py := p.Rect.CenterX(), p.Rect.CenterY()

	if portal, ok := nearestPortal(ecs); ok {
		steer(&in, px, py, portal.Rect.CenterX(), portal.Rect.CenterY())
		in.Enter = portal.Rect.Intersects(p.Rect)
		return in
	}

	threat, dist := incomingThreat(ecs, p)
	switch {
	case threat != 0:
		if threat < 0 {
			in.Left = true
		} else {
			in.Right = true
		}
		if dist < shieldDistance && p.Energy > shieldReserve {
			in.Shield = true
		}
		if dist < shieldDistance/2 {
			in.Dash = true
		}
	default:
		if t, ok := ecs.Nearest(px, py); ok {
			steer(&in, px, 0, t.X, 0)
		}
	}

	// держимся у нижнего края
	homeY := float64(config.ScreenHeight - config.PlayerBottomMargin - config.PlayerHeight/2)
	if py < homeY-aimDeadZone {
		in.Down = true
	}
	return in
}

// steer задаёт направление к точке с мёртвой зоной.
func steer(in *input.State, x, y, tx, ty float64) {
	switch {
	case tx < x-aimDeadZone:
		in.Left = true
	case tx > x+aimDeadZone:
		in.Right = true
	}
	switch {
	case ty < y-aimDeadZone:
		in.Up = true
	case ty > y+aimDeadZone:
		in.Down = true
	}
}

// incomingThreat ищет ближайшую вражескую пулю над игроком. Возвращает
// направление ухода (-1 влево, +1 вправо, 0 - угрозы нет) и расстояние до неё.
func incomingThreat(ecs *entity.ECS, p *component.Player) (int, float64) {
	best := math.Inf(1)
	dir := 0
	for _, id := range entity.SortedIDs(ecs.EnemyBullets) {
		b := ecs.EnemyBullets[id]
		if !b.Alive() {
			continue
		}
		dy := p.Rect.Top() - b.Rect.Bottom()
		if dy < -p.Rect.H || dy > dodgeLookahead {
			continue
		}
		if b.Rect.Right() < p.Rect.Left()-dodgeMargin || b.Rect.Left() > p.Rect.Right()+dodgeMargin {
			continue
		}
		if dy < best {
			best = dy
			dir = 1
			if b.Rect.CenterX() > p.Rect.CenterX() {
				dir = -1
			}
			// у стены уходим в другую сторону
			if dir < 0 && p.Rect.Left() < p.Rect.W {
				dir = 1
			} else if dir > 0 && p.Rect.Right() > config.ScreenWidth-p.Rect.W {
				dir = -1
			}
		}
	}
	return dir, max(0, best)
}

func nearestPortal(ecs *entity.ECS) (*component.ShopPortal, bool) {
	for _, id := range entity.SortedIDs(ecs.Portals) {
		if portal := ecs.Portals[id]; portal.Alive() {
			return portal, true
		}
	}
	return nil, false
}
