// internal/system/utils.go
package system

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/utils"
	"math"
)

// Snapshot - положение игрока на начало тика. Враги целятся по нему,
// а не по позиции, которую игрок успел занять в этом же тике.
type Snapshot struct {
	PlayerX, PlayerY float64
	PlayerRect       component.Rect
	PlayerAlive      bool
}

// TakeSnapshot фиксирует состояние игрока перед фазой обновления.
func TakeSnapshot(ecs *entity.ECS) Snapshot {
	p := ecs.Player
	if p == nil || !p.Alive() {
		return Snapshot{}
	}
	return Snapshot{
		PlayerX:     p.Rect.CenterX(),
		PlayerY:     p.Rect.CenterY(),
		PlayerRect:  p.Rect,
		PlayerAlive: !p.Dying,
	}
}

// AimAt возвращает точку прицеливания: игрока, а без него - прямо вниз от (x, y).
func (s Snapshot) AimAt(x, y float64) (float64, float64) {
	if !s.PlayerAlive {
		return x, y + 1
	}
	return s.PlayerX, s.PlayerY
}

func playSound(d *event.Dispatcher, name string) {
	d.Dispatch(event.Event{Type: event.SoundRequested, Data: name})
}

// shootJitter - случайная добавка до 25% к задержке, чтобы враги не стреляли синхронно.
func shootJitter(rng *utils.PRNGService, delay int64) int64 {
	if delay <= 0 {
		return 0
	}
	return int64(rng.IntRange(0, int(delay/4)))
}

// aimDegrees - угол от направления вниз на точку (tx, ty), в градусах,
// в той же системе, что и utils.AngleVelocity(.., +1).
func aimDegrees(x, y, tx, ty float64) float64 {
	return math.Atan2(tx-x, ty-y) * 180 / math.Pi
}

// inheritMomentum добавляет пуле долю движения стрелка. Пуля, летевшая вниз,
// остаётся летящей вниз.
func inheritMomentum(p *component.Projectile, mx, my, share float64) {
	baseDown := p.Vel.Y > 0
	p.Vel.X += mx * share
	p.Vel.Y += my * share
	if baseDown && p.Vel.Y < 1 {
		p.Vel.Y = 1
	}
}

// reflect разворачивает скорость от точки (cx, cy) с разбросом ±jitterDeg.
func reflect(p *component.Projectile, cx, cy, jitterDeg float64, rng *utils.PRNGService) {
	vx, vy := utils.Normalize(p.Rect.CenterX()-cx, p.Rect.CenterY()-cy, p.Speed)
	if vx == 0 && vy == 0 {
		vx, vy = -p.Vel.X, -p.Vel.Y
	}
	vx, vy = utils.Rotate(vx, vy, utils.Radians(rng.Range(-jitterDeg, jitterDeg)))
	p.Vel = component.Velocity{X: vx, Y: vy}
}
