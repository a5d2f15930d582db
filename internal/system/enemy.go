// internal/system/enemy.go
package system

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/sound"
	"go-space-fighter/internal/utils"
	"math"
)

// EnemySystem ведёт обычных врагов: движение по типу, стрельбу и самоуничтожение
// за нижним краем экрана.
type EnemySystem struct {
	ecs             *entity.ECS
	spawner         *Spawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(ecs *entity.ECS, spawner *Spawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{ecs: ecs, spawner: spawner, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *EnemySystem) Update(now int64, snap Snapshot) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		e := s.ecs.Enemies[id]
		if !e.Alive() {
			continue
		}
		s.move(e, now)
		e.Rect.ClampHorizontal(config.ScreenWidth)

		if s.canShoot(e, now, snap) && e.Gun.Ready(now) {
			s.shoot(e, snap)
			e.Gun.Fire(now, shootJitter(s.rng, e.Gun.Delay))
			playSound(s.eventDispatcher, sound.EnemyShoot)
		}

		if e.Rect.Top() > config.ScreenHeight {
			e.Kill()
		}
	}
}

func (s *EnemySystem) move(e *component.Enemy, now int64) {
	switch e.Type {
	case defs.EnemyCloakedAmbusher:
		e.Rect.Y += e.Speed
		if c, ok := e.Cloak(); ok && now >= c.NextToggle {
			c.Visible = !c.Visible
			c.NextToggle = now + int64(s.rng.IntRange(defs.CloakMinToggle, defs.CloakMaxToggle))
			if c.Visible {
				c.BurstLeft = defs.AmbushBurstShots
				c.NextBurst = now
				e.Alpha = 255
			} else {
				c.BurstLeft = 0
				e.Alpha = defs.CloakedAlpha
			}
		}
	case defs.EnemySplitterDrone:
		e.Rect.Y += e.Speed
		e.Rect.X += e.SpeedX
		if e.Rect.Left() <= 0 || e.Rect.Right() >= config.ScreenWidth {
			e.SpeedX = -e.SpeedX
		}
	case defs.EnemyShieldBearer:
		e.Rect.Y += e.Speed
		if sh, ok := e.Shield(); ok {
			sh.Regen()
		}
	case defs.EnemyEnergySapper:
		s.moveSapper(e, now)
	case defs.EnemyBladeSpinner:
		if sp, ok := e.Spinner(); ok {
			sp.CenterY += sp.Drift
			sp.Angle += sp.AngularSpeed
			e.Rect.SetCenter(sp.CenterX+math.Cos(sp.Angle)*sp.Radius, sp.CenterY+math.Sin(sp.Angle)*sp.Radius)
		}
	default:
		e.Rect.Y += e.Speed
	}
}

// moveSapper: спуск до линии зависания, затем патруль вдоль неё.
// Луч включается по таймеру только после выхода на линию.
func (s *EnemySystem) moveSapper(e *component.Enemy, now int64) {
	sp, ok := e.Sapper()
	if !ok {
		return
	}
	if !sp.Hovering {
		e.Rect.Y += e.Speed
		if e.Rect.Top() >= defs.SapperHoverY {
			e.Rect.Y = defs.SapperHoverY
			sp.Hovering = true
			sp.NextSwitch = now + defs.SapperBeamDelay
			e.SpeedX = e.Speed
			if s.rng.Chance(0.5) {
				e.SpeedX = -e.Speed
			}
		}
		return
	}
	e.Rect.X += e.SpeedX
	if e.Rect.Left() <= 0 || e.Rect.Right() >= config.ScreenWidth {
		e.SpeedX = -e.SpeedX
	}
	if now >= sp.NextSwitch {
		sp.BeamActive = !sp.BeamActive
		if sp.BeamActive {
			sp.NextSwitch = now + defs.SapperBeamDuration
		} else {
			sp.NextSwitch = now + defs.SapperBeamDelay
		}
	}
}

// canShoot решает, стреляет ли враг обычным темпом. Невидимый ambusher молчит,
// а сразу после проявления даёт серию прицельных выстрелов.
func (s *EnemySystem) canShoot(e *component.Enemy, now int64, snap Snapshot) bool {
	if e.Gun.Delay <= 0 {
		return false
	}
	c, ok := e.Cloak()
	if !ok {
		return true
	}
	if !c.Visible {
		return false
	}
	if c.BurstLeft > 0 {
		if now >= c.NextBurst {
			x, y := snap.AimAt(e.Rect.CenterX(), e.Rect.Bottom())
			s.spawner.AimedEnemyBullet(e.Rect.CenterX(), e.Rect.Bottom(), x, y, e.ID)
			c.BurstLeft--
			c.NextBurst = now + defs.AmbushBurstDelay
			if c.BurstLeft == 0 {
				e.Gun.Fire(now, shootJitter(s.rng, e.Gun.Delay))
			}
		}
		return false
	}
	return true
}

func (s *EnemySystem) shoot(e *component.Enemy, snap Snapshot) {
	cx, bottom := e.Rect.CenterX(), e.Rect.Bottom()
	switch e.Type {
	case defs.EnemyElite:
		for _, a := range defs.EliteSpreadAngles {
			s.spawner.EnemySpreadBullet(cx, bottom, a, 8, config.EnemySpreadDamage, e.ID)
		}
	case defs.EnemyCloakedAmbusher:
		x, y := snap.AimAt(cx, bottom)
		s.spawner.AimedEnemyBullet(cx, bottom, x, y, e.ID)
	case defs.EnemyShieldBearer:
		for _, a := range defs.ShieldSpreadAngles {
			s.spawner.EnemySpreadBullet(cx, bottom, a, 8, config.EnemySpreadDamage, e.ID)
		}
	case defs.EnemyBladeSpinner:
		for i := 0; i < defs.SpinnerSpiralShots; i++ {
			start := 2 * math.Pi * float64(i) / defs.SpinnerSpiralShots
			s.spawner.SpiralBullet(e.Rect.CenterX(), e.Rect.CenterY(), start, e.ID)
		}
	default:
		s.spawner.EnemyBullet(cx, bottom, 0, config.EnemyBulletSpeed, e.ID)
	}
}
