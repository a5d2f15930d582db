// internal/system/projectile.go
package system

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/utils"
	"math"
)

// ProjectileSystem двигает снаряды и применяет правила удаления:
// вылет за экран, срок жизни, лимит отскоков.
type ProjectileSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewProjectileSystem(ecs *entity.ECS, rng *utils.PRNGService) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, rng: rng}
}

func (s *ProjectileSystem) Update() {
	for _, id := range entity.SortedIDs(s.ecs.Bullets) {
		p := s.ecs.Bullets[id]
		if !p.Alive() {
			continue
		}
		p.Age++
		if p.Lifetime > 0 && p.Age > p.Lifetime {
			p.Kill()
			continue
		}
		switch p.Kind {
		case component.KindBouncingBullet:
			s.moveBouncing(p)
		case component.KindHomingBullet:
			s.steerHoming(p)
			move(p)
			if offscreen(p.Rect) {
				p.Kill()
			}
		case component.KindSpreadBullet:
			move(p)
			if p.Rect.Bottom() < 0 || p.Rect.Right() < 0 || p.Rect.Left() > config.ScreenWidth {
				p.Kill()
			}
		default:
			move(p)
			if p.Rect.Bottom() < 0 {
				p.Kill()
			}
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.EnemyBullets) {
		p := s.ecs.EnemyBullets[id]
		if !p.Alive() {
			continue
		}
		p.Age++
		if sp := p.Spiral; sp != nil {
			sp.BaseX += p.Vel.X
			sp.BaseY += p.Vel.Y
			sp.Angle += sp.AngularSpeed
			sp.Radius += sp.Growth
			p.Rect.SetCenter(sp.BaseX+math.Cos(sp.Angle)*sp.Radius, sp.BaseY+math.Sin(sp.Angle)*sp.Radius)
		} else {
			move(p)
		}
		if offscreen(p.Rect) {
			p.Kill()
		}
	}
}

func move(p *component.Projectile) {
	p.Rect.X += p.Vel.X
	p.Rect.Y += p.Vel.Y
}

// offscreen - прямоугольник целиком вышел за любую границу экрана.
func offscreen(r component.Rect) bool {
	return r.Top() > config.ScreenHeight || r.Bottom() < 0 || r.Right() < 0 || r.Left() > config.ScreenWidth
}

// moveBouncing отражает снаряд от краёв экрана. Каждый отскок от края
// расходует лимит так же, как отскок от цели.
func (s *ProjectileSystem) moveBouncing(p *component.Projectile) {
	move(p)
	bounced := false
	if p.Rect.Left() < 0 {
		p.Rect.X = 0
		p.Vel.X = math.Abs(p.Vel.X)
		bounced = true
	} else if p.Rect.Right() > config.ScreenWidth {
		p.Rect.X = config.ScreenWidth - p.Rect.W
		p.Vel.X = -math.Abs(p.Vel.X)
		bounced = true
	}
	if p.Rect.Top() < 0 {
		p.Rect.Y = 0
		p.Vel.Y = math.Abs(p.Vel.Y)
		bounced = true
	} else if p.Rect.Bottom() > config.ScreenHeight {
		p.Rect.Y = config.ScreenHeight - p.Rect.H
		p.Vel.Y = -math.Abs(p.Vel.Y)
		bounced = true
	}
	if !bounced {
		return
	}
	p.Bounces++
	if p.Bounces >= p.MaxBounces {
		p.Kill()
		return
	}
	if s.rng.Chance(config.BouncingRetarget) {
		if t, ok := s.ecs.Nearest(p.Rect.CenterX(), p.Rect.CenterY()); ok {
			p.TargetID = t.ID
			if vx, vy := utils.Normalize(t.X-p.Rect.CenterX(), t.Y-p.Rect.CenterY(), p.Speed); vx != 0 || vy != 0 {
				p.Vel = component.Velocity{X: vx, Y: vy}
			}
		}
	}
}

// steerHoming доворачивает скорость к ближайшей живой цели.
// Без цели снаряд сохраняет курс.
func (s *ProjectileSystem) steerHoming(p *component.Projectile) {
	t, ok := s.ecs.Nearest(p.Rect.CenterX(), p.Rect.CenterY())
	if !ok {
		p.TargetID = 0
		return
	}
	p.TargetID = t.ID
	dx, dy := utils.Normalize(t.X-p.Rect.CenterX(), t.Y-p.Rect.CenterY(), p.Speed)
	if dx == 0 && dy == 0 {
		return
	}
	vx := utils.Lerp(p.Vel.X, dx, config.HomingStrength)
	vy := utils.Lerp(p.Vel.Y, dy, config.HomingStrength)
	vx, vy = utils.Normalize(vx, vy, p.Speed)
	if vx == 0 && vy == 0 {
		return
	}
	p.Vel = component.Velocity{X: vx, Y: vy}
}
