// internal/system/boss.go
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

// BossSystem ведёт боссов секторов и мини-боссов: смену паттернов,
// движение в границах и залпы.
type BossSystem struct {
	ecs             *entity.ECS
	spawner         *Spawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewBossSystem(ecs *entity.ECS, spawner *Spawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *BossSystem {
	return &BossSystem{ecs: ecs, spawner: spawner, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *BossSystem) Update(now int64, snap Snapshot) {
	for _, id := range entity.SortedIDs(s.ecs.Bosses) {
		if b := s.ecs.Bosses[id]; b.Alive() {
			s.updateBoss(b, now, snap)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Goliaths) {
		if g := s.ecs.Goliaths[id]; g.Alive() {
			s.updateGoliath(g, now)
		}
	}
}

func (s *BossSystem) updateBoss(b *component.Boss, now int64, snap Snapshot) {
	if now-b.PatternSince > config.BossPatternDuration {
		b.Pattern = (b.Pattern + 1) % 3
		b.PatternSince = now
		b.EightSet = false
	}
	prevX, prevY := b.Rect.X, b.Rect.Y

	switch b.Pattern {
	case 0:
		b.Rect.X += b.SpeedX
		if b.Rect.Right() > config.ScreenWidth {
			b.SpeedX = -math.Abs(b.SpeedX)
		} else if b.Rect.Left() < 0 {
			b.SpeedX = math.Abs(b.SpeedX)
		}
	case 1:
		s.figureEight(b, now)
	default:
		if snap.PlayerAlive {
			step := b.Speed * 1.5
			if snap.PlayerX > b.Rect.CenterX() {
				b.Rect.X += step
			} else if snap.PlayerX < b.Rect.CenterX() {
				b.Rect.X -= step
			}
		}
		b.Rect.Y += math.Sin(float64(now)/500) * 2
	}

	b.Rect.ClampHorizontal(config.ScreenWidth)
	if b.Rect.Top() < 10 {
		b.Rect.Y = 10
	}
	if b.Rect.Bottom() > config.ScreenHeight/2 {
		b.Rect.Y = config.ScreenHeight/2 - b.Rect.H
	}
	b.MomentumX = b.Rect.X - prevX
	b.MomentumY = b.Rect.Y - prevY

	if b.Gun.Ready(now) {
		s.bossVolley(b, now, snap)
		b.Gun.Fire(now, 0)
		playSound(s.eventDispatcher, sound.EnemyShoot)
	}
}

// figureEight ведёт босса по восьмёрке вокруг якоря. Якорь плавно сползает
// туда, где восьмёрка целиком помещается в верхней трети экрана.
func (s *BossSystem) figureEight(b *component.Boss, now int64) {
	if !b.EightSet {
		b.EightX, b.EightY = b.Rect.CenterX(), b.Rect.CenterY()
		b.EightSince = now
		b.EightSet = true
	}
	halfW, halfH := b.Rect.W/2, b.Rect.H/2
	tx := bandClamp(b.EightX, halfW+defs.BossEightAmpX, config.ScreenWidth-halfW-defs.BossEightAmpX)
	ty := bandClamp(b.EightY, 50+halfH+defs.BossEightAmpY, config.ScreenHeight/3-halfH-defs.BossEightAmpY)
	b.EightX += (tx - b.EightX) * defs.BossEightDrift
	b.EightY += (ty - b.EightY) * defs.BossEightDrift

	phase := 2 * math.Pi * float64(now-b.EightSince) / defs.BossEightPeriod
	b.Rect.SetCenter(
		b.EightX+defs.BossEightAmpX*math.Sin(phase),
		b.EightY+defs.BossEightAmpY*math.Sin(2*phase),
	)
}

// bandClamp прижимает v к [lo, hi]; если полоса пуста, берёт её середину.
func bandClamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return utils.Clamp(v, lo, hi)
}

func (s *BossSystem) bossVolley(b *component.Boss, now int64, snap Snapshot) {
	cx, cy, bottom := b.Rect.CenterX(), b.Rect.CenterY(), b.Rect.Bottom()
	var shots []*component.Projectile
	switch b.Pattern {
	case 0:
		for _, a := range defs.BossSpreadAngles {
			shots = append(shots, s.spawner.EnemySpreadBullet(cx, bottom, a, 8, config.EnemySpreadDamage, b.ID))
		}
	case 1:
		for i := 0; i < defs.BossRingBullets; i++ {
			a := float64(i) * 360 / defs.BossRingBullets
			shots = append(shots, s.spawner.EnemySpreadBullet(cx, cy, a, 8, config.EnemySpreadDamage, b.ID))
		}
	default:
		tx, ty := snap.AimAt(cx, bottom)
		base := aimDegrees(cx, bottom, tx, ty)
		half := defs.BossAimedFan / 2
		for i := -half; i <= half; i++ {
			a := base + float64(i)*defs.BossAimedStep
			shots = append(shots, s.spawner.EnemySpreadBullet(cx, bottom, a, 8, config.EnemySpreadDamage, b.ID))
		}
		if s.rng.Chance(config.MinionChance) && s.ecs.LiveEnemyCount() < config.MinionEnemyLimit {
			m := s.spawner.Enemy(defs.EnemyElite, 0, 0, now)
			m.Rect.X = cx - m.Rect.W/2
			m.Rect.Y = bottom
		}
	}
	for _, p := range shots {
		inheritMomentum(p, b.MomentumX, b.MomentumY, config.BossMomentumShare)
	}
}

func (s *BossSystem) updateGoliath(g *component.BarrierGoliath, now int64) {
	if now-g.PatternSince > defs.GoliathPatternDelay {
		g.Pattern = (g.Pattern + 1) % 2
		g.PatternSince = now
	}

	g.Rect.X += g.SpeedX
	if g.Rect.Right() > config.ScreenWidth-20 || g.Rect.Left() < 20 {
		g.SpeedX = -g.SpeedX
	}
	if g.Pattern == 0 {
		if g.Rect.Top() < 50 {
			g.Rect.Y++
		}
	} else {
		g.Rect.Y += g.SpeedY
		if g.Rect.Top() < 20 {
			g.SpeedY = math.Abs(g.SpeedY)
		} else if g.Rect.Bottom() > config.ScreenHeight/2 {
			g.SpeedY = -math.Abs(g.SpeedY)
		}
	}
	g.PlaceBarriers()

	if g.HasShield && g.Shield < g.MaxShield {
		g.Shield = min(g.MaxShield, g.Shield+g.ShieldRegen)
	}

	if !g.Gun.Ready(now) {
		return
	}
	g.Gun.Fire(now, 0)
	alive := g.AliveBarriers()
	for _, b := range alive {
		for _, a := range defs.BarrierSpreadAngles {
			s.spawner.EnemySpreadBullet(b.Rect.CenterX(), b.Rect.Bottom(), a, 8, defs.BarrierDamage, g.ID)
		}
	}
	if len(alive) == 0 {
		for _, a := range defs.BossSpreadAngles {
			s.spawner.EnemySpreadBullet(g.Rect.CenterX(), g.Rect.Bottom(), a, 10, defs.GoliathDamage, g.ID)
		}
	}
	playSound(s.eventDispatcher, sound.EnemyShoot)
}
