// internal/system/combat.go
package system

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/input"
	"go-space-fighter/internal/sound"
	"go-space-fighter/internal/types"
	"go-space-fighter/internal/utils"
)

// CombatSystem разрешает столкновения за тик в фиксированном порядке:
// снаряды игрока по целям, вражеские снаряды по игроку, тараны, подбор бонусов
// и вход в портал, затем луч вампира энергии. Здоровье, очки и ресурсы
// меняются только здесь.
type CombatSystem struct {
	ecs             *entity.ECS
	spawner         *Spawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, spawner *Spawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, spawner: spawner, rng: rng, eventDispatcher: eventDispatcher}
}

// hittable - цель снаряда игрока в одном из представлений реестра.
type hittable struct {
	id   types.EntityID
	body *component.Body
	hit  func(damage int) component.HitResult
	// onKill вызывается ровно один раз, когда попадание оказалось смертельным.
	onKill func()
}

func (s *CombatSystem) Update(now int64, in input.State) {
	s.playerProjectiles(now)

	p := s.ecs.Player
	if p == nil || !p.Alive() || p.Dying {
		return
	}
	s.enemyProjectiles(p, now)
	if p.Dying {
		return
	}
	s.rams(p, now)
	if p.Dying {
		return
	}
	s.pickups(p, now, in)
	s.sapperBeams(p)
}

// targets собирает цели в порядке проверки: барьеры, враги, боссы, мини-боссы.
func (s *CombatSystem) targets(now int64) []hittable {
	var out []hittable
	for _, gid := range entity.SortedIDs(s.ecs.Goliaths) {
		for _, b := range s.ecs.Goliaths[gid].Barriers {
			out = append(out, hittable{
				id:   b.ID,
				body: &b.Body,
				hit: func(d int) component.HitResult {
					if !b.Alive() {
						return component.HitIgnored
					}
					if b.Hit(d) {
						playSound(s.eventDispatcher, sound.Explosion)
						return component.HitLethal
					}
					return component.HitDamaged
				},
				onKill: func() {},
			})
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		e := s.ecs.Enemies[id]
		out = append(out, hittable{
			id:     id,
			body:   &e.Body,
			hit:    func(d int) component.HitResult { return e.Hit(d, now) },
			onKill: func() { s.killEnemy(e, now) },
		})
	}
	for _, id := range entity.SortedIDs(s.ecs.Bosses) {
		b := s.ecs.Bosses[id]
		out = append(out, hittable{
			id:     id,
			body:   &b.Body,
			hit:    func(d int) component.HitResult { return b.Hit(d, now) },
			onKill: func() { s.killBoss(b) },
		})
	}
	for _, id := range entity.SortedIDs(s.ecs.Goliaths) {
		g := s.ecs.Goliaths[id]
		out = append(out, hittable{
			id:   id,
			body: &g.Body,
			hit: func(d int) component.HitResult {
				// попадание в корпус при живых барьерах уходит в барьер
				before := len(g.AliveBarriers())
				r := g.Hit(d, now)
				if len(g.AliveBarriers()) < before {
					playSound(s.eventDispatcher, sound.Explosion)
				}
				return r
			},
			onKill: func() { s.killGoliath(g) },
		})
	}
	return out
}

// playerProjectiles: каждый снаряд поражает не больше одной цели за тик.
// Отскакивающий снаряд добивает цель и исчезает, а при несмертельном
// попадании отражается.
func (s *CombatSystem) playerProjectiles(now int64) {
	targets := s.targets(now)
	for _, id := range entity.SortedIDs(s.ecs.Bullets) {
		p := s.ecs.Bullets[id]
		if !p.Alive() {
			continue
		}
		if p.IgnoreID != 0 && !s.overlapsTarget(p, targets, p.IgnoreID) {
			p.IgnoreID = 0
		}
		for _, t := range targets {
			if !t.body.Alive() || t.id == p.IgnoreID || !p.Rect.Intersects(t.body.Rect) {
				continue
			}
			s.resolveHit(p, t, now)
			break
		}
	}
}

func (s *CombatSystem) overlapsTarget(p *component.Projectile, targets []hittable, id types.EntityID) bool {
	for _, t := range targets {
		if t.id == id {
			return t.body.Alive() && p.Rect.Intersects(t.body.Rect)
		}
	}
	return false
}

func (s *CombatSystem) resolveHit(p *component.Projectile, t hittable, now int64) {
	if e, ok := s.ecs.Enemies[t.id]; ok && s.deflects(e, p) {
		return
	}

	result := t.hit(p.Damage)
	lethal := result == component.HitLethal
	if lethal && t.body.Kill() {
		t.onKill()
	}

	if !p.Bouncing() || lethal {
		p.Kill()
		if !lethal {
			playSound(s.eventDispatcher, sound.Hit)
		}
		return
	}
	reflect(p, t.body.Rect.CenterX(), t.body.Rect.CenterY(), config.BouncingJitterDeg, s.rng)
	p.IgnoreID = t.id
	p.Bounces++
	if p.Bounces >= p.MaxBounces {
		p.Kill()
	}
	playSound(s.eventDispatcher, sound.Hit)
}

// deflects - blade_spinner на высокой сложности может отбить попадание
// обратно в игрока вместо того, чтобы получить урон.
func (s *CombatSystem) deflects(e *component.Enemy, p *component.Projectile) bool {
	sp, ok := e.Spinner()
	if !ok || sp.ReflectChance <= 0 || !e.Alive() || !s.rng.Chance(sp.ReflectChance) {
		return false
	}
	p.Kill()
	cx, bottom := e.Rect.CenterX(), e.Rect.Bottom()
	tx, ty := cx, bottom+1
	if pl := s.ecs.Player; pl != nil && pl.Alive() && !pl.Dying {
		tx, ty = pl.Rect.CenterX(), pl.Rect.CenterY()
	}
	s.spawner.AimedEnemyBullet(cx, bottom, tx, ty, e.ID)
	playSound(s.eventDispatcher, sound.Deflect)
	return true
}

// killEnemy - награда и последствия гибели обычного врага. Вызывается только
// после успешного Kill, поэтому дважды одного врага не засчитать.
func (s *CombatSystem) killEnemy(e *component.Enemy, now int64) {
	s.ecs.RemoveProjectilesOwnedBy(e.ID)
	if sp, ok := e.Split(); ok && !sp.IsSplit {
		s.spawner.Splits(e, now)
	}
	profile := s.ecs.GameState.Profile()
	cx, cy := e.Rect.CenterX(), e.Rect.CenterY()
	if s.rng.Chance(profile.DropRate) {
		s.spawner.RandomPowerUp(cx, cy)
	}
	s.ecs.GameState.RegisterKill(e.ScoreValue, profile.ResourcesPerKill)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.Kill{
		ID: e.ID, Type: e.Type, X: cx, Y: cy, Score: e.ScoreValue,
	}})
	playSound(s.eventDispatcher, sound.Explosion)
}

func (s *CombatSystem) killBoss(b *component.Boss) {
	s.ecs.RemoveProjectilesOwnedBy(b.ID)
	cx, cy := b.Rect.CenterX(), b.Rect.CenterY()
	for i := 0; i < config.BossPowerUpBurst; i++ {
		dx := float64(s.rng.IntRange(-config.BossBurstSpread, config.BossBurstSpread))
		dy := float64(s.rng.IntRange(-config.BossBurstSpread, config.BossBurstSpread))
		s.spawner.RandomPowerUp(cx+dx, cy+dy)
	}
	s.ecs.GameState.RegisterKill(b.ScoreValue, s.ecs.GameState.Profile().BossResources)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.BossInfo{
		ID: b.ID, Name: b.Name, Sector: b.Sector, X: cx, Y: cy,
	}})
	playSound(s.eventDispatcher, sound.BossDeath)
}

func (s *CombatSystem) killGoliath(g *component.BarrierGoliath) {
	s.ecs.RemoveProjectilesOwnedBy(g.ID)
	cx, cy := g.Rect.CenterX(), g.Rect.CenterY()
	for i, t := range defs.PowerUpTypes {
		s.spawner.PowerUp(cx+(float64(i)-1.5)*30, cy, t)
	}
	s.ecs.GameState.RegisterKill(g.ScoreValue, s.ecs.GameState.Profile().ResourcesPerKill)
	s.eventDispatcher.Dispatch(event.Event{Type: event.MiniBossDefeated, Data: event.BossInfo{
		ID: g.ID, Name: "Barrier Goliath", Sector: s.ecs.GameState.Sector, X: cx, Y: cy,
	}})
	playSound(s.eventDispatcher, sound.BossDeath)
}

// hitPlayer наносит урон игроку; смертельный удар сбрасывает комбо.
func (s *CombatSystem) hitPlayer(p *component.Player, damage int, now int64) {
	before := p.Health
	if p.Hit(damage, now) {
		s.ecs.GameState.ResetCombo()
		playSound(s.eventDispatcher, sound.Explosion)
		return
	}
	if p.Health < before {
		playSound(s.eventDispatcher, sound.PlayerHit)
	}
}

func (s *CombatSystem) enemyProjectiles(p *component.Player, now int64) {
	for _, id := range entity.SortedIDs(s.ecs.EnemyBullets) {
		b := s.ecs.EnemyBullets[id]
		if !b.Alive() || !b.Rect.Intersects(p.Rect) {
			continue
		}
		b.Kill()
		s.hitPlayer(p, b.Damage, now)
		if p.Dying {
			return
		}
	}
}

// rams - столкновения корпусами. Враг получает урон тарана, боссы - нет.
func (s *CombatSystem) rams(p *component.Player, now int64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		e := s.ecs.Enemies[id]
		if !e.Alive() || !e.Rect.Intersects(p.Rect) {
			continue
		}
		s.hitPlayer(p, config.PlayerRamDamage, now)
		if e.Hit(config.EnemyRamDamage, now) == component.HitLethal && e.Kill() {
			s.killEnemy(e, now)
		}
		if p.Dying {
			return
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Bosses) {
		if b := s.ecs.Bosses[id]; b.Alive() && b.Rect.Intersects(p.Rect) {
			s.hitPlayer(p, config.BossRamDamage, now)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Goliaths) {
		if g := s.ecs.Goliaths[id]; g.Alive() && g.Rect.Intersects(p.Rect) {
			s.hitPlayer(p, config.BossRamDamage, now)
		}
	}
}

func (s *CombatSystem) pickups(p *component.Player, now int64, in input.State) {
	profile := s.ecs.GameState.Profile()
	for _, id := range entity.SortedIDs(s.ecs.PowerUps) {
		pu := s.ecs.PowerUps[id]
		if !pu.Alive() || !pu.Rect.Intersects(p.Rect) || !pu.Kill() {
			continue
		}
		switch pu.Type {
		case defs.PowerUpHealth:
			p.Heal(config.PowerUpHeal)
		case defs.PowerUpShield:
			p.Energy = p.MaxEnergy
		case defs.PowerUpWeapon:
			p.ApplyWeaponPowerUp(profile)
		case defs.PowerUpDrone:
			p.AddDrone(s.ecs.NewEntity())
		}
		p.GrantInvincibility(now, config.PickupInvincibility)
		playSound(s.eventDispatcher, sound.PowerUp)
	}

	if !in.Enter {
		return
	}
	for _, id := range entity.SortedIDs(s.ecs.Portals) {
		portal := s.ecs.Portals[id]
		if portal.Alive() && portal.Rect.Intersects(p.Rect) && portal.Kill() {
			playSound(s.eventDispatcher, sound.Portal)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PortalEntered, Data: event.Portal{
				ID: id, Advances: portal.Advances,
			}})
			return
		}
	}
}

// sapperBeams: пока луч включён и центр игрока под вампиром в пределах его ширины,
// тянет энергию, а на нуле энергии замедляет стрельбу.
func (s *CombatSystem) sapperBeams(p *component.Player) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		e := s.ecs.Enemies[id]
		sp, ok := e.Sapper()
		if !ok || !e.Alive() || !sp.BeamActive {
			continue
		}
		if cx := p.Rect.CenterX(); p.Rect.Top() < e.Rect.Bottom() || cx < e.Rect.Left() || cx >= e.Rect.Right() {
			continue
		}
		if p.Energy > 0 {
			p.Energy = max(0, p.Energy-defs.SapperEnergyDrain)
		} else {
			p.Gun.Delay = min(config.PlayerMaxShootDelay, p.Gun.Delay+defs.SapperDelayPenalty)
		}
	}
}
