// internal/system/spawn.go
package system

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/types"
	"go-space-fighter/internal/utils"
	"image/color"
	"log"
	"math"
)

// Spawner собирает сущности из определений с учётом сложности и ставит их
// в очередь реестра. Общий для всех систем.
type Spawner struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewSpawner(ecs *entity.ECS, rng *utils.PRNGService) *Spawner {
	return &Spawner{ecs: ecs, rng: rng}
}

var (
	bulletColor       = color.RGBA{255, 255, 0, 255}
	spreadColor       = color.RGBA{0, 255, 0, 255}
	bouncingColor     = color.RGBA{0, 255, 255, 255}
	homingColor       = color.RGBA{255, 128, 0, 255}
	enemyBulletColor  = color.RGBA{255, 0, 0, 255}
	enemySpreadColor  = color.RGBA{128, 0, 128, 255}
	portalColor       = color.RGBA{255, 215, 0, 255}
	supplyPortalColor = color.RGBA{0, 255, 200, 255}
	droneColor        = color.RGBA{0, 0, 255, 255}
	playerColor       = color.RGBA{0, 0, 255, 255}
)

var powerUpColors = map[defs.PowerUpType]color.RGBA{
	defs.PowerUpHealth: {0, 255, 0, 255},
	defs.PowerUpShield: {0, 0, 255, 255},
	defs.PowerUpWeapon: {255, 255, 0, 255},
	defs.PowerUpDrone:  {128, 0, 128, 255},
}

// Enemy создаёт врага типа t с левым верхним углом в (x, y).
func (s *Spawner) Enemy(t defs.EnemyType, x, y float64, now int64) *component.Enemy {
	def, ok := defs.EnemyLibrary[t]
	if !ok {
		log.Printf("Error: Enemy definition not found for type: %s", t)
		def = defs.EnemyLibrary[defs.EnemyBasic]
	}
	profile := s.ecs.GameState.Profile()

	health := max(1, int(math.Round(float64(def.Health)*profile.HealthMultiplier)))
	delay := int64(math.Round(float64(def.ShootDelay) * profile.ShootDelayMultiplier))
	e := &component.Enemy{
		Body:       component.Body{Rect: component.Rect{X: x, Y: y, W: def.Width, H: def.Height}},
		Renderable: component.Renderable{Sprite: string(t), Color: def.Visuals.Color, Alpha: 255},
		Type:       t,
		Health:     health,
		MaxHealth:  health,
		Speed:      s.rng.Range(def.MinSpeed, def.MaxSpeed) * profile.SpeedMultiplier,
		Gun:        component.Cannon{Delay: delay, Last: now},
		ScoreValue: def.ScoreValue,
	}

	switch t {
	case defs.EnemyCloakedAmbusher:
		e.Payload = &component.CloakPayload{
			Visible:    true,
			NextToggle: now + int64(s.rng.IntRange(defs.CloakMinToggle, defs.CloakMaxToggle)),
		}
	case defs.EnemySplitterDrone:
		e.Payload = &component.SplitPayload{}
	case defs.EnemyShieldBearer:
		e.Payload = &component.ShieldPayload{Health: defs.ShieldBearerShield, Max: defs.ShieldBearerShield, Enabled: true}
	case defs.EnemyEnergySapper:
		e.Payload = &component.SapperPayload{}
	case defs.EnemyBladeSpinner:
		e.Payload = &component.SpinnerPayload{
			CenterX:       e.Rect.CenterX(),
			CenterY:       e.Rect.CenterY(),
			Radius:        defs.SpinnerOrbitRadius,
			AngularSpeed:  defs.SpinnerAngularSpeed,
			Drift:         defs.SpinnerDrift * profile.SpeedMultiplier,
			ReflectChance: profile.ReflectChance,
		}
	}
	s.ecs.SpawnEnemy(e)
	return e
}

// EnemyAbove ставит врага в случайную точку над экраном.
func (s *Spawner) EnemyAbove(t defs.EnemyType, now int64) *component.Enemy {
	def := defs.EnemyLibrary[t]
	lo, hi := 0.0, config.ScreenWidth-def.Width
	if t == defs.EnemyBladeSpinner {
		// центр орбиты не должен уводить клинок за край
		lo, hi = defs.SpinnerOrbitRadius, config.ScreenWidth-def.Width-defs.SpinnerOrbitRadius
	}
	x := s.rng.Range(lo, hi)
	y := s.rng.Range(-150, -50)
	return s.Enemy(t, x, y, now)
}

// Splits создаёт осколки дрона-разделителя. Осколки больше не делятся.
func (s *Spawner) Splits(parent *component.Enemy, now int64) []*component.Enemy {
	n := s.ecs.GameState.Profile().SplitCount
	out := make([]*component.Enemy, 0, n)
	cx, cy := parent.Rect.CenterX(), parent.Rect.CenterY()
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * 2 * defs.SplitSpawnOffsetX
		e := s.Enemy(defs.EnemySplitterDrone, 0, 0, now)
		e.Rect = component.NewRectCentered(cx+offset, cy, defs.SplitSize, defs.SplitSize)
		e.Health = max(1, parent.MaxHealth/2)
		e.MaxHealth = e.Health
		e.Speed = parent.Speed * defs.SplitSpeedFactor
		e.SpeedX = e.Speed
		if offset < 0 {
			e.SpeedX = -e.Speed
		}
		e.Payload = &component.SplitPayload{IsSplit: true}
		out = append(out, e)
	}
	return out
}

// Boss создаёт босса сектора: по центру, верх на 50 px.
func (s *Spawner) Boss(sector int, now int64) *component.Boss {
	def := defs.BossForSector(sector, s.rng.Intn(len(defs.BossLibrary)))
	profile := s.ecs.GameState.Profile()
	health := max(1, int(math.Round(float64(def.Health)*profile.HealthMultiplier)))
	delay := int64(math.Round(float64(def.ShootDelay) * profile.ShootDelayMultiplier))

	b := &component.Boss{
		Body:         component.Body{Rect: component.Rect{X: config.ScreenWidth/2 - def.Width/2, Y: 50, W: def.Width, H: def.Height}},
		Renderable:   component.Renderable{Sprite: "boss", Color: def.Visuals.Color, Alpha: 255},
		Name:         def.Name,
		Sector:       sector,
		Health:       health,
		MaxHealth:    health,
		Gun:          component.Cannon{Delay: delay, Last: now},
		ScoreValue:   sector * defs.BossScorePerSector,
		PatternSince: now,
		Speed:        defs.BossSpeed,
		SpeedX:       defs.BossSpeed,
	}
	s.ecs.SpawnBoss(b)
	return b
}

// Goliath создаёт мини-босса над экраном в случайной колонке.
func (s *Spawner) Goliath(now int64) *component.BarrierGoliath {
	m := s.ecs.GameState.Profile().MiniBossMultiplier
	health := int(math.Round(defs.GoliathHealth * m))
	cx := s.rng.Range(defs.GoliathWidth/2, config.ScreenWidth-defs.GoliathWidth/2)

	g := &component.BarrierGoliath{
		Body: component.Body{Rect: component.Rect{
			X: cx - defs.GoliathWidth/2, Y: -defs.GoliathHeight,
			W: defs.GoliathWidth, H: defs.GoliathHeight,
		}},
		Renderable:   component.Renderable{Sprite: "goliath", Color: defs.GoliathVisuals.Color, Alpha: 255},
		Health:       health,
		MaxHealth:    health,
		HasShield:    true,
		Shield:       defs.GoliathShield * m,
		MaxShield:    defs.GoliathShield * m,
		ShieldRegen:  defs.GoliathShieldRegen * m,
		SpeedX:       defs.GoliathSpeed * m,
		SpeedY:       defs.GoliathSpeed * m,
		Gun:          component.Cannon{Delay: int64(math.Round(defs.GoliathShootDelay / m)), Last: now},
		PatternSince: now,
		ScoreValue:   defs.GoliathScore,
	}
	for i := range component.BarrierOffsets {
		g.Barriers = append(g.Barriers, &component.Barrier{
			Body:   component.Body{Rect: component.Rect{W: defs.BarrierSize, H: defs.BarrierSize}},
			Health: defs.BarrierHealth,
			Slot:   i,
		})
	}
	g.PlaceBarriers()
	s.ecs.SpawnGoliath(g)
	return g
}

// PowerUp создаёт бонус с центром в (x, y).
func (s *Spawner) PowerUp(x, y float64, t defs.PowerUpType) *component.PowerUp {
	p := &component.PowerUp{
		Body:       component.Body{Rect: component.NewRectCentered(x, y, config.PowerUpSize, config.PowerUpSize)},
		Renderable: component.Renderable{Sprite: "powerup_" + string(t), Color: powerUpColors[t], Alpha: 255},
		Type:       t,
		Speed:      config.PowerUpSpeed,
	}
	s.ecs.SpawnPowerUp(p)
	return p
}

// RandomPowerUp - бонус равновероятного типа.
func (s *Spawner) RandomPowerUp(x, y float64) *component.PowerUp {
	return s.PowerUp(x, y, defs.PowerUpTypes[s.rng.Intn(len(defs.PowerUpTypes))])
}

// Portal создаёт портал магазина, целиком в пределах экрана.
func (s *Spawner) Portal(x, y float64, advances bool, now int64) *component.ShopPortal {
	half := float64(config.PortalSize) / 2
	x = utils.Clamp(x, half, config.ScreenWidth-half)
	y = utils.Clamp(y, half, config.ScreenHeight-half)
	clr := portalColor
	if !advances {
		clr = supplyPortalColor
	}
	p := &component.ShopPortal{
		Body:       component.Body{Rect: component.NewRectCentered(x, y, config.PortalSize, config.PortalSize)},
		Renderable: component.Renderable{Sprite: "portal", Color: clr, Alpha: 255},
		Advances:   advances,
		SpawnedAt:  now,
	}
	s.ecs.SpawnPortal(p)
	return p
}

// --- Снаряды ---

// Bullet - прямой выстрел вверх; (x, bottom) - центр нижней грани.
func (s *Spawner) Bullet(x, bottom float64, owner types.EntityID) *component.Projectile {
	p := &component.Projectile{
		Body:       component.Body{Rect: component.Rect{X: x - 2.5, Y: bottom - 15, W: 5, H: 15}},
		Renderable: component.Renderable{Sprite: "bullet", Color: bulletColor, Alpha: 255},
		Kind:       component.KindBullet,
		OwnerID:    owner,
		Vel:        component.Velocity{Y: -config.BulletSpeed},
		Speed:      config.BulletSpeed,
		Damage:     config.BulletDamage,
	}
	s.ecs.SpawnProjectile(p)
	return p
}

// SpreadBullet летит под углом deg от вертикали вверх.
func (s *Spawner) SpreadBullet(x, bottom, deg float64, owner types.EntityID) *component.Projectile {
	vx, vy := utils.AngleVelocity(deg, config.BulletSpeed, -1)
	p := &component.Projectile{
		Body:       component.Body{Rect: component.Rect{X: x - 2.5, Y: bottom - 15, W: 5, H: 15}},
		Renderable: component.Renderable{Sprite: "spread_bullet", Color: spreadColor, Alpha: 255},
		Kind:       component.KindSpreadBullet,
		OwnerID:    owner,
		Vel:        component.Velocity{X: vx, Y: vy},
		Speed:      config.BulletSpeed,
		Damage:     config.BulletDamage,
	}
	s.ecs.SpawnProjectile(p)
	return p
}

// BouncingBullet нацеливается на ближайшую живую цель в момент выстрела,
// offsetDeg разводит снаряды веером.
func (s *Spawner) BouncingBullet(x, bottom, offsetDeg float64, owner types.EntityID) *component.Projectile {
	p := &component.Projectile{
		Body:       component.Body{Rect: component.Rect{X: x - 4, Y: bottom - 8, W: 8, H: 8}},
		Renderable: component.Renderable{Sprite: "bouncing_bullet", Color: bouncingColor, Alpha: 255},
		Kind:       component.KindBouncingBullet,
		OwnerID:    owner,
		Speed:      config.BouncingSpeed,
		Damage:     config.BouncingDamage,
		MaxBounces: config.BouncingMaxBounce,
	}
	vx, vy := 0.0, -config.BouncingSpeed
	if t, ok := s.ecs.Nearest(p.Rect.CenterX(), p.Rect.CenterY()); ok {
		p.TargetID = t.ID
		vx, vy = utils.Normalize(t.X-p.Rect.CenterX(), t.Y-p.Rect.CenterY(), config.BouncingSpeed)
		if vx == 0 && vy == 0 {
			vy = -config.BouncingSpeed
		}
	}
	vx, vy = utils.Rotate(vx, vy, utils.Radians(offsetDeg))
	p.Vel = component.Velocity{X: vx, Y: vy}
	s.ecs.SpawnProjectile(p)
	return p
}

// HomingBullet стартует вверх с веерным отклонением и доворачивает к цели каждый тик.
func (s *Spawner) HomingBullet(x, bottom, offsetDeg float64, owner types.EntityID) *component.Projectile {
	vx, vy := utils.AngleVelocity(offsetDeg, config.HomingSpeed, -1)
	p := &component.Projectile{
		Body:       component.Body{Rect: component.Rect{X: x - 3, Y: bottom - 6, W: 6, H: 6}},
		Renderable: component.Renderable{Sprite: "homing_bullet", Color: homingColor, Alpha: 255},
		Kind:       component.KindHomingBullet,
		OwnerID:    owner,
		Vel:        component.Velocity{X: vx, Y: vy},
		Speed:      config.HomingSpeed,
		Damage:     config.HomingDamage,
		Lifetime:   config.HomingLifetime,
	}
	if t, ok := s.ecs.Nearest(x, bottom); ok {
		p.TargetID = t.ID
	}
	s.ecs.SpawnProjectile(p)
	return p
}

// EnemyBullet - пуля врага; (x, top) - центр верхней грани.
func (s *Spawner) EnemyBullet(x, top, vx, vy float64, owner types.EntityID) *component.Projectile {
	p := &component.Projectile{
		Body:       component.Body{Rect: component.Rect{X: x - 2.5, Y: top, W: 5, H: 15}},
		Renderable: component.Renderable{Sprite: "enemy_bullet", Color: enemyBulletColor, Alpha: 255},
		Kind:       component.KindEnemyBullet,
		OwnerID:    owner,
		Vel:        component.Velocity{X: vx, Y: vy},
		Speed:      config.EnemyBulletSpeed,
		Damage:     config.EnemyBulletDamage,
	}
	s.ecs.SpawnProjectile(p)
	return p
}

// AimedEnemyBullet летит в точку (tx, ty); без цели - прямо вниз.
func (s *Spawner) AimedEnemyBullet(x, top, tx, ty float64, owner types.EntityID) *component.Projectile {
	vx, vy := utils.Normalize(tx-x, ty-top, config.EnemyBulletSpeed)
	if vx == 0 && vy == 0 {
		vy = config.EnemyBulletSpeed
	}
	return s.EnemyBullet(x, top, vx, vy, owner)
}

// EnemySpreadBullet летит под углом deg от направления вниз.
func (s *Spawner) EnemySpreadBullet(x, top, deg, size float64, damage int, owner types.EntityID) *component.Projectile {
	vx, vy := utils.AngleVelocity(deg, config.EnemySpreadSpeed, 1)
	p := &component.Projectile{
		Body:       component.Body{Rect: component.Rect{X: x - size/2, Y: top, W: size, H: size}},
		Renderable: component.Renderable{Sprite: "enemy_spread_bullet", Color: enemySpreadColor, Alpha: 255},
		Kind:       component.KindEnemySpreadBullet,
		OwnerID:    owner,
		Vel:        component.Velocity{X: vx, Y: vy},
		Speed:      config.EnemySpreadSpeed,
		Damage:     damage,
	}
	s.ecs.SpawnProjectile(p)
	return p
}

// SpiralBullet - пуля-спираль: база летит вниз, видимая точка крутится вокруг неё.
func (s *Spawner) SpiralBullet(cx, cy, startAngle float64, owner types.EntityID) *component.Projectile {
	p := s.EnemySpreadBullet(cx, cy-4, 0, 8, config.EnemySpreadDamage, owner)
	p.Vel = component.Velocity{Y: defs.SpinnerSpiralSpeed}
	p.Spiral = &component.Spiral{
		BaseX:        cx,
		BaseY:        cy,
		Angle:        startAngle,
		AngularSpeed: config.SpiralAngularSpeed,
		Growth:       config.SpiralRadiusGrowth,
	}
	return p
}
