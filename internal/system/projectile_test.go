package system

import (
	"math"
	"testing"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
)

func bouncing(w *world, x, y, vy float64) *component.Projectile {
	p := &component.Projectile{
		Body:       component.Body{Rect: component.Rect{X: x, Y: y, W: 8, H: 8}},
		Kind:       component.KindBouncingBullet,
		Vel:        component.Velocity{Y: vy},
		Speed:      config.BouncingSpeed,
		Damage:     config.BouncingDamage,
		MaxBounces: config.BouncingMaxBounce,
	}
	w.ecs.SpawnProjectile(p)
	w.ecs.Flush()
	return p
}

func TestBouncingBulletReflectsOffEdges(t *testing.T) {
	w := newWorld(1)
	ps := NewProjectileSystem(w.ecs, w.rng)
	p := bouncing(w, 100, 2, -config.BouncingSpeed)

	ps.Update()

	if !p.Alive() {
		t.Fatal("first edge bounce must not destroy the bullet")
	}
	if p.Bounces != 1 || p.Vel.Y <= 0 || p.Rect.Top() != 0 {
		t.Errorf("Expected bounce off the top edge, got bounces=%d vy=%v top=%v", p.Bounces, p.Vel.Y, p.Rect.Top())
	}
}

func TestBouncingBulletDiesAtBounceCap(t *testing.T) {
	w := newWorld(1)
	ps := NewProjectileSystem(w.ecs, w.rng)
	p := bouncing(w, 2, 400, 0)
	p.Vel.X = -config.BouncingSpeed
	p.Bounces = config.BouncingMaxBounce - 1

	ps.Update()

	if p.Alive() {
		t.Error("edge bounce reaching the cap must destroy the bullet")
	}
}

func TestHomingBulletExpires(t *testing.T) {
	w := newWorld(1)
	ps := NewProjectileSystem(w.ecs, w.rng)
	p := w.spawner.HomingBullet(400, 500, 0, 1)
	w.ecs.Flush()
	p.Vel = component.Velocity{}

	for i := 0; i < config.HomingLifetime; i++ {
		ps.Update()
	}
	if !p.Alive() {
		t.Fatalf("homing bullet died early at age %d", p.Age)
	}
	ps.Update()
	if p.Alive() {
		t.Errorf("homing bullet must expire after %d ticks", config.HomingLifetime)
	}
}

func TestHomingBulletSteersToTarget(t *testing.T) {
	w := newWorld(1)
	ps := NewProjectileSystem(w.ecs, w.rng)
	e := w.spawner.Enemy(defs.EnemyBasic, 600, 300, 0)
	p := w.spawner.HomingBullet(200, 600, 0, 1)
	w.ecs.Flush()

	for i := 0; i < 10; i++ {
		ps.Update()
	}
	if p.TargetID != e.ID {
		t.Errorf("Expected target %d, got %d", e.ID, p.TargetID)
	}
	if p.Vel.X <= 0 {
		t.Errorf("bullet must turn right towards the enemy, got vx=%v", p.Vel.X)
	}
	if s := math.Hypot(p.Vel.X, p.Vel.Y); math.Abs(s-config.HomingSpeed) > 1e-9 {
		t.Errorf("steering must keep speed %v, got %v", config.HomingSpeed, s)
	}
}

func TestStraightBulletsLeaveScreen(t *testing.T) {
	w := newWorld(1)
	ps := NewProjectileSystem(w.ecs, w.rng)
	up := w.spawner.Bullet(400, 10, 1)
	down := w.spawner.EnemyBullet(400, config.ScreenHeight-1, 0, config.EnemyBulletSpeed, 2)
	w.ecs.Flush()

	ps.Update()

	if up.Alive() {
		t.Error("player bullet above the screen must be destroyed")
	}
	if down.Alive() {
		t.Error("enemy bullet below the screen must be destroyed")
	}
}

func TestSpiralBulletOrbitsDriftingBase(t *testing.T) {
	w := newWorld(1)
	ps := NewProjectileSystem(w.ecs, w.rng)
	p := w.spawner.SpiralBullet(400, 100, 0, 1)
	w.ecs.Flush()

	const ticks = 30
	for i := 0; i < ticks; i++ {
		ps.Update()
	}
	sp := p.Spiral
	if math.Abs(sp.BaseY-(100+ticks*defs.SpinnerSpiralSpeed)) > 1e-9 {
		t.Errorf("base must drift down at %v per tick, got %v", defs.SpinnerSpiralSpeed, sp.BaseY)
	}
	if math.Abs(sp.Radius-ticks*config.SpiralRadiusGrowth) > 1e-9 {
		t.Errorf("radius must grow by %v per tick, got %v", config.SpiralRadiusGrowth, sp.Radius)
	}
	d := math.Hypot(p.Rect.CenterX()-sp.BaseX, p.Rect.CenterY()-sp.BaseY)
	if math.Abs(d-sp.Radius) > 1e-6 {
		t.Errorf("bullet must sit on its orbit: distance %v, radius %v", d, sp.Radius)
	}
}
