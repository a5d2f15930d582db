package system

import (
	"math"
	"testing"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"

	"pgregory.net/rapid"
)

func TestTryFireRespectsDelay(t *testing.T) {
	w := newWorld(1)
	ws := NewWeaponSystem(w.ecs, w.spawner, w.rng, w.dispatcher)
	p := component.NewPlayer(w.ecs.NewEntity(), 1000)

	if !ws.TryFire(p, 1000) {
		t.Fatal("fresh cannon must fire immediately")
	}
	if ws.TryFire(p, 1000+config.PlayerShootDelay) {
		t.Error("shot exactly at the delay boundary must be refused")
	}
	if !ws.TryFire(p, 1000+config.PlayerShootDelay+1) {
		t.Error("shot after the delay must be accepted")
	}
	w.ecs.Flush()
	if len(w.ecs.Bullets) != 2 {
		t.Errorf("Expected 2 bullets, got %d", len(w.ecs.Bullets))
	}

	p.Dying = true
	if ws.TryFire(p, 1000+10*config.PlayerShootDelay) {
		t.Error("dying player must not shoot")
	}
}

func TestVolleySizes(t *testing.T) {
	tests := []struct {
		weapon defs.WeaponType
		level  int
		want   int
	}{
		{defs.WeaponNormal, 1, 1},
		{defs.WeaponNormal, 2, 3},
		{defs.WeaponNormal, 3, 5},
		{defs.WeaponNormal, 7, 5},
		{defs.WeaponSpread, 1, len(defs.SpreadAngles[0])},
		{defs.WeaponSpread, 2, len(defs.SpreadAngles[1])},
		{defs.WeaponSpread, 3, len(defs.SpreadAngles[2])},
		{defs.WeaponBouncing, 2, 2},
		{defs.WeaponHoming, 3, 3},
		{defs.WeaponHoming, 0, 1},
	}
	for _, tt := range tests {
		w := newWorld(1)
		ws := NewWeaponSystem(w.ecs, w.spawner, w.rng, w.dispatcher)
		r := component.Rect{X: 375, Y: 800, W: config.PlayerWidth, H: config.PlayerHeight}

		n := ws.Volley(r, tt.weapon, tt.level, 1)
		w.ecs.Flush()
		if n != tt.want || len(w.ecs.Bullets) != tt.want {
			t.Errorf("%s level %d: Expected %d shots, got %d (registered %d)", tt.weapon, tt.level, tt.want, n, len(w.ecs.Bullets))
		}
		for _, b := range w.ecs.Bullets {
			if b.Kind.Hostile() {
				t.Errorf("%s produced a hostile projectile", tt.weapon)
			}
		}
	}
}

func TestSpreadBulletsAllFlyUp(t *testing.T) {
	w := newWorld(1)
	ws := NewWeaponSystem(w.ecs, w.spawner, w.rng, w.dispatcher)
	ws.Volley(component.Rect{X: 375, Y: 800, W: 50, H: 40}, defs.WeaponSpread, 3, 1)
	w.ecs.Flush()
	for _, b := range w.ecs.Bullets {
		if b.Vel.Y >= 0 {
			t.Errorf("spread bullet must move up, got vy=%v", b.Vel.Y)
		}
	}
}

func TestDroneSlots(t *testing.T) {
	for n := 1; n <= config.DroneCardinalMax; n++ {
		for i := 0; i < n; i++ {
			x, y := DroneSlot(i, n)
			if d := math.Hypot(x, y); math.Abs(d-config.DroneCardinalDist) > 1e-9 {
				t.Errorf("slot %d/%d: Expected distance %v, got %v", i, n, config.DroneCardinalDist, d)
			}
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(config.DroneCardinalMax+1, config.DroneCapLimit).Draw(t, "n")
		seen := map[[2]int]bool{}
		for i := 0; i < n; i++ {
			x, y := DroneSlot(i, n)
			if d := math.Hypot(x, y); math.Abs(d-config.DroneOrbitRadius) > 1e-9 {
				t.Fatalf("slot %d/%d off the orbit: %v", i, n, d)
			}
			key := [2]int{int(math.Round(x)), int(math.Round(y))}
			if seen[key] {
				t.Fatalf("slot %d/%d overlaps another drone", i, n)
			}
			seen[key] = true
		}
	})
}

func TestUpdateDronesFollowsPlayer(t *testing.T) {
	w := newWorld(1)
	ws := NewWeaponSystem(w.ecs, w.spawner, w.rng, w.dispatcher)
	p := component.NewPlayer(w.ecs.NewEntity(), 0)
	p.AddDrone(w.ecs.NewEntity())
	p.AddDrone(w.ecs.NewEntity())
	p.Rect.X += 100

	ws.UpdateDrones(p)

	d := p.Drones[0]
	if d.Rect.CenterX() != p.Rect.CenterX()-config.DroneCardinalDist || d.Rect.CenterY() != p.Rect.CenterY() {
		t.Errorf("first drone must sit left of the player, got (%v, %v)", d.Rect.CenterX(), d.Rect.CenterY())
	}
	if p.Drones[1].Rect.CenterX() != p.Rect.CenterX()+config.DroneCardinalDist {
		t.Error("second drone must sit right of the player")
	}
}
