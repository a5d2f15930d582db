package system

import (
	"math"
	"testing"

	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
)

func TestEnemyPastBottomSelfDestructs(t *testing.T) {
	w := newWorld(1)
	es := NewEnemySystem(w.ecs, w.spawner, w.rng, w.dispatcher)
	e := w.spawner.Enemy(defs.EnemyBasic, 100, config.ScreenHeight-1, 0)
	w.ecs.Flush()
	e.Speed = 2

	es.Update(0, Snapshot{})

	if e.Alive() {
		t.Fatal("enemy below the bottom edge must self-destruct")
	}
	if w.ecs.GameState.Score != 0 || w.ecs.GameState.Combo != 1 {
		t.Errorf("self-destruct must not score, got score=%d combo=%d", w.ecs.GameState.Score, w.ecs.GameState.Combo)
	}
}

func TestSapperHoversThenCyclesBeam(t *testing.T) {
	w := newWorld(1)
	es := NewEnemySystem(w.ecs, w.spawner, w.rng, w.dispatcher)
	e := w.spawner.Enemy(defs.EnemyEnergySapper, 100, 140, 0)
	w.ecs.Flush()
	e.Speed = 5
	sp, _ := e.Sapper()

	es.Update(0, Snapshot{})
	if sp.Hovering {
		t.Fatal("sapper must not hover above the hover line")
	}
	es.Update(10, Snapshot{})
	if !sp.Hovering || e.Rect.Y != defs.SapperHoverY {
		t.Fatalf("Expected hovering at y=%v, got hovering=%v y=%v", defs.SapperHoverY, sp.Hovering, e.Rect.Y)
	}

	es.Update(10+defs.SapperBeamDelay-1, Snapshot{})
	if sp.BeamActive {
		t.Error("beam switched on before the delay")
	}
	es.Update(10+defs.SapperBeamDelay, Snapshot{})
	if !sp.BeamActive {
		t.Fatal("beam must switch on after the delay")
	}
	es.Update(10+defs.SapperBeamDelay+defs.SapperBeamDuration, Snapshot{})
	if sp.BeamActive {
		t.Error("beam must switch off after its duration")
	}
	if e.Rect.Y != defs.SapperHoverY {
		t.Errorf("patrolling sapper must keep its line, got y=%v", e.Rect.Y)
	}
	w.ecs.Flush()
	if len(w.ecs.EnemyBullets) != 0 {
		t.Errorf("sapper must not shoot projectiles, got %d", len(w.ecs.EnemyBullets))
	}
}

func TestCloakedAmbusherBurstsWhenRevealed(t *testing.T) {
	w := newWorld(1)
	es := NewEnemySystem(w.ecs, w.spawner, w.rng, w.dispatcher)
	e := w.spawner.Enemy(defs.EnemyCloakedAmbusher, 100, 100, 0)
	w.ecs.Flush()
	c, _ := e.Cloak()

	c.NextToggle = 100
	es.Update(100, Snapshot{})
	if c.Visible || e.Alpha != defs.CloakedAlpha {
		t.Fatalf("Expected cloaked with alpha %d, got visible=%v alpha=%d", defs.CloakedAlpha, c.Visible, e.Alpha)
	}
	w.ecs.Flush()
	if len(w.ecs.EnemyBullets) != 0 {
		t.Error("cloaked ambusher must hold fire")
	}

	c.NextToggle = 200
	es.Update(200, Snapshot{})
	if !c.Visible || e.Alpha != 255 {
		t.Fatal("ambusher must reappear at full alpha")
	}
	w.ecs.Flush()
	if len(w.ecs.EnemyBullets) != 1 || c.BurstLeft != defs.AmbushBurstShots-1 {
		t.Errorf("Expected first burst shot, got %d bullets and %d left", len(w.ecs.EnemyBullets), c.BurstLeft)
	}
}

func TestSpinnerStaysOnOrbit(t *testing.T) {
	w := newWorld(1)
	es := NewEnemySystem(w.ecs, w.spawner, w.rng, w.dispatcher)
	e := w.spawner.Enemy(defs.EnemyBladeSpinner, 300, 100, 0)
	w.ecs.Flush()
	sp, _ := e.Spinner()

	for now := int64(0); now < 500; now += 16 {
		es.Update(now, Snapshot{})
		d := math.Hypot(e.Rect.CenterX()-sp.CenterX, e.Rect.CenterY()-sp.CenterY)
		if math.Abs(d-sp.Radius) > 1e-6 {
			t.Fatalf("spinner left its orbit: distance %v, radius %v", d, sp.Radius)
		}
	}
}
