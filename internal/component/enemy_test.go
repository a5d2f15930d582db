package component

import (
	"go-space-fighter/internal/defs"
	"testing"

	"pgregory.net/rapid"
)

func newShieldBearer(hull int, shield float64) *Enemy {
	return &Enemy{
		Type:    defs.EnemyShieldBearer,
		Health:  hull,
		Payload: &ShieldPayload{Health: shield, Max: shield, Enabled: true},
	}
}

func TestShieldBearerTwoPools(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hull := rapid.IntRange(1, 200).Draw(t, "hull")
		shield := float64(rapid.IntRange(1, 200).Draw(t, "shield"))
		e := newShieldBearer(hull, shield)
		sh, _ := e.Shield()

		for sh.Health > 0 {
			d := rapid.IntRange(1, 30).Draw(t, "shieldHit")
			if r := e.Hit(d, 0); r != HitAbsorbed {
				t.Fatalf("hit with shield up returned %v", r)
			}
			if e.Health != hull {
				t.Fatalf("hull changed while shield was up: %d -> %d", hull, e.Health)
			}
		}
		if sh.Enabled {
			t.Fatalf("empty shield must disable itself")
		}
		r := e.Hit(1, 0)
		if e.Health != hull-1 {
			t.Fatalf("hull must take damage once shield is down, got %d", e.Health)
		}
		if hull == 1 && r != HitLethal {
			t.Fatalf("expected lethal, got %v", r)
		}
	})
}

func TestShieldReenablesAboveThreshold(t *testing.T) {
	sh := &ShieldPayload{Health: 0, Max: 60, Enabled: false}
	for i := 0; i < 170; i++ {
		sh.Regen()
	}
	if sh.Enabled {
		t.Errorf("shield at %.1f must still be off", sh.Health)
	}
	for i := 0; i < 20; i++ {
		sh.Regen()
	}
	if !sh.Enabled {
		t.Errorf("shield at %.1f must be back on", sh.Health)
	}
}

func TestDeadEnemyIgnoresHits(t *testing.T) {
	e := &Enemy{Type: defs.EnemyBasic, Health: 10}
	if r := e.Hit(10, 0); r != HitLethal {
		t.Fatalf("Expected lethal, got %v", r)
	}
	if !e.Kill() {
		t.Fatal("first Kill must report true")
	}
	if e.Kill() {
		t.Error("second Kill must report false")
	}
	if r := e.Hit(10, 0); r != HitIgnored {
		t.Errorf("hit on dead enemy must be ignored, got %v", r)
	}
}

func TestPayloadAccessors(t *testing.T) {
	e := &Enemy{Type: defs.EnemySplitterDrone, Payload: &SplitPayload{IsSplit: true}}
	if sp, ok := e.Split(); !ok || !sp.IsSplit {
		t.Error("Split accessor failed")
	}
	if _, ok := e.Shield(); ok {
		t.Error("splitter must not expose a shield payload")
	}
	if e.Payload.enemyType() != defs.EnemySplitterDrone {
		t.Error("payload tag mismatch")
	}
}

func TestGoliathDamageRouting(t *testing.T) {
	g := &BarrierGoliath{Health: 100, MaxHealth: 100, HasShield: true, Shield: 30, MaxShield: 30}
	for i := 0; i < 3; i++ {
		g.Barriers = append(g.Barriers, &Barrier{Health: 20, Slot: i})
	}
	// барьеры принимают урон первыми
	for i := 0; i < 3; i++ {
		if r := g.Hit(20, 0); r != HitAbsorbed {
			t.Fatalf("barrier stage returned %v", r)
		}
	}
	if len(g.AliveBarriers()) != 0 {
		t.Fatalf("all barriers must be gone, %d left", len(g.AliveBarriers()))
	}
	if g.Shield != 30 || g.Health != 100 {
		t.Fatalf("shield/hull touched while barriers were up: %f/%d", g.Shield, g.Health)
	}
	if r := g.Hit(50, 0); r != HitAbsorbed || g.HasShield {
		t.Fatalf("shield stage failed: %v, shield=%v", r, g.HasShield)
	}
	if g.Health != 100 {
		t.Fatalf("overflow from shield must not reach the hull, got %d", g.Health)
	}
	if r := g.Hit(60, 0); r != HitDamaged || g.Health != 40 {
		t.Fatalf("hull stage: %v, health %d", r, g.Health)
	}
	if r := g.Hit(40, 0); r != HitLethal {
		t.Fatalf("Expected lethal, got %v", r)
	}
}
