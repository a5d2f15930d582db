package app

import (
	"testing"

	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"

	"pgregory.net/rapid"
)

func TestPurchaseRequiresResources(t *testing.T) {
	g, _ := newTestGame(t)
	if g.Purchase(defs.UpgradeHull) {
		t.Error("purchase without resources must fail")
	}
	g.State().Resources = 50
	if !g.Purchase(defs.UpgradeHull) {
		t.Fatal("Expected hull purchase to succeed")
	}
	p := g.Player()
	if p.MaxHealth != config.PlayerHealth+defs.HullHealthBonus || p.Health != p.MaxHealth {
		t.Errorf("Expected full health %d, got %d/%d", config.PlayerHealth+defs.HullHealthBonus, p.Health, p.MaxHealth)
	}
	if g.State().Resources != 0 {
		t.Errorf("Expected 0 resources left, got %d", g.State().Resources)
	}
}

func TestDroneAtCapacityIsNotCharged(t *testing.T) {
	g, _ := newTestGame(t)
	gs := g.State()
	gs.Resources = 1000
	for i := 0; i < config.BaseMaxDrones; i++ {
		if !g.Purchase(defs.UpgradeDrone) {
			t.Fatalf("drone purchase %d failed", i+1)
		}
	}
	left := gs.Resources
	if g.Purchase(defs.UpgradeDrone) {
		t.Error("drone purchase at capacity must fail")
	}
	if gs.Resources != left {
		t.Errorf("failed purchase charged %d", left-gs.Resources)
	}
}

func TestDroneBayIsCapped(t *testing.T) {
	g, _ := newTestGame(t)
	g.State().Resources = 100_000
	n := 0
	for g.Purchase(defs.UpgradeDroneBay) {
		n++
	}
	if n != config.DroneCapLimit-config.BaseMaxDrones {
		t.Errorf("Expected %d drone bay upgrades, got %d", config.DroneCapLimit-config.BaseMaxDrones, n)
	}
	if g.Player().MaxDrones != config.DroneCapLimit {
		t.Errorf("Expected max drones %d, got %d", config.DroneCapLimit, g.Player().MaxDrones)
	}
}

func TestWeaponCalibrationFloor(t *testing.T) {
	g, _ := newTestGame(t)
	g.State().Resources = 100_000
	for g.Purchase(defs.UpgradeWeapon) {
	}
	if d := g.Player().Gun.Delay; d != config.PlayerMinShootDelay {
		t.Errorf("Expected shoot delay floor %d, got %d", config.PlayerMinShootDelay, d)
	}
}

func TestOffersReflectInflation(t *testing.T) {
	g, _ := newTestGame(t)
	g.State().Resources = 1000
	g.Purchase(defs.UpgradeDrone)
	g.Purchase(defs.UpgradeDrone)
	for _, o := range g.Offers() {
		if o.Def.ID == defs.UpgradeDrone && o.Price != 120 {
			t.Errorf("Expected drone price 120 after two purchases, got %d", o.Price)
		}
	}
}

func TestPurchaseChargesExactlyTheQuotedPrice(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g, _ := newTestGame(t)
		gs := g.State()
		gs.Resources = rapid.IntRange(0, 3000).Draw(rt, "resources")
		ids := rapid.SliceOfN(rapid.SampledFrom(defs.UpgradeLibrary), 1, 30).Draw(rt, "purchases")

		for _, def := range ids {
			price := gs.Price(def)
			before := gs.Resources
			ok := g.Purchase(def.ID)
			switch {
			case ok && gs.Resources != before-price:
				rt.Fatalf("%s charged %d, quoted %d", def.ID, before-gs.Resources, price)
			case !ok && gs.Resources != before:
				rt.Fatalf("failed %s purchase changed resources %d -> %d", def.ID, before, gs.Resources)
			case gs.Resources < 0:
				rt.Fatalf("resources went negative: %d", gs.Resources)
			}
		}
	})
}
