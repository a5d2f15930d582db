// internal/app/shop.go
package app

import (
	"log"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/sound"
)

// Offer - пункт магазина с текущей ценой.
type Offer struct {
	Def        defs.UpgradeDefinition
	Price      int
	Affordable bool
}

// Offers возвращает пункты магазина в порядке меню.
func (g *Game) Offers() []Offer {
	gs := g.ECS.GameState
	out := make([]Offer, 0, len(defs.UpgradeLibrary))
	for _, def := range defs.UpgradeLibrary {
		price := gs.Price(def)
		out = append(out, Offer{Def: def, Price: price, Affordable: gs.Resources >= price})
	}
	return out
}

// Purchase покупает улучшение. Ресурсы списываются, только если эффект применился.
func (g *Game) Purchase(id defs.UpgradeID) bool {
	gs := g.ECS.GameState
	p := g.ECS.Player
	if p == nil {
		return false
	}
	def, ok := defs.Upgrade(id)
	if !ok {
		return false
	}
	price := gs.Price(def)
	if gs.Resources < price {
		return false
	}
	if !g.applyUpgrade(p, id) {
		return false
	}
	gs.RecordPurchase(def, price)
	g.EventDispatcher.Dispatch(event.Event{Type: event.SoundRequested, Data: sound.Purchase})
	log.Printf("Purchased %s for %d, %d resources left", def.Name, price, gs.Resources)
	return true
}

func (g *Game) applyUpgrade(p *component.Player, id defs.UpgradeID) bool {
	switch id {
	case defs.UpgradeHull:
		p.MaxHealth += defs.HullHealthBonus
		p.Health = p.MaxHealth
	case defs.UpgradeEngine:
		p.SpeedFactor += defs.EngineSpeedBonus
	case defs.UpgradeShield:
		p.MaxEnergy += defs.ShieldEnergyBonus
		p.EnergyRegen += defs.ShieldRegenBonus
		p.Energy = p.MaxEnergy
	case defs.UpgradeDrone:
		return p.AddDrone(g.ECS.NewEntity())
	case defs.UpgradeDroneBay:
		if p.MaxDrones >= config.DroneCapLimit {
			return false
		}
		p.MaxDrones += defs.DroneCapacityBonus
	case defs.UpgradeWeapon:
		if p.Gun.Delay <= config.PlayerMinShootDelay {
			return false
		}
		p.Gun.Delay = max(config.PlayerMinShootDelay, p.Gun.Delay-defs.WeaponDelayBonus)
	default:
		return false
	}
	return true
}

// LeaveShop возвращает забег в бой.
func (g *Game) LeaveShop() {
	gs := g.ECS.GameState
	if gs.Phase == component.PhaseShop {
		gs.Phase = component.PhasePlaying
	}
}
