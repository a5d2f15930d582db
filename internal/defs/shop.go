// internal/defs/shop.go
package defs

// UpgradeID - идентификатор покупки в магазине между секторами.
type UpgradeID string

const (
	UpgradeHull     UpgradeID = "hull_integrity"
	UpgradeEngine   UpgradeID = "engine_efficiency"
	UpgradeShield   UpgradeID = "shield_capacity"
	UpgradeDrone    UpgradeID = "drone_support"
	UpgradeDroneBay UpgradeID = "drone_bay"
	UpgradeWeapon   UpgradeID = "weapon_calibration"
)

// UpgradeDefinition describes one shop entry.
type UpgradeDefinition struct {
	ID       UpgradeID
	Name     string
	BaseCost int
	Effect   string
}

// Величины эффектов улучшений.
const (
	HullHealthBonus    = 20
	EngineSpeedBonus   = 0.1
	ShieldEnergyBonus  = 20
	ShieldRegenBonus   = 0.2
	WeaponDelayBonus   = 20
	DroneCapacityBonus = 1
)

// UpgradeLibrary - порядок совпадает с порядком пунктов меню.
var UpgradeLibrary = []UpgradeDefinition{
	{ID: UpgradeHull, Name: "Hull Integrity", BaseCost: 50, Effect: "Increases max health by 20"},
	{ID: UpgradeEngine, Name: "Engine Efficiency", BaseCost: 50, Effect: "Increases movement speed"},
	{ID: UpgradeShield, Name: "Shield Capacity", BaseCost: 50, Effect: "Increases energy and regen"},
	{ID: UpgradeDrone, Name: "Drone Support", BaseCost: 100, Effect: "Adds a support drone"},
	{ID: UpgradeDroneBay, Name: "Drone Bay", BaseCost: 120, Effect: "Room for one more drone"},
	{ID: UpgradeWeapon, Name: "Weapon Calibration", BaseCost: 75, Effect: "Fires 20ms faster"},
}

// Upgrade ищет улучшение по идентификатору.
func Upgrade(id UpgradeID) (UpgradeDefinition, bool) {
	for _, def := range UpgradeLibrary {
		if def.ID == id {
			return def, true
		}
	}
	return UpgradeDefinition{}, false
}
