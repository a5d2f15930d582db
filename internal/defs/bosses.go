// internal/defs/bosses.go
package defs

import (
	"image/color"
	"math"
)

// BossDefinition - статы босса сектора до применения сложности.
type BossDefinition struct {
	Sector     int
	Name       string
	Width      float64
	Height     float64
	Health     int
	ShootDelay int64
	Visuals    Visuals
}

const (
	BossSpeed          = 2.0
	BossScorePerSector = 500

	// Восьмёрка: x = ax + A·sin(ωt), y = ay + B·sin(2ωt)
	BossEightPeriod = 4000 // мс на полный цикл
	BossEightAmpX   = 150.0
	BossEightAmpY   = 40.0
	BossEightDrift  = 0.02 // доля пути якоря к допустимой зоне за тик

	EndlessHealthGrowth = 0.5
	EndlessDelayFactor  = 0.9
	EndlessMinDelay     = 200
)

// BossLibrary - боссы секторов 1..6, индекс = сектор-1.
var BossLibrary = []BossDefinition{
	{Sector: 1, Name: "Sector 1 - Edge Guardian", Width: 100, Height: 100, Health: 500, ShootDelay: 800,
		Visuals: Visuals{Color: color.RGBA{255, 0, 0, 255}}},
	{Sector: 2, Name: "Sector 2 - Asteroid Titan", Width: 120, Height: 120, Health: 800, ShootDelay: 700,
		Visuals: Visuals{Color: color.RGBA{150, 75, 0, 255}}},
	{Sector: 3, Name: "Sector 3 - Rhovax Dreadnought", Width: 150, Height: 100, Health: 1200, ShootDelay: 600,
		Visuals: Visuals{Color: color.RGBA{150, 0, 150, 255}}},
	{Sector: 4, Name: "Sector 4 - Shipyard Sentinel", Width: 160, Height: 160, Health: 2000, ShootDelay: 500,
		Visuals: Visuals{Color: color.RGBA{0, 100, 200, 255}}},
	{Sector: 5, Name: "Sector 5 - Storm Lord", Width: 180, Height: 150, Health: 3000, ShootDelay: 400,
		Visuals: Visuals{Color: color.RGBA{50, 50, 200, 255}}},
	{Sector: 6, Name: "Sector 6 - Dominion Mothership", Width: 200, Height: 200, Health: 5000, ShootDelay: 300,
		Visuals: Visuals{Color: color.RGBA{200, 0, 0, 255}}},
}

// BossForSector возвращает определение босса. Для сектора > 6 (бесконечный режим)
// тема берётся из themeIndex, а здоровье и темп стрельбы растут с каждым сектором.
func BossForSector(sector, themeIndex int) BossDefinition {
	if sector >= 1 && sector <= len(BossLibrary) {
		return BossLibrary[sector-1]
	}
	if sector < 1 {
		return BossLibrary[0]
	}
	def := BossLibrary[themeIndex%len(BossLibrary)]
	extra := float64(sector - len(BossLibrary))
	def.Sector = sector
	def.Name = "Endless " + def.Name
	def.Health = int(math.Round(float64(def.Health) * (1 + EndlessHealthGrowth*extra)))
	delay := int64(math.Round(float64(def.ShootDelay) * math.Pow(EndlessDelayFactor, extra)))
	if delay < EndlessMinDelay {
		delay = EndlessMinDelay
	}
	def.ShootDelay = delay
	return def
}

// Мини-босс Barrier Goliath, значения до множителя сложности.
const (
	GoliathWidth        = 120
	GoliathHeight       = 100
	GoliathHealth       = 350
	GoliathShield       = 150
	GoliathShieldRegen  = 0.2
	GoliathSpeed        = 1.0
	GoliathShootDelay   = 1500
	GoliathScore        = 1000
	GoliathPatternDelay = 5000

	BarrierSize   = 30
	BarrierHealth = 80
	BarrierOffset = 70.0
	BarrierDamage = 15
	GoliathDamage = 20
)

var (
	GoliathVisuals = Visuals{Color: color.RGBA{0, 0, 128, 255}}
	BarrierVisuals = Visuals{Color: color.RGBA{173, 216, 230, 255}}
)
