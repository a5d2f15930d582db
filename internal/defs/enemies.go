// internal/defs/enemies.go
package defs

import "image/color"

// Visuals - параметры отрисовки, которые ядру нужны только чтобы передать их рендереру.
type Visuals struct {
	Color color.RGBA `yaml:"color"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type       EnemyType
	Width      float64
	Height     float64
	Health     int
	MinSpeed   float64
	MaxSpeed   float64
	ShootDelay int64 // мс, 0 - не стреляет снарядами
	ScoreValue int
	Visuals    Visuals
}

// Параметры вариантов, которые не ложатся в общую таблицу.
const (
	CloakMinToggle   = 2000
	CloakMaxToggle   = 4000
	CloakedAlpha     = 30
	AmbushBurstShots = 3
	AmbushBurstDelay = 150

	SplitSize          = 30
	SplitSpeedFactor   = 1.5
	SplitSpawnOffsetX  = 20.0
	ShieldBearerShield = 60.0
	ShieldRegen        = 0.1
	ShieldReenableFrac = 0.3

	SapperHoverY       = 150.0
	SapperBeamDelay    = 3000
	SapperBeamDuration = 1500
	SapperEnergyDrain  = 0.8
	SapperDelayPenalty = 1

	SpinnerOrbitRadius  = 60.0
	SpinnerAngularSpeed = 0.05
	SpinnerDrift        = 1.0
	SpinnerSpiralShots  = 4
	SpinnerSpiralSpeed  = 3.0
)

// EnemyLibrary is the library of all enemy definitions, mapped by their type.
var EnemyLibrary = map[EnemyType]EnemyDefinition{
	EnemyBasic: {
		Type: EnemyBasic, Width: 40, Height: 40, Health: 10,
		MinSpeed: 2, MaxSpeed: 4, ShootDelay: 2000, ScoreValue: 10,
		Visuals: Visuals{Color: color.RGBA{255, 0, 0, 255}},
	},
	EnemyElite: {
		Type: EnemyElite, Width: 60, Height: 60, Health: 50,
		MinSpeed: 2, MaxSpeed: 4, ShootDelay: 1000, ScoreValue: 30,
		Visuals: Visuals{Color: color.RGBA{128, 0, 128, 255}},
	},
	EnemyCloakedAmbusher: {
		Type: EnemyCloakedAmbusher, Width: 45, Height: 45, Health: 30,
		MinSpeed: 3, MaxSpeed: 3, ShootDelay: 1500, ScoreValue: 40,
		Visuals: Visuals{Color: color.RGBA{90, 90, 110, 255}},
	},
	EnemySplitterDrone: {
		Type: EnemySplitterDrone, Width: 50, Height: 50, Health: 40,
		MinSpeed: 2, MaxSpeed: 2, ShootDelay: 1800, ScoreValue: 25,
		Visuals: Visuals{Color: color.RGBA{255, 140, 0, 255}},
	},
	EnemyShieldBearer: {
		Type: EnemyShieldBearer, Width: 55, Height: 55, Health: 40,
		MinSpeed: 1.5, MaxSpeed: 1.5, ShootDelay: 2200, ScoreValue: 50,
		Visuals: Visuals{Color: color.RGBA{0, 150, 200, 255}},
	},
	EnemyEnergySapper: {
		Type: EnemyEnergySapper, Width: 50, Height: 50, Health: 35,
		MinSpeed: 1.5, MaxSpeed: 1.5, ShootDelay: 0, ScoreValue: 45,
		Visuals: Visuals{Color: color.RGBA{0, 200, 100, 255}},
	},
	EnemyBladeSpinner: {
		Type: EnemyBladeSpinner, Width: 50, Height: 50, Health: 45,
		MinSpeed: 1, MaxSpeed: 1, ShootDelay: 2000, ScoreValue: 60,
		Visuals: Visuals{Color: color.RGBA{200, 200, 200, 255}},
	},
}
