// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 900
	TickRate     = 60
	MaxDeltaTime = 0.06

	// Off-screen зона, за которой любая сущность удаляется без разговоров
	OffscreenMargin = 100
)

// Игрок
const (
	PlayerWidth        = 50
	PlayerHeight       = 40
	PlayerBottomMargin = 20
	PlayerHealth       = 150
	PlayerEnergy       = 100
	PlayerEnergyRegen  = 0.5 // в тик, когда щит выключен
	PlayerShieldDrain  = 1.0 // в тик, пока щит держится
	PlayerBaseSpeed    = 8.0
	PlayerDashFactor   = 2.5

	PlayerShootDelay    = 200 // мс
	PlayerMinShootDelay = 100
	PlayerMaxShootDelay = 600 // потолок для вампира энергии

	HyperDashCooldown     = 2000
	HyperDashDuration     = 500
	InvincibilityDuration = 1000
	PickupInvincibility   = 500

	DyingDuration = 1500
	DyingBlink    = 100

	BaseMaxDrones = 2
	DroneCapLimit = 8
)

// Дроны
const (
	DroneSize         = 20
	DroneCardinalDist = 45.0
	DroneOrbitRadius  = 60.0
	DroneCardinalMax  = 4
)

// Снаряды игрока
const (
	BulletSpeed  = 15.0
	BulletDamage = 10

	BouncingSpeed     = 10.0
	BouncingDamage    = 15
	BouncingMaxBounce = 3
	BouncingJitterDeg = 30.0
	BouncingRetarget  = 0.5

	HomingSpeed    = 9.0
	HomingDamage   = 8
	HomingStrength = 0.3
	HomingLifetime = 150 // тиков
)

// Снаряды врагов
const (
	EnemyBulletSpeed   = 5.0
	EnemyBulletDamage  = 5
	EnemySpreadSpeed   = 6.0
	EnemySpreadDamage  = 15
	SpiralAngularSpeed = 0.1
	SpiralRadiusGrowth = 1.2
)

// Столкновения и награды
const (
	PlayerRamDamage   = 20 // игрок получает при таране врага
	EnemyRamDamage    = 50 // враг получает при таране
	BossRamDamage     = 30
	BossPowerUpBurst  = 5
	BossBurstSpread   = 50
	MinionChance      = 0.3
	MinionEnemyLimit  = 5
	BossMomentumShare = 0.3
)

// Прогрессия
const (
	WavesPerSector       = 5
	InitialWaveEnemies   = 5
	WaveEnemiesPerSector = 2
	FinalSector          = 6
	SectorResourceBonus  = 100
	MiniBossWave         = 3
	MiniBossFromSector   = 2
	BossPatternDuration  = 5000
	PriceInflation       = 0.1
)

// Бонусы
const (
	PowerUpSize     = 25
	PowerUpSpeed    = 3.0
	PowerUpHeal     = 20
	PortalSize      = 60
	PortalPulseRate = 0.005
)

var (
	BackgroundColor = color.RGBA{5, 5, 20, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	HealthBarColor  = color.RGBA{0, 255, 0, 255}
	EnergyBarColor  = color.RGBA{0, 0, 255, 255}
	BossBarColor    = color.RGBA{255, 0, 0, 255}
	AffordColor     = color.RGBA{0, 255, 0, 255}
	ExpensiveColor  = color.RGBA{255, 0, 0, 255}
	ShieldColor     = color.RGBA{80, 160, 255, 255}
	HighlightColor  = color.RGBA{255, 255, 0, 255}
)
