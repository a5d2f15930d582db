// internal/defs/weapons.go
package defs

// DroneFireChance - вероятность, что дрон повторит залп игрока.
var DroneFireChance = map[WeaponType]float64{
	WeaponNormal:   0.7,
	WeaponSpread:   0.5,
	WeaponBouncing: 0.4,
	WeaponHoming:   0.35,
}

// SpreadAngles - углы веера по уровню оружия, в градусах от вертикали.
var SpreadAngles = [3][]float64{
	{-30, 0, 30},
	{-30, -15, 0, 15, 30},
	{-45, -30, -15, 0, 15, 30, 45},
}

// Шаг веера для отскакивающих и самонаводящихся снарядов.
const (
	BouncingFanStep = 10.0
	HomingFanStep   = 15.0
)

// Залпы врагов и боссов, градусы от направления вниз.
var (
	EliteSpreadAngles   = []float64{-30, 30}
	ShieldSpreadAngles  = []float64{-15, 0, 15}
	BossSpreadAngles    = []float64{-45, -30, -15, 0, 15, 30, 45}
	BarrierSpreadAngles = []float64{-30, 0, 30}
)

const (
	BossRingBullets = 12
	BossAimedFan    = 5
	BossAimedStep   = 10.0
)
