// internal/defs/difficulty.go
package defs

// DifficultyProfile - таблица множителей одной сложности.
// Читается только при создании сущности, поэтому смена сложности посреди
// забега не трогает уже живых врагов.
type DifficultyProfile struct {
	SpeedMultiplier      float64      `yaml:"speed_multiplier"`
	HealthMultiplier     float64      `yaml:"health_multiplier"`
	ShootDelayMultiplier float64      `yaml:"shoot_delay_multiplier"` // <1 - стреляют чаще
	DropRate             float64      `yaml:"drop_rate"`
	ResourcesPerKill     int          `yaml:"resources_per_kill"`
	BossResources        int          `yaml:"boss_resources"`
	MiniBossMultiplier   float64      `yaml:"mini_boss_multiplier"`
	SplitCount           int          `yaml:"split_count"`
	ReflectChance        float64      `yaml:"reflect_chance"` // отражение удара у blade_spinner
	WeaponRotation       []WeaponType `yaml:"weapon_rotation"`
}

// DifficultyTable - итоговая таблица; hard исключает bouncing и homing из ротации.
var DifficultyTable = map[Difficulty]DifficultyProfile{
	DifficultyEasy: {
		SpeedMultiplier:      0.8,
		HealthMultiplier:     0.8,
		ShootDelayMultiplier: 1.25,
		DropRate:             0.4,
		ResourcesPerKill:     8,
		BossResources:        150,
		MiniBossMultiplier:   0.8,
		SplitCount:           2,
		ReflectChance:        0,
		WeaponRotation:       []WeaponType{WeaponNormal, WeaponSpread, WeaponBouncing, WeaponHoming},
	},
	DifficultyNormal: {
		SpeedMultiplier:      1.0,
		HealthMultiplier:     1.0,
		ShootDelayMultiplier: 1.0,
		DropRate:             0.3,
		ResourcesPerKill:     5,
		BossResources:        100,
		MiniBossMultiplier:   1.0,
		SplitCount:           2,
		ReflectChance:        0,
		WeaponRotation:       []WeaponType{WeaponNormal, WeaponSpread, WeaponBouncing, WeaponHoming},
	},
	DifficultyHard: {
		SpeedMultiplier:      1.2,
		HealthMultiplier:     1.5,
		ShootDelayMultiplier: 0.75,
		DropRate:             0.2,
		ResourcesPerKill:     3,
		BossResources:        75,
		MiniBossMultiplier:   1.5,
		SplitCount:           3,
		ReflectChance:        0.4,
		WeaponRotation:       []WeaponType{WeaponNormal, WeaponSpread},
	},
}

// Profile возвращает профиль сложности; неизвестная сложность трактуется как normal.
func Profile(d Difficulty) DifficultyProfile {
	if p, ok := DifficultyTable[d]; ok {
		return p
	}
	return DifficultyTable[DifficultyNormal]
}

// NextWeapon возвращает следующий тип оружия в ротации (с переходом через конец).
// Если текущего типа нет в списке (например, сложность сменили), берётся первый.
func (p DifficultyProfile) NextWeapon(current WeaponType) WeaponType {
	if len(p.WeaponRotation) == 0 {
		return current
	}
	for i, w := range p.WeaponRotation {
		if w == current {
			return p.WeaponRotation[(i+1)%len(p.WeaponRotation)]
		}
	}
	return p.WeaponRotation[0]
}
