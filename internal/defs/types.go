// internal/defs/types.go
package defs

import (
	"fmt"
	"strings"
)

// Difficulty - уровень сложности забега.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty превращает строку из флага/конфига в Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// WeaponType - тип основного оружия игрока.
type WeaponType string

const (
	WeaponNormal   WeaponType = "normal"
	WeaponSpread   WeaponType = "spread"
	WeaponBouncing WeaponType = "bouncing"
	WeaponHoming   WeaponType = "homing"
)

// EnemyType - тег варианта врага.
type EnemyType string

const (
	EnemyBasic           EnemyType = "basic"
	EnemyElite           EnemyType = "elite"
	EnemyCloakedAmbusher EnemyType = "cloaked_ambusher"
	EnemySplitterDrone   EnemyType = "splitter_drone"
	EnemyShieldBearer    EnemyType = "shield_bearer"
	EnemyEnergySapper    EnemyType = "energy_sapper"
	EnemyBladeSpinner    EnemyType = "blade_spinner"
)

// PowerUpType - эффект бонуса.
type PowerUpType string

const (
	PowerUpHealth PowerUpType = "health"
	PowerUpShield PowerUpType = "shield"
	PowerUpWeapon PowerUpType = "weapon"
	PowerUpDrone  PowerUpType = "drone"
)

// PowerUpTypes - порядок важен: из него выбирается случайный тип.
var PowerUpTypes = []PowerUpType{PowerUpHealth, PowerUpShield, PowerUpWeapon, PowerUpDrone}
