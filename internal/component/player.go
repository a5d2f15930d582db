// internal/component/player.go
package component

import (
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/types"
)

// Player хранит состояние корабля игрока.
type Player struct {
	Body
	Renderable

	Health    int
	MaxHealth int

	Energy       float64
	MaxEnergy    float64
	EnergyRegen  float64
	ShieldActive bool

	SpeedFactor float64
	Gun         Cannon

	Invincible      bool
	InvincibleUntil int64

	HyperDash bool
	DashUntil int64
	LastDash  int64

	WeaponType  defs.WeaponType
	WeaponLevel int

	Drones    []*Drone
	MaxDrones int

	// Смерть двухфазная: Dying ставится сразу, удаление - после DyingDuration.
	Dying      bool
	DyingSince int64
	Visible    bool
}

// Drone - спутник игрока. Здоровья нет, удаляется только явно.
type Drone struct {
	Body
	Slot int
}

// NewPlayer создаёт корабль внизу по центру экрана.
func NewPlayer(id types.EntityID, now int64) *Player {
	p := &Player{
		Body: Body{ID: id, Rect: Rect{
			X: config.ScreenWidth/2 - config.PlayerWidth/2,
			Y: config.ScreenHeight - config.PlayerBottomMargin - config.PlayerHeight,
			W: config.PlayerWidth, H: config.PlayerHeight,
		}},
		Renderable:  Renderable{Sprite: "player", Alpha: 255},
		Health:      config.PlayerHealth,
		MaxHealth:   config.PlayerHealth,
		Energy:      config.PlayerEnergy,
		MaxEnergy:   config.PlayerEnergy,
		EnergyRegen: config.PlayerEnergyRegen,
		SpeedFactor: 1.0,
		Gun:         NewCannon(config.PlayerShootDelay, now),
		LastDash:    now - config.HyperDashCooldown - 1,
		WeaponType:  defs.WeaponNormal,
		WeaponLevel: 1,
		MaxDrones:   config.BaseMaxDrones,
		Visible:     true,
	}
	return p
}

// Hit наносит урон игроку и сообщает, был ли он смертельным.
// Умирающий, неуязвимый или прикрытый щитом игрок урон не получает.
func (p *Player) Hit(damage int, now int64) bool {
	if p.Dying || p.Invincible {
		return false
	}
	if p.ShieldActive {
		return false
	}
	p.Health -= damage
	if p.Health <= 0 {
		p.Dying = true
		p.DyingSince = now
		p.ShieldActive = false
		return true
	}
	return false
}

// DyingFinished - закончилась ли анимация гибели.
func (p *Player) DyingFinished(now int64) bool {
	return p.Dying && now-p.DyingSince > config.DyingDuration
}

// AddDrone добавляет дрона, если есть место. Вызывающий обязан проверить
// результат до списания стоимости.
func (p *Player) AddDrone(id types.EntityID) bool {
	if len(p.Drones) >= p.MaxDrones {
		return false
	}
	d := &Drone{
		Body: Body{ID: id, Rect: NewRectCentered(p.Rect.CenterX(), p.Rect.CenterY(), config.DroneSize, config.DroneSize)},
		Slot: len(p.Drones),
	}
	p.Drones = append(p.Drones, d)
	return true
}

// GrantInvincibility продлевает неуязвимость до now+duration (но не укорачивает).
func (p *Player) GrantInvincibility(now, duration int64) {
	p.Invincible = true
	if until := now + duration; until > p.InvincibleUntil {
		p.InvincibleUntil = until
	}
}

// TryHyperDash запускает рывок; на кулдауне - ничего не делает.
func (p *Player) TryHyperDash(now int64) bool {
	if p.Dying || now-p.LastDash <= config.HyperDashCooldown {
		return false
	}
	p.HyperDash = true
	p.DashUntil = now + config.HyperDashDuration
	p.LastDash = now
	p.GrantInvincibility(now, config.InvincibilityDuration)
	return true
}

// ApplyWeaponPowerUp повышает уровень оружия, а на третьем уровне
// переключает тип по ротации сложности и сбрасывает уровень в 1.
func (p *Player) ApplyWeaponPowerUp(profile defs.DifficultyProfile) {
	if p.WeaponLevel < 3 {
		p.WeaponLevel++
		return
	}
	p.WeaponType = profile.NextWeapon(p.WeaponType)
	p.WeaponLevel = 1
}

// Heal восстанавливает здоровье, не выше максимума.
func (p *Player) Heal(amount int) {
	p.Health = min(p.MaxHealth, p.Health+amount)
}
