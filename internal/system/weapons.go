// internal/system/weapons.go
package system

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/sound"
	"go-space-fighter/internal/types"
	"go-space-fighter/internal/utils"
	"math"
)

// WeaponSystem строит залпы игрока и дронов и держит строй дронов.
type WeaponSystem struct {
	ecs             *entity.ECS
	spawner         *Spawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWeaponSystem(ecs *entity.ECS, spawner *Spawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WeaponSystem {
	return &WeaponSystem{ecs: ecs, spawner: spawner, rng: rng, eventDispatcher: eventDispatcher}
}

// TryFire стреляет, если истекла задержка. Ранний вызов ничего не делает.
// После успешного залпа игрока каждый дрон может повторить его.
func (s *WeaponSystem) TryFire(p *component.Player, now int64) bool {
	if p.Dying || !p.Gun.Ready(now) {
		return false
	}
	p.Gun.Fire(now, 0)
	s.Volley(p.Rect, p.WeaponType, p.WeaponLevel, p.ID)

	chance := defs.DroneFireChance[p.WeaponType]
	for _, d := range p.Drones {
		if s.rng.Chance(chance) {
			s.Volley(d.Rect, p.WeaponType, 1, p.ID)
		}
	}
	playSound(s.eventDispatcher, sound.Shoot)
	return true
}

// Volley выпускает залп оружия weapon уровня level из прямоугольника r.
func (s *WeaponSystem) Volley(r component.Rect, weapon defs.WeaponType, level int, owner types.EntityID) int {
	level = max(1, min(3, level))
	cx, top := r.CenterX(), r.Top()
	n := 0
	switch weapon {
	case defs.WeaponSpread:
		for _, a := range defs.SpreadAngles[level-1] {
			s.spawner.SpreadBullet(cx, top, a, owner)
			n++
		}
	case defs.WeaponBouncing:
		for _, off := range fan(level, defs.BouncingFanStep) {
			s.spawner.BouncingBullet(cx, top, off, owner)
			n++
		}
	case defs.WeaponHoming:
		for _, off := range fan(level, defs.HomingFanStep) {
			s.spawner.HomingBullet(cx, top, off, owner)
			n++
		}
	default:
		s.spawner.Bullet(cx, top, owner)
		n++
		if level >= 2 {
			s.spawner.Bullet(r.Left()+10, top+10, owner)
			s.spawner.Bullet(r.Right()-10, top+10, owner)
			n += 2
		}
		if level >= 3 {
			s.spawner.Bullet(r.Left()+5, top+20, owner)
			s.spawner.Bullet(r.Right()-5, top+20, owner)
			n += 2
		}
	}
	return n
}

// fan - n смещений с шагом step, симметрично относительно нуля.
func fan(n int, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = (float64(i) - float64(n-1)/2) * step
	}
	return out
}

// UpdateDrones пересчитывает строй: до четырёх дронов стоят по сторонам света,
// больше - по кругу.
func (s *WeaponSystem) UpdateDrones(p *component.Player) {
	cx, cy := p.Rect.CenterX(), p.Rect.CenterY()
	for i, d := range p.Drones {
		x, y := DroneSlot(i, len(p.Drones))
		d.Slot = i
		d.Rect.SetCenter(cx+x, cy+y)
	}
}

var cardinalSlots = [config.DroneCardinalMax][2]float64{
	{-config.DroneCardinalDist, 0},
	{config.DroneCardinalDist, 0},
	{0, -config.DroneCardinalDist},
	{0, config.DroneCardinalDist},
}

// DroneSlot - смещение дрона i из n от центра игрока.
func DroneSlot(i, n int) (float64, float64) {
	if n <= config.DroneCardinalMax {
		off := cardinalSlots[i%config.DroneCardinalMax]
		return off[0], off[1]
	}
	angle := 2 * math.Pi * float64(i) / float64(n)
	return config.DroneOrbitRadius * math.Cos(angle), config.DroneOrbitRadius * math.Sin(angle)
}
