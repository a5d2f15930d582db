// internal/system/player_system.go
package system

import (
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/input"
	"go-space-fighter/internal/sound"
	"log"
)

// PlayerSystem двигает корабль игрока, ведёт щит, рывок, таймеры и стрельбу.
type PlayerSystem struct {
	ecs             *entity.ECS
	weapons         *WeaponSystem
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(ecs *entity.ECS, weapons *WeaponSystem, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, weapons: weapons, eventDispatcher: eventDispatcher}
}

func (s *PlayerSystem) Update(now int64, in input.State) {
	p := s.ecs.Player
	if p == nil || !p.Alive() {
		return
	}

	if p.Dying {
		p.ShieldActive = false
		p.Visible = ((now-p.DyingSince)/config.DyingBlink)%2 == 0
		if p.DyingFinished(now) {
			p.Kill()
			log.Printf("Player destroyed at sector %d wave %d", s.ecs.GameState.Sector, s.ecs.GameState.Wave)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
		}
		return
	}

	if p.HyperDash && now > p.DashUntil {
		p.HyperDash = false
	}
	if p.Invincible && now > p.InvincibleUntil {
		p.Invincible = false
	}
	if in.Dash && p.TryHyperDash(now) {
		playSound(s.eventDispatcher, sound.Dash)
	}

	speed := config.PlayerBaseSpeed * p.SpeedFactor
	if p.HyperDash {
		speed *= config.PlayerDashFactor
	}
	var dx, dy float64
	if in.Left {
		dx = -speed
	}
	if in.Right {
		dx = speed
	}
	if in.Up {
		dy = -speed
	}
	if in.Down {
		dy = speed
	}
	p.Rect.X += dx
	p.Rect.Y += dy
	p.Rect.ClampTo(config.ScreenWidth, config.ScreenHeight)

	if in.Shield && p.Energy > 0 {
		p.ShieldActive = true
		p.Energy = max(0, p.Energy-config.PlayerShieldDrain)
	} else {
		p.ShieldActive = false
	}
	if !p.ShieldActive && p.Energy < p.MaxEnergy {
		p.Energy = min(p.MaxEnergy, p.Energy+p.EnergyRegen)
	}

	s.weapons.UpdateDrones(p)
	if in.Shoot {
		s.weapons.TryFire(p, now)
	}
}
