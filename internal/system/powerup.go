// internal/system/powerup.go
package system

import (
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/entity"
)

// PowerUpSystem роняет бонусы вниз. Порталы неподвижны и здесь не трогаются.
type PowerUpSystem struct {
	ecs *entity.ECS
}

func NewPowerUpSystem(ecs *entity.ECS) *PowerUpSystem {
	return &PowerUpSystem{ecs: ecs}
}

func (s *PowerUpSystem) Update() {
	for _, p := range s.ecs.PowerUps {
		if !p.Alive() {
			continue
		}
		p.Rect.Y += p.Speed
		if p.Rect.Top() > config.ScreenHeight {
			p.Kill()
		}
	}
}
