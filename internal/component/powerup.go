// internal/component/powerup.go
package component

import (
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"math"
)

// PowerUp - падающий бонус.
type PowerUp struct {
	Body
	Renderable
	Type  defs.PowerUpType
	Speed float64
}

// ShopPortal - неподвижные ворота в магазин.
// Advances=true у портала босса: вход ведёт в следующий сектор.
type ShopPortal struct {
	Body
	Renderable
	Advances  bool
	SpawnedAt int64
}

// Pulse - масштаб пульсации для рендера.
func (p *ShopPortal) Pulse(now int64) float64 {
	return 1 + 0.1*math.Sin(float64(now-p.SpawnedAt)*config.PortalPulseRate)
}
