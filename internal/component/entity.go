// internal/component/entity.go
package component

import "go-space-fighter/internal/types"

// Body - общий контракт сущности: идентификатор, прямоугольник и флаг жизни.
// Переход live→dead происходит ровно один раз.
type Body struct {
	ID   types.EntityID
	Rect Rect
	dead bool
}

// Alive сообщает, жива ли сущность.
func (b *Body) Alive() bool { return !b.dead }

// Kill помечает сущность мёртвой. Возвращает true только при первом вызове,
// поэтому двойное убийство в одном тике не приводит к двойной награде.
func (b *Body) Kill() bool {
	if b.dead {
		return false
	}
	b.dead = true
	return true
}

// HitResult - итог попадания по врагу или боссу.
type HitResult int

const (
	HitIgnored  HitResult = iota // цель уже мертва
	HitAbsorbed                  // урон принял щит/барьер
	HitDamaged                   // урон прошёл, цель жива
	HitLethal                    // цель убита этим попаданием
)
