// internal/component/boss.go
package component

import "go-space-fighter/internal/defs"

// Boss - босс сектора. Его гибель открывает переход в следующий сектор.
type Boss struct {
	Body
	Renderable
	DamageFlash

	Name       string
	Sector     int
	Health     int
	MaxHealth  int
	Gun        Cannon
	ScoreValue int

	Pattern      int
	PatternSince int64

	Speed  float64
	SpeedX float64
	// Восьмёрка строится вокруг якоря; якорь ставится заново при каждом входе в паттерн.
	EightX, EightY float64
	EightSince     int64
	EightSet       bool
	// Momentum - смещение за последний тик, его доля уходит в скорость пуль.
	MomentumX float64
	MomentumY float64
}

// Hit наносит урон боссу.
func (b *Boss) Hit(damage int, now int64) HitResult {
	if !b.Alive() {
		return HitIgnored
	}
	b.DamageFlash.Trigger(now)
	b.Health -= damage
	if b.Health <= 0 {
		return HitLethal
	}
	return HitDamaged
}

// Barrier - узел щита мини-босса со своим здоровьем. Очков не даёт.
type Barrier struct {
	Body
	Health int
	Slot   int
}

// Hit наносит урон барьеру; true - барьер разрушен.
func (b *Barrier) Hit(damage int) bool {
	if !b.Alive() {
		return false
	}
	b.Health -= damage
	if b.Health <= 0 {
		b.Kill()
		return true
	}
	return false
}

// BarrierOffsets - треугольник барьеров относительно центра мини-босса.
var BarrierOffsets = [3][2]float64{
	{-defs.BarrierOffset, 0},
	{defs.BarrierOffset, 0},
	{0, defs.BarrierOffset},
}

// BarrierGoliath - мини-босс под барьерами и щитом.
type BarrierGoliath struct {
	Body
	Renderable
	DamageFlash

	Health    int
	MaxHealth int

	HasShield   bool
	Shield      float64
	MaxShield   float64
	ShieldRegen float64

	SpeedX float64
	SpeedY float64
	Gun    Cannon

	Pattern      int
	PatternSince int64

	Barriers   []*Barrier
	ScoreValue int
}

// AliveBarriers возвращает живые барьеры.
func (g *BarrierGoliath) AliveBarriers() []*Barrier {
	var out []*Barrier
	for _, b := range g.Barriers {
		if b.Alive() {
			out = append(out, b)
		}
	}
	return out
}

// PlaceBarriers ставит живые барьеры в их слоты вокруг текущей позиции.
func (g *BarrierGoliath) PlaceBarriers() {
	cx, cy := g.Rect.CenterX(), g.Rect.CenterY()
	for _, b := range g.Barriers {
		if !b.Alive() {
			continue
		}
		off := BarrierOffsets[b.Slot%len(BarrierOffsets)]
		b.Rect.SetCenter(cx+off[0], cy+off[1])
	}
}

// Hit - урон по корпусу проходит через три слоя: живой барьер, затем щит,
// и только потом здоровье.
func (g *BarrierGoliath) Hit(damage int, now int64) HitResult {
	if !g.Alive() {
		return HitIgnored
	}
	g.DamageFlash.Trigger(now)
	if alive := g.AliveBarriers(); len(alive) > 0 {
		alive[0].Hit(damage)
		return HitAbsorbed
	}
	if g.HasShield {
		g.Shield -= float64(damage)
		if g.Shield <= 0 {
			g.Shield = 0
			g.HasShield = false
		}
		return HitAbsorbed
	}
	g.Health -= damage
	if g.Health <= 0 {
		return HitLethal
	}
	return HitDamaged
}
