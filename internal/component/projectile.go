// internal/component/projectile.go
package component

import "go-space-fighter/internal/types"

// ProjectileKind - вариант снаряда: модель движения и правило удаления.
type ProjectileKind int

const (
	KindBullet ProjectileKind = iota
	KindSpreadBullet
	KindBouncingBullet
	KindHomingBullet
	KindEnemyBullet
	KindEnemySpreadBullet
)

func (k ProjectileKind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindSpreadBullet:
		return "spread_bullet"
	case KindBouncingBullet:
		return "bouncing_bullet"
	case KindHomingBullet:
		return "homing_bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	case KindEnemySpreadBullet:
		return "enemy_spread_bullet"
	}
	return "unknown"
}

// Hostile - летит ли снаряд в игрока.
func (k ProjectileKind) Hostile() bool {
	return k == KindEnemyBullet || k == KindEnemySpreadBullet
}

// Spiral - режим спирали: базовая точка интегрирует скорость,
// а видимая позиция = база + полярное смещение растущего радиуса.
type Spiral struct {
	BaseX, BaseY float64
	Angle        float64
	Radius       float64
	AngularSpeed float64
	Growth       float64
}

// Projectile представляет летящий снаряд.
// OwnerID - не владение: по нему только чистят снаряды погибшего стрелка.
type Projectile struct {
	Body
	Renderable

	Kind    ProjectileKind
	OwnerID types.EntityID
	Vel     Velocity
	Speed   float64
	Damage  int

	Bounces    int
	MaxBounces int

	Age      int // тиков
	Lifetime int // 0 - без ограничения

	TargetID types.EntityID
	// IgnoreID - цель, от которой снаряд только что отскочил; игнорируется,
	// пока прямоугольники перекрываются.
	IgnoreID types.EntityID

	Spiral *Spiral
}

// Bouncing reports whether the projectile deflects off non-lethal hits.
func (p *Projectile) Bouncing() bool {
	return p.Kind == KindBouncingBullet
}
