// internal/component/enemy.go
package component

import "go-space-fighter/internal/defs"

// Enemy представляет вражескую сущность. Поведение варианта выбирается по Type,
// а его собственные данные лежат в Payload.
type Enemy struct {
	Body
	Renderable
	DamageFlash

	Type       defs.EnemyType
	Health     int
	MaxHealth  int
	Speed      float64
	SpeedX     float64
	Gun        Cannon
	ScoreValue int

	Payload EnemyPayload
}

// EnemyPayload - данные конкретного варианта врага.
type EnemyPayload interface {
	enemyType() defs.EnemyType
}

// CloakPayload - cloaked_ambusher.
type CloakPayload struct {
	Visible    bool
	NextToggle int64
	BurstLeft  int
	NextBurst  int64
}

// SplitPayload - splitter_drone. Копии помечены IsSplit и больше не делятся.
type SplitPayload struct {
	IsSplit bool
}

// ShieldPayload - shield_bearer: отдельный пул щита.
type ShieldPayload struct {
	Health  float64
	Max     float64
	Enabled bool
}

// SapperPayload - energy_sapper: луч вместо снарядов.
type SapperPayload struct {
	BeamActive bool
	NextSwitch int64
	Hovering   bool
}

// SpinnerPayload - blade_spinner: орбита вокруг дрейфующего центра.
type SpinnerPayload struct {
	CenterX, CenterY float64
	Angle            float64
	Radius           float64
	AngularSpeed     float64
	Drift            float64
	ReflectChance    float64
}

func (*CloakPayload) enemyType() defs.EnemyType   { return defs.EnemyCloakedAmbusher }
func (*SplitPayload) enemyType() defs.EnemyType   { return defs.EnemySplitterDrone }
func (*ShieldPayload) enemyType() defs.EnemyType  { return defs.EnemyShieldBearer }
func (*SapperPayload) enemyType() defs.EnemyType  { return defs.EnemyEnergySapper }
func (*SpinnerPayload) enemyType() defs.EnemyType { return defs.EnemyBladeSpinner }

func (e *Enemy) Cloak() (*CloakPayload, bool)     { p, ok := e.Payload.(*CloakPayload); return p, ok }
func (e *Enemy) Split() (*SplitPayload, bool)     { p, ok := e.Payload.(*SplitPayload); return p, ok }
func (e *Enemy) Shield() (*ShieldPayload, bool)   { p, ok := e.Payload.(*ShieldPayload); return p, ok }
func (e *Enemy) Sapper() (*SapperPayload, bool)   { p, ok := e.Payload.(*SapperPayload); return p, ok }
func (e *Enemy) Spinner() (*SpinnerPayload, bool) { p, ok := e.Payload.(*SpinnerPayload); return p, ok }

// Hit наносит урон. Щит shield_bearer и корпус - два независимых пула:
// пока щит включён и не пуст, корпус не трогается.
func (e *Enemy) Hit(damage int, now int64) HitResult {
	if !e.Alive() {
		return HitIgnored
	}
	e.DamageFlash.Trigger(now)
	if sh, ok := e.Shield(); ok && sh.Enabled && sh.Health > 0 {
		sh.Health -= float64(damage)
		if sh.Health <= 0 {
			sh.Health = 0
			sh.Enabled = false
		}
		return HitAbsorbed
	}
	e.Health -= damage
	if e.Health <= 0 {
		return HitLethal
	}
	return HitDamaged
}

// RegenShield восполняет щит и включает его обратно выше порога.
func (s *ShieldPayload) Regen() {
	if s.Health < s.Max {
		s.Health = min(s.Max, s.Health+defs.ShieldRegen)
	}
	if !s.Enabled && s.Health > s.Max*defs.ShieldReenableFrac {
		s.Enabled = true
	}
}
