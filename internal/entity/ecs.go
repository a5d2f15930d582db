// internal/entity/ecs.go
package entity

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/types"
	"maps"
	"slices"
)

// ECS - реестр всех сущностей забега. Категории - это представления по ID;
// Sweep вычищает мёртвые сущности из всех представлений разом.
type ECS struct {
	NextID types.EntityID

	Player       *component.Player
	Enemies      map[types.EntityID]*component.Enemy
	Bosses       map[types.EntityID]*component.Boss
	Goliaths     map[types.EntityID]*component.BarrierGoliath
	Bullets      map[types.EntityID]*component.Projectile // снаряды игрока и дронов
	EnemyBullets map[types.EntityID]*component.Projectile
	PowerUps     map[types.EntityID]*component.PowerUp
	Portals      map[types.EntityID]*component.ShopPortal

	GameState *component.GameState

	pending spawnQueue
}

// spawnQueue - сущности, созданные во время фазы обновления.
// В реестр они попадают только на границе фаз (Flush).
type spawnQueue struct {
	enemies      []*component.Enemy
	bosses       []*component.Boss
	goliaths     []*component.BarrierGoliath
	bullets      []*component.Projectile
	enemyBullets []*component.Projectile
	powerUps     []*component.PowerUp
	portals      []*component.ShopPortal
}

func NewECS(state *component.GameState) *ECS {
	return &ECS{
		NextID:       1,
		Enemies:      make(map[types.EntityID]*component.Enemy),
		Bosses:       make(map[types.EntityID]*component.Boss),
		Goliaths:     make(map[types.EntityID]*component.BarrierGoliath),
		Bullets:      make(map[types.EntityID]*component.Projectile),
		EnemyBullets: make(map[types.EntityID]*component.Projectile),
		PowerUps:     make(map[types.EntityID]*component.PowerUp),
		Portals:      make(map[types.EntityID]*component.ShopPortal),
		GameState:    state,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// SortedIDs возвращает ключи категории по возрастанию, чтобы обход
// был детерминированным при одинаковом сиде.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}

func (ecs *ECS) SpawnEnemy(e *component.Enemy) types.EntityID {
	e.ID = ecs.NewEntity()
	ecs.pending.enemies = append(ecs.pending.enemies, e)
	return e.ID
}

func (ecs *ECS) SpawnBoss(b *component.Boss) types.EntityID {
	b.ID = ecs.NewEntity()
	ecs.pending.bosses = append(ecs.pending.bosses, b)
	return b.ID
}

// SpawnGoliath регистрирует мини-босса и выдаёт ID его барьерам.
func (ecs *ECS) SpawnGoliath(g *component.BarrierGoliath) types.EntityID {
	g.ID = ecs.NewEntity()
	for _, b := range g.Barriers {
		b.ID = ecs.NewEntity()
	}
	ecs.pending.goliaths = append(ecs.pending.goliaths, g)
	return g.ID
}

// SpawnProjectile кладёт снаряд в нужную категорию по его виду.
func (ecs *ECS) SpawnProjectile(p *component.Projectile) types.EntityID {
	p.ID = ecs.NewEntity()
	if p.Kind.Hostile() {
		ecs.pending.enemyBullets = append(ecs.pending.enemyBullets, p)
	} else {
		ecs.pending.bullets = append(ecs.pending.bullets, p)
	}
	return p.ID
}

func (ecs *ECS) SpawnPowerUp(p *component.PowerUp) types.EntityID {
	p.ID = ecs.NewEntity()
	ecs.pending.powerUps = append(ecs.pending.powerUps, p)
	return p.ID
}

func (ecs *ECS) SpawnPortal(p *component.ShopPortal) types.EntityID {
	p.ID = ecs.NewEntity()
	ecs.pending.portals = append(ecs.pending.portals, p)
	return p.ID
}

// Flush переносит отложенные сущности в реестр.
func (ecs *ECS) Flush() {
	q := &ecs.pending
	for _, e := range q.enemies {
		ecs.Enemies[e.ID] = e
	}
	for _, b := range q.bosses {
		ecs.Bosses[b.ID] = b
	}
	for _, g := range q.goliaths {
		ecs.Goliaths[g.ID] = g
	}
	for _, p := range q.bullets {
		ecs.Bullets[p.ID] = p
	}
	for _, p := range q.enemyBullets {
		ecs.EnemyBullets[p.ID] = p
	}
	for _, p := range q.powerUps {
		ecs.PowerUps[p.ID] = p
	}
	for _, p := range q.portals {
		ecs.Portals[p.ID] = p
	}
	*q = spawnQueue{}
}

// Sweep удаляет мёртвые сущности и всё, что улетело дальше OffscreenMargin за экран.
// Враги и боссы появляются над экраном, поэтому для них верхняя граница не действует.
func (ecs *ECS) Sweep() {
	sweep(ecs.Enemies, func(e *component.Enemy) *component.Body { return &e.Body }, PastScreen)
	sweep(ecs.Bosses, func(b *component.Boss) *component.Body { return &b.Body }, PastScreen)
	sweep(ecs.Goliaths, func(g *component.BarrierGoliath) *component.Body { return &g.Body }, PastScreen)
	sweep(ecs.Bullets, func(p *component.Projectile) *component.Body { return &p.Body }, FarOffscreen)
	sweep(ecs.EnemyBullets, func(p *component.Projectile) *component.Body { return &p.Body }, FarOffscreen)
	sweep(ecs.PowerUps, func(p *component.PowerUp) *component.Body { return &p.Body }, FarOffscreen)
	sweep(ecs.Portals, func(p *component.ShopPortal) *component.Body { return &p.Body }, FarOffscreen)
}

func sweep[V any](m map[types.EntityID]V, body func(V) *component.Body, gone func(component.Rect) bool) {
	for id, v := range m {
		b := body(v)
		if b.Alive() && gone(b.Rect) {
			b.Kill()
		}
		if !b.Alive() {
			delete(m, id)
		}
	}
}

// FarOffscreen - прямоугольник целиком за пределами экрана с запасом.
func FarOffscreen(r component.Rect) bool {
	m := float64(config.OffscreenMargin)
	return r.Bottom() < -m || PastScreen(r)
}

// PastScreen - то же, но без верхней границы.
func PastScreen(r component.Rect) bool {
	m := float64(config.OffscreenMargin)
	return r.Top() > config.ScreenHeight+m || r.Right() < -m || r.Left() > config.ScreenWidth+m
}

// RemoveProjectilesOwnedBy убивает все вражеские снаряды стрелка.
func (ecs *ECS) RemoveProjectilesOwnedBy(owner types.EntityID) int {
	n := 0
	for _, p := range ecs.EnemyBullets {
		if p.OwnerID == owner && p.Kill() {
			n++
		}
	}
	for _, p := range ecs.pending.enemyBullets {
		if p.OwnerID == owner && p.Kill() {
			n++
		}
	}
	return n
}

// ClearPlayerBullets убивает все снаряды игрока (вход в портал).
func (ecs *ECS) ClearPlayerBullets() {
	for _, p := range ecs.Bullets {
		p.Kill()
	}
	for _, p := range ecs.pending.bullets {
		p.Kill()
	}
}

// Clear очищает поле боя, оставляя игрока и прогресс.
func (ecs *ECS) Clear() {
	clear(ecs.Enemies)
	clear(ecs.Bosses)
	clear(ecs.Goliaths)
	clear(ecs.Bullets)
	clear(ecs.EnemyBullets)
	clear(ecs.PowerUps)
	clear(ecs.Portals)
	ecs.pending = spawnQueue{}
}

// Target - живая цель для самонаводящихся снарядов.
type Target struct {
	ID   types.EntityID
	X, Y float64
}

// LiveTargets собирает живых врагов, боссов и мини-боссов в порядке ID.
func (ecs *ECS) LiveTargets() []Target {
	var out []Target
	for _, id := range SortedIDs(ecs.Enemies) {
		if e := ecs.Enemies[id]; e.Alive() {
			out = append(out, Target{ID: id, X: e.Rect.CenterX(), Y: e.Rect.CenterY()})
		}
	}
	for _, id := range SortedIDs(ecs.Bosses) {
		if b := ecs.Bosses[id]; b.Alive() {
			out = append(out, Target{ID: id, X: b.Rect.CenterX(), Y: b.Rect.CenterY()})
		}
	}
	for _, id := range SortedIDs(ecs.Goliaths) {
		if g := ecs.Goliaths[id]; g.Alive() {
			out = append(out, Target{ID: id, X: g.Rect.CenterX(), Y: g.Rect.CenterY()})
		}
	}
	return out
}

// Nearest - ближайшая живая цель к точке.
func (ecs *ECS) Nearest(x, y float64) (Target, bool) {
	var best Target
	bestDist := -1.0
	for _, t := range ecs.LiveTargets() {
		dx, dy := t.X-x, t.Y-y
		d := dx*dx + dy*dy
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, bestDist >= 0
}

// TargetPosition возвращает центр живой цели по ID.
func (ecs *ECS) TargetPosition(id types.EntityID) (float64, float64, bool) {
	if e, ok := ecs.Enemies[id]; ok && e.Alive() {
		return e.Rect.CenterX(), e.Rect.CenterY(), true
	}
	if b, ok := ecs.Bosses[id]; ok && b.Alive() {
		return b.Rect.CenterX(), b.Rect.CenterY(), true
	}
	if g, ok := ecs.Goliaths[id]; ok && g.Alive() {
		return g.Rect.CenterX(), g.Rect.CenterY(), true
	}
	return 0, 0, false
}

// LiveEnemyCount - сколько живых врагов держит волну: обычные враги и мини-боссы.
func (ecs *ECS) LiveEnemyCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive() {
			n++
		}
	}
	for _, e := range ecs.pending.enemies {
		if e.Alive() {
			n++
		}
	}
	for _, g := range ecs.Goliaths {
		if g.Alive() {
			n++
		}
	}
	for _, g := range ecs.pending.goliaths {
		if g.Alive() {
			n++
		}
	}
	return n
}

// LiveBossCount - количество живых боссов сектора.
func (ecs *ECS) LiveBossCount() int {
	n := 0
	for _, b := range ecs.Bosses {
		if b.Alive() {
			n++
		}
	}
	for _, b := range ecs.pending.bosses {
		if b.Alive() {
			n++
		}
	}
	return n
}

// ActiveBoss - живой босс сектора для полосы здоровья в HUD.
func (ecs *ECS) ActiveBoss() (*component.Boss, bool) {
	for _, id := range SortedIDs(ecs.Bosses) {
		if b := ecs.Bosses[id]; b.Alive() {
			return b, true
		}
	}
	return nil, false
}
