// internal/app/game.go
package app

import (
	"log"

	"go-space-fighter/internal/clock"
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/input"
	"go-space-fighter/internal/sound"
	"go-space-fighter/internal/system"
	"go-space-fighter/internal/ui"
	"go-space-fighter/internal/utils"
	"go-space-fighter/pkg/render"
)

// Options - параметры забега. Нулевые поля получают значения по умолчанию.
type Options struct {
	Seed       int64
	Difficulty defs.Difficulty
	Endless    bool
	Clock      clock.Clock
	Sound      sound.Player
}

// Game holds the main game state and logic.
type Game struct {
	ECS              *entity.ECS
	Spawner          *system.Spawner
	WeaponSystem     *system.WeaponSystem
	PlayerSystem     *system.PlayerSystem
	ProjectileSystem *system.ProjectileSystem
	EnemySystem      *system.EnemySystem
	BossSystem       *system.BossSystem
	PowerUpSystem    *system.PowerUpSystem
	CombatSystem     *system.CombatSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem
	RenderSystem     *system.RenderSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Clock            clock.Clock
	HUD              *ui.HUD
	Stats            *Stats

	endless bool
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	if opts.Difficulty == "" {
		opts.Difficulty = defs.DifficultyNormal
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewMonotonic()
	}
	if opts.Sound == nil {
		opts.Sound = sound.Nop{}
	}

	ecs := entity.NewECS(component.NewGameState(opts.Difficulty))
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	spawner := system.NewSpawner(ecs, rng)

	g := &Game{
		ECS:             ecs,
		Spawner:         spawner,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Clock:           opts.Clock,
		HUD:             ui.NewHUD(),
		Stats:           newStats(),
		endless:         opts.Endless,
	}
	g.WeaponSystem = system.NewWeaponSystem(ecs, spawner, rng, eventDispatcher)
	g.PlayerSystem = system.NewPlayerSystem(ecs, g.WeaponSystem, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, rng)
	g.EnemySystem = system.NewEnemySystem(ecs, spawner, rng, eventDispatcher)
	g.BossSystem = system.NewBossSystem(ecs, spawner, rng, eventDispatcher)
	g.PowerUpSystem = system.NewPowerUpSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, spawner, rng, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, spawner, rng, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, spawner, eventDispatcher, opts.Clock)
	g.RenderSystem = system.NewRenderSystem(ecs)

	sound.Attach(eventDispatcher, opts.Sound)

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.EnemyKilled, event.BossDefeated, event.MiniBossDefeated,
		event.WaveCleared, event.SectorAdvanced, event.Victory, event.PlayerDied,
	} {
		eventDispatcher.Subscribe(t, listener)
	}

	return g
}

// State возвращает прогрессию забега.
func (g *Game) State() *component.GameState {
	return g.ECS.GameState
}

// Player возвращает корабль игрока (nil до Start).
func (g *Game) Player() *component.Player {
	return g.ECS.Player
}

// Start начинает новый забег выбранной сложности. Рекорд сохраняется.
func (g *Game) Start(difficulty defs.Difficulty) {
	gs := g.ECS.GameState
	if difficulty != "" {
		gs.Difficulty = difficulty
	}
	gs.Reset()
	gs.Endless = g.endless
	gs.Phase = component.PhasePlaying

	g.ECS.Clear()
	g.ECS.Player = component.NewPlayer(g.ECS.NewEntity(), g.Clock.Now())
	g.WaveSystem.Reset()
	g.Stats.reset()
	log.Printf("New run: difficulty %s, endless %v", gs.Difficulty, gs.Endless)
}

// Tick продвигает симуляцию на один кадр. Вне фазы игры ничего не делает.
func (g *Game) Tick(in input.State) {
	gs := g.ECS.GameState
	if gs.Phase != component.PhasePlaying || g.ECS.Player == nil {
		return
	}
	now := g.Clock.Now()
	g.Stats.Ticks++

	// обновление: только локальное состояние и очередь спавна
	snap := system.TakeSnapshot(g.ECS)
	g.PlayerSystem.Update(now, in)
	g.ProjectileSystem.Update()
	g.EnemySystem.Update(now, snap)
	g.BossSystem.Update(now, snap)
	g.PowerUpSystem.Update()
	g.ECS.Flush()

	// столкновения: урон, очки, смерти
	g.CombatSystem.Update(now, in)
	g.ECS.Flush()

	// переходы волн и секторов
	g.WaveSystem.Update(now)
	g.ECS.Sweep()
}

// Draw рисует поле и HUD.
func (g *Game) Draw(s render.Surface) {
	now := g.Clock.Now()
	g.RenderSystem.Draw(s, now)
	boss, _ := g.ECS.ActiveBoss()
	g.HUD.Draw(s, g.ECS.GameState, g.ECS.Player, boss, now)
}

// ContinueEndless продолжает забег после победы.
func (g *Game) ContinueEndless() {
	g.endless = true
	g.ECS.GameState.ContinueEndless()
	g.WaveSystem.Reset()
	log.Printf("Endless mode: continuing into sector %d", g.ECS.GameState.Sector)
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	st := l.game.Stats
	switch e.Type {
	case event.EnemyKilled:
		if k, ok := e.Data.(event.Kill); ok {
			st.Kills[k.Type]++
		}
	case event.BossDefeated:
		st.BossesDefeated++
	case event.MiniBossDefeated:
		st.MiniBossesDefeated++
	case event.WaveCleared:
		st.WavesCleared++
	case event.SectorAdvanced:
		if sector, ok := e.Data.(int); ok {
			st.MaxSector = max(st.MaxSector, sector)
		}
	case event.Victory:
		st.Victory = true
	case event.PlayerDied:
		st.Died = true
	}
}
