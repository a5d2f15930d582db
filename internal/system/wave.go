// internal/system/wave.go
package system

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/sound"
	"go-space-fighter/internal/utils"
	"log"
)

// WaveSystem - единственное место, где решается, закончилась ли волна.
// Вызывается после фазы столкновений, когда мёртвые уже помечены.
type WaveSystem struct {
	ecs             *entity.ECS
	spawner         *Spawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	waveSpawned     bool
}

func NewWaveSystem(ecs *entity.ECS, spawner *Spawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		spawner:         spawner,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.SectorAdvanced, ws)
	return ws
}

// OnEvent: новый сектор начинается с ещё не выпущенной первой волны.
func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.SectorAdvanced {
		s.Reset()
	}
}

// Reset сбрасывает признак выпущенной волны; следующая Update выпустит текущую.
func (s *WaveSystem) Reset() {
	s.waveSpawned = false
}

func (s *WaveSystem) Update(now int64) {
	gs := s.ecs.GameState
	if gs.Phase != component.PhasePlaying || gs.BossFight {
		return
	}
	if s.advancingPortalOpen() {
		return
	}
	if !s.waveSpawned {
		s.spawnWave(now)
		return
	}
	if s.ecs.LiveEnemyCount() > 0 {
		return
	}

	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.Wave{Sector: gs.Sector, Wave: gs.Wave}})
	if gs.NextWave() {
		s.spawnBoss(now)
		return
	}
	s.spawnWave(now)
}

func (s *WaveSystem) advancingPortalOpen() bool {
	for _, p := range s.ecs.Portals {
		if p.Alive() && p.Advances {
			return true
		}
	}
	return false
}

func (s *WaveSystem) spawnWave(now int64) {
	gs := s.ecs.GameState
	table := defs.SpawnTableFor(gs.Sector)
	for i := 0; i < gs.WaveEnemies; i++ {
		s.spawner.EnemyAbove(s.rng.ChooseWeighted(table), now)
	}
	if gs.Wave == config.MiniBossWave && gs.Sector >= config.MiniBossFromSector {
		s.spawner.Goliath(now)
		log.Printf("Barrier Goliath incoming: sector %d wave %d", gs.Sector, gs.Wave)
	}
	s.waveSpawned = true
	log.Printf("Wave %d/%d of sector %d: %d enemies", gs.Wave, gs.WavesPerSector, gs.Sector, gs.WaveEnemies)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.Wave{Sector: gs.Sector, Wave: gs.Wave}})
}

func (s *WaveSystem) spawnBoss(now int64) {
	gs := s.ecs.GameState
	b := s.spawner.Boss(gs.Sector, now)
	log.Printf("Boss %q spawned with %d hp", b.Name, b.Health)
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossSpawned, Data: event.BossInfo{
		ID: b.ID, Name: b.Name, Sector: gs.Sector, X: b.Rect.CenterX(), Y: b.Rect.CenterY(),
	}})
	playSound(s.eventDispatcher, sound.BossSpawn)
}
