package system

import (
	"testing"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/event"
)

func playingWaves(w *world) *WaveSystem {
	w.ecs.GameState.Phase = component.PhasePlaying
	return NewWaveSystem(w.ecs, w.spawner, w.rng, w.dispatcher)
}

func killEnemies(w *world) {
	w.ecs.Flush()
	for _, e := range w.ecs.Enemies {
		e.Kill()
	}
	for _, g := range w.ecs.Goliaths {
		g.Kill()
	}
}

func TestWaveSpawnsOnceAndAdvancesWhenCleared(t *testing.T) {
	w := newWorld(1)
	ws := playingWaves(w)
	events := w.collect(event.WaveStarted, event.WaveCleared)

	ws.Update(0)
	w.ecs.Flush()
	if len(w.ecs.Enemies) != config.InitialWaveEnemies {
		t.Fatalf("Expected %d enemies, got %d", config.InitialWaveEnemies, len(w.ecs.Enemies))
	}
	ws.Update(1)
	if countType(*events, event.WaveStarted) != 1 {
		t.Fatal("wave must not respawn while enemies are alive")
	}

	killEnemies(w)
	ws.Update(2)
	if countType(*events, event.WaveCleared) != 1 || countType(*events, event.WaveStarted) != 2 {
		t.Errorf("Expected one clear and a new wave, got %v", *events)
	}
	if w.ecs.GameState.Wave != 2 {
		t.Errorf("Expected wave 2, got %d", w.ecs.GameState.Wave)
	}
}

func TestLastWaveSummonsOneBoss(t *testing.T) {
	w := newWorld(1)
	ws := playingWaves(w)
	events := w.collect(event.BossSpawned)
	w.ecs.GameState.Wave = config.WavesPerSector

	ws.Update(0)
	killEnemies(w)
	ws.Update(1)
	w.ecs.Flush()

	if !w.ecs.GameState.BossFight || len(w.ecs.Bosses) != 1 {
		t.Fatalf("Expected a boss fight with one boss, got fight=%v bosses=%d", w.ecs.GameState.BossFight, len(w.ecs.Bosses))
	}
	ws.Update(2)
	ws.Update(3)
	if countType(*events, event.BossSpawned) != 1 {
		t.Errorf("boss must spawn exactly once, got %d", countType(*events, event.BossSpawned))
	}
}

func TestAdvancingPortalHoldsWaves(t *testing.T) {
	w := newWorld(1)
	ws := playingWaves(w)
	events := w.collect(event.WaveCleared)

	ws.Update(0)
	killEnemies(w)
	w.spawner.Portal(400, 400, true, 0)
	w.ecs.Flush()
	ws.Update(1)

	if len(*events) != 0 || w.ecs.GameState.Wave != 1 {
		t.Errorf("open exit portal must hold the next wave, got %d clears, wave %d", len(*events), w.ecs.GameState.Wave)
	}
}

func TestSectorAdvanceStartsFreshWave(t *testing.T) {
	w := newWorld(1)
	ws := playingWaves(w)
	events := w.collect(event.WaveStarted)

	ws.Update(0)
	w.ecs.Clear()
	w.dispatcher.Dispatch(event.Event{Type: event.SectorAdvanced, Data: 2})
	ws.Update(1)

	if countType(*events, event.WaveStarted) != 2 {
		t.Errorf("new sector must start its first wave, got %d starts", countType(*events, event.WaveStarted))
	}
}

func TestWavesFrozenOutsidePlay(t *testing.T) {
	w := newWorld(1)
	ws := playingWaves(w)
	w.ecs.GameState.Phase = component.PhaseShop

	ws.Update(0)
	w.ecs.Flush()
	if len(w.ecs.Enemies) != 0 {
		t.Errorf("no wave may spawn in the shop, got %d enemies", len(w.ecs.Enemies))
	}
}
