// internal/system/state.go
package system

import (
	"go-space-fighter/internal/clock"
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/entity"
	"go-space-fighter/internal/event"
	"go-space-fighter/internal/sound"
	"log"
)

// StateSystem переводит забег между фазами по событиям ядра: гибель босса
// открывает портал, вход в портал ведёт в магазин или к следующему сектору,
// гибель игрока завершает забег.
type StateSystem struct {
	ecs             *entity.ECS
	spawner         *Spawner
	eventDispatcher *event.Dispatcher
	clock           clock.Clock
}

func NewStateSystem(ecs *entity.ECS, spawner *Spawner, eventDispatcher *event.Dispatcher, clk clock.Clock) *StateSystem {
	ss := &StateSystem{
		ecs:             ecs,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
		clock:           clk,
	}
	eventDispatcher.Subscribe(event.BossDefeated, ss)
	eventDispatcher.Subscribe(event.MiniBossDefeated, ss)
	eventDispatcher.Subscribe(event.PortalEntered, ss)
	eventDispatcher.Subscribe(event.PlayerDied, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.BossDefeated:
		info, _ := e.Data.(event.BossInfo)
		s.onBossDefeated(info)
	case event.MiniBossDefeated:
		info, _ := e.Data.(event.BossInfo)
		s.spawner.Portal(info.X, info.Y, false, s.clock.Now())
		log.Printf("Mini-boss destroyed, supply portal opened")
	case event.PortalEntered:
		portal, _ := e.Data.(event.Portal)
		s.onPortalEntered(portal)
	case event.PlayerDied:
		s.ecs.GameState.EnterGameOver()
		log.Printf("Game over: score %d, max combo x%d", s.ecs.GameState.Score, s.ecs.GameState.MaxCombo)
		playSound(s.eventDispatcher, sound.GameOver)
	}
}

// onBossDefeated снимает флаг боя с боссом и открывает ровно один портал.
func (s *StateSystem) onBossDefeated(info event.BossInfo) {
	gs := s.ecs.GameState
	gs.BossFight = false
	log.Printf("%s defeated in sector %d", info.Name, info.Sector)
	for _, p := range s.ecs.Portals {
		if p.Alive() && p.Advances {
			return
		}
	}
	s.spawner.Portal(info.X, info.Y, true, s.clock.Now())
}

func (s *StateSystem) onPortalEntered(portal event.Portal) {
	gs := s.ecs.GameState
	s.ecs.ClearPlayerBullets()
	if !portal.Advances {
		gs.Phase = component.PhaseShop
		return
	}
	// остатки поля боя в новый сектор не переносятся
	s.ecs.Clear()
	if gs.NextSector() {
		s.eventDispatcher.Dispatch(event.Event{Type: event.SectorAdvanced, Data: gs.Sector})
		s.eventDispatcher.Dispatch(event.Event{Type: event.Victory})
		playSound(s.eventDispatcher, sound.Victory)
		return
	}
	log.Printf("Entering sector %d", gs.Sector)
	s.eventDispatcher.Dispatch(event.Event{Type: event.SectorAdvanced, Data: gs.Sector})
	gs.Phase = component.PhaseShop
}
