// internal/component/game_state.go
package component

import (
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"log"
	"math"
)

// Phase - глобальная фаза игры.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseShop
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseShop:
		return "shop"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	}
	return "unknown"
}

// GameState - прогрессия забега: сектор, волна, очки, ресурсы, сложность.
type GameState struct {
	Phase          Phase
	Sector         int
	Wave           int
	WavesPerSector int
	WaveEnemies    int

	Score     int
	HighScore int
	Combo     int
	MaxCombo  int
	Resources int

	Difficulty     defs.Difficulty
	BossFight      bool
	Endless        bool
	BossesDefeated int

	Purchases map[defs.UpgradeID]int
}

// NewGameState создаёт состояние нового забега.
func NewGameState(difficulty defs.Difficulty) *GameState {
	s := &GameState{Difficulty: difficulty}
	s.Reset()
	return s
}

// Reset возвращает забег к началу. Рекорд и сложность сохраняются.
func (s *GameState) Reset() {
	s.Phase = PhaseMenu
	s.Sector = 1
	s.Wave = 1
	s.WavesPerSector = config.WavesPerSector
	s.WaveEnemies = config.InitialWaveEnemies
	s.Score = 0
	s.Combo = 1
	s.MaxCombo = 1
	s.Resources = 0
	s.BossFight = false
	s.Endless = false
	s.BossesDefeated = 0
	s.Purchases = make(map[defs.UpgradeID]int)
}

// Profile - таблица множителей текущей сложности.
func (s *GameState) Profile() defs.DifficultyProfile {
	return defs.Profile(s.Difficulty)
}

// NextWave переходит к следующей волне. Возвращает true ровно один раз:
// когда волны сектора закончились и пора звать босса.
func (s *GameState) NextWave() bool {
	if s.BossFight {
		return false
	}
	s.Wave++
	if s.Wave > s.WavesPerSector {
		s.BossFight = true
		return true
	}
	return false
}

// NextSector переводит забег в следующий сектор. true - игра пройдена.
func (s *GameState) NextSector() bool {
	s.Sector++
	s.Wave = 1
	s.BossFight = false
	s.Resources += config.SectorResourceBonus * s.Sector
	s.BossesDefeated++
	s.WaveEnemies += config.WaveEnemiesPerSector

	if s.Sector > config.FinalSector && !s.Endless {
		s.Phase = PhaseVictory
		log.Printf("Victory! Score %d, max combo x%d", s.Score, s.MaxCombo)
		return true
	}
	return false
}

// ContinueEndless продолжает забег после победы без ограничения секторов.
func (s *GameState) ContinueEndless() {
	s.Endless = true
	s.Phase = PhasePlaying
}

// RegisterKill начисляет очки с учётом комбо и увеличивает комбо.
func (s *GameState) RegisterKill(scoreValue, resources int) {
	s.Score += scoreValue * s.Combo
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	s.Resources += resources
}

// ResetCombo сбрасывает множитель в 1.
func (s *GameState) ResetCombo() {
	s.Combo = 1
}

// EnterGameOver переводит забег в конец игры; комбо всегда сбрасывается.
func (s *GameState) EnterGameOver() {
	s.Phase = PhaseGameOver
	s.ResetCombo()
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// Price - цена улучшения: base × (1 + 0.1 × покупок этого типа).
func (s *GameState) Price(def defs.UpgradeDefinition) int {
	n := s.Purchases[def.ID]
	return int(math.Round(float64(def.BaseCost) * (1 + config.PriceInflation*float64(n))))
}

// RecordPurchase списывает ресурсы и увеличивает счётчик покупок.
func (s *GameState) RecordPurchase(def defs.UpgradeDefinition, price int) {
	s.Resources -= price
	s.Purchases[def.ID]++
}
