// internal/state/end_state.go
package state

import (
	"fmt"

	"go-space-fighter/internal/app"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/input"
	"go-space-fighter/pkg/render"
)

// GameOverState - итоги проигранного забега.
type GameOverState struct {
	sm   *StateMachine
	game *app.Game
}

func NewGameOverState(sm *StateMachine, game *app.Game) *GameOverState {
	return &GameOverState{sm: sm, game: game}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(in input.State) {
	if in.Confirm || in.Back {
		s.sm.SetState(NewMenuState(s.sm, s.game))
	}
}

func (s *GameOverState) Draw(screen render.Surface) {
	s.game.Draw(screen)
	dim(screen)
	title(screen, "GAME OVER", 260, config.ExpensiveColor)
	summary(screen, s.game, 360)
	screen.DrawText("Enter for menu", 18, config.ScreenWidth/2, 560, config.TextColor)
}

func (s *GameOverState) Exit() {}

// VictoryState - все секторы пройдены. Можно продолжить в бесконечном режиме.
type VictoryState struct {
	sm   *StateMachine
	game *app.Game
}

func NewVictoryState(sm *StateMachine, game *app.Game) *VictoryState {
	return &VictoryState{sm: sm, game: game}
}

func (s *VictoryState) Enter() {}

func (s *VictoryState) Update(in input.State) {
	switch {
	case in.Confirm:
		s.game.ContinueEndless()
		s.sm.SetState(NewGameState(s.sm, s.game))
	case in.Back:
		s.sm.SetState(NewMenuState(s.sm, s.game))
	}
}

func (s *VictoryState) Draw(screen render.Surface) {
	s.game.Draw(screen)
	dim(screen)
	title(screen, "VICTORY", 260, config.HighlightColor)
	summary(screen, s.game, 360)
	screen.DrawText("Enter for endless mode, Esc for menu", 18, config.ScreenWidth/2, 560, config.TextColor)
}

func (s *VictoryState) Exit() {}

func summary(screen render.Surface, game *app.Game, y float64) {
	gs := game.State()
	lines := []string{
		fmt.Sprintf("Score %d", gs.Score),
		fmt.Sprintf("High score %d", gs.HighScore),
		fmt.Sprintf("Max combo x%d", gs.MaxCombo),
		fmt.Sprintf("Sector %d", gs.Sector),
	}
	for i, line := range lines {
		screen.DrawText(line, 22, config.ScreenWidth/2, y+float64(i)*34, config.TextColor)
	}
}
