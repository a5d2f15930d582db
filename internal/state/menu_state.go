// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-space-fighter/internal/app"
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/input"
	"go-space-fighter/internal/ui"
	"go-space-fighter/pkg/render"
)

var difficulties = []defs.Difficulty{defs.DifficultyEasy, defs.DifficultyNormal, defs.DifficultyHard}

// MenuState - выбор сложности перед забегом.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
	menu *ui.Menu
}

func NewMenuState(sm *StateMachine, game *app.Game) *MenuState {
	m := &MenuState{
		sm:   sm,
		game: game,
		menu: ui.NewMenu(360, 260, 60, 20, "Easy", "Normal", "Hard"),
	}
	for i, d := range difficulties {
		if d == game.State().Difficulty {
			m.menu.Selected = i
		}
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(in input.State) {
	switch {
	case in.MenuUp:
		m.menu.Move(-1)
	case in.MenuDown:
		m.menu.Move(1)
	case in.Confirm:
		m.game.Start(difficulties[m.menu.Selected])
		m.sm.SetState(NewGameState(m.sm, m.game))
	}
}

func (m *MenuState) Draw(s render.Surface) {
	title(s, "SPACE FIGHTER", 180, config.TextColor)
	s.DrawText("Select difficulty", 20, config.ScreenWidth/2, 280, config.TextColor)
	m.menu.Draw(s, nil)
	if hs := m.game.State().HighScore; hs > 0 {
		s.DrawText(fmt.Sprintf("High score %d", hs), 18, config.ScreenWidth/2, 640, config.HighlightColor)
	}
	s.DrawText("Arrows move  Space shoot  Shift shield  E dash  F portal  P pause", 14, config.ScreenWidth/2, 820, config.TextColor)
}

func (m *MenuState) Exit() {}
