// internal/state/game_state.go
package state

import (
	"go-space-fighter/internal/app"
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/input"
	"go-space-fighter/pkg/render"
)

// GameState - основной игровой режим: тик симуляции и переход в модальные
// окна по фазе забега.
type GameState struct {
	sm   *StateMachine
	game *app.Game
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	return &GameState{sm: sm, game: game}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(in input.State) {
	if in.Pause {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.game.Tick(in)

	switch g.game.State().Phase {
	case component.PhaseShop:
		g.sm.SetState(NewShopState(g.sm, g.game, g))
	case component.PhaseGameOver:
		g.sm.SetState(NewGameOverState(g.sm, g.game))
	case component.PhaseVictory:
		g.sm.SetState(NewVictoryState(g.sm, g.game))
	}
}

func (g *GameState) Draw(s render.Surface) {
	g.game.Draw(s)
}

func (g *GameState) Exit() {}
