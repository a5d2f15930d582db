// internal/state/pause_state.go
package state

import (
	"go-space-fighter/internal/config"
	"go-space-fighter/internal/input"
	"go-space-fighter/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(in input.State) {
	if in.Pause || in.Back {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen render.Surface) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	dim(screen)
	title(screen, "PAUSED", config.ScreenHeight/2-40, config.TextColor)
	screen.DrawText("P to resume", 18, config.ScreenWidth/2, config.ScreenHeight/2+20, config.TextColor)
}

func (s *PauseState) Exit() {}
