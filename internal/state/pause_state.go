// internal/state/pause_state.go
package state

import (
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/interfaces"
	"go-bubble-shooter/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию и рисует поверх неё затемнение.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	pause         PauseSource
	overlay       *ui.PauseOverlay
}

func NewPauseState(sm *StateMachine, prevState State, pause PauseSource) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		pause:         pause,
		overlay:       ui.NewPauseOverlay(config.ScreenWidth, config.ScreenHeight),
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if s.pause != nil && s.pause.PauseRequested() {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(r interfaces.Renderer) {
	if s.previousState != nil {
		s.previousState.Draw(r)
	}
	s.overlay.Draw(r)
}

func (s *PauseState) Exit() {}
