// internal/state/game_state.go
package state

import (
	game "go-bubble-shooter/internal/app"
	"go-bubble-shooter/internal/interfaces"
	"go-bubble-shooter/internal/utils"
)

// PauseSource сообщает, что игрок нажал клавишу паузы.
type PauseSource interface {
	PauseRequested() bool
}

// PlayState — идёт симуляция, один тик на кадр
type PlayState struct {
	sm      *StateMachine
	game    *game.Game
	ctx     *game.Context
	clock   *utils.GameClock
	pause   PauseSource
	onPause func(paused bool)
}

// NewPlayState связывает игру с вводом. Время раунда считается по clock,
// поэтому на паузе снаряды не стареют.
func NewPlayState(sm *StateMachine, g *game.Game, in interfaces.InputSource, pause PauseSource, onPause func(paused bool)) *PlayState {
	clock := utils.NewGameClock()
	return &PlayState{
		sm:      sm,
		game:    g,
		ctx:     &game.Context{Input: in, Clock: clock},
		clock:   clock,
		pause:   pause,
		onPause: onPause,
	}
}

func (s *PlayState) Enter() {
	if s.onPause != nil {
		s.onPause(false)
	}
}

func (s *PlayState) Update(deltaTime float64) {
	if s.pause != nil && s.pause.PauseRequested() {
		s.sm.SetState(NewPauseState(s.sm, s, s.pause))
		return
	}
	s.clock.Advance(deltaTime)
	s.game.Tick(s.ctx)
}

func (s *PlayState) Draw(r interfaces.Renderer) {
	s.game.RenderSystem.Draw(r, s.game.Snapshot())
}

func (s *PlayState) Exit() {
	if s.onPause != nil {
		s.onPause(true)
	}
}

// Game возвращает симуляцию, которой управляет состояние.
func (s *PlayState) Game() *game.Game {
	return s.game
}
