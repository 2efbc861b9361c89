// internal/system/state.go
package system

import (
	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/entity"
	"go-bubble-shooter/internal/event"
)

// StateSystem переводит раунд в WON или LOST
type StateSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{eventDispatcher: eventDispatcher}
}

// Check вызывается в конце тика. Победа проверяется раньше поражения:
// если последний патрон убил последнюю цель, раунд выигран.
func (s *StateSystem) Check(round *entity.Round) component.Phase {
	if round.Phase != component.Playing {
		return round.Phase
	}
	switch {
	case round.AllPatrollersDead():
		s.switchTo(round, component.Won, event.RoundWon)
	case round.Ammo == 0 && len(round.Projectiles) == 0:
		s.switchTo(round, component.Lost, event.RoundLost)
	}
	return round.Phase
}

func (s *StateSystem) switchTo(round *entity.Round, phase component.Phase, t event.EventType) {
	round.Phase = phase
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: RoundData(round)})
}

// RoundData собирает сводку раунда для событий.
func RoundData(round *entity.Round) event.RoundData {
	return event.RoundData{
		RoundID: round.ID.String(),
		Ammo:    round.Ammo,
		Phase:   round.Phase.String(),
	}
}
