// internal/system/combat.go
package system

import (
	"go-bubble-shooter/internal/entity"
	"go-bubble-shooter/internal/event"
	"go-bubble-shooter/internal/utils"
)

// CombatSystem проверяет попадания снарядов в цели
type CombatSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{eventDispatcher: eventDispatcher}
}

// ResolveHits проверяет каждую пару «живой снаряд — живая цель» независимо.
// Один снаряд может убить несколько целей за тик; снаряд после попадания летит дальше.
// Возвращает число убитых за вызов целей.
func (s *CombatSystem) ResolveHits(round *entity.Round) int {
	killed := 0
	for _, p := range round.Projectiles {
		if !p.Alive {
			continue
		}
		box := p.Rect()
		for i := range round.Patrollers {
			target := &round.Patrollers[i]
			if !target.Alive || !utils.Intersects(box, target.Rect) {
				continue
			}
			target.Alive = false
			killed++
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.PatrollerKilled,
				Data: event.PatrollerData{RoundID: round.ID.String(), Index: i, Left: round.AlivePatrollers()},
			})
		}
	}
	return killed
}
