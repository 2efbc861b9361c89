// internal/system/movement.go
package system

import (
	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/input"
	"go-bubble-shooter/internal/utils"
	putils "go-bubble-shooter/pkg/utils"
)

// MovementSystem двигает игрока по вводу и цели по их маршрутам
type MovementSystem struct {
	arenaWidth int
	aimStep    float64
}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{
		arenaWidth: config.ScreenWidth,
		aimStep:    config.AimStep,
	}
}

// UpdateActor применяет снимок клавиш к игроку. Столкновений у игрока нет.
func (s *MovementSystem) UpdateActor(actor *component.Actor, keys input.Keys) {
	if actor == nil {
		return
	}
	if keys.MoveLeft {
		actor.Rect.X -= actor.Speed
	}
	if keys.MoveRight {
		actor.Rect.X += actor.Speed
	}
	actor.Rect.X = putils.Clamp(actor.Rect.X, 0, s.arenaWidth-actor.Rect.W)

	if keys.RotateUp {
		actor.Angle += s.aimStep
	}
	if keys.RotateDown {
		actor.Angle -= s.aimStep
	}
	actor.Angle = utils.NormalizeDegrees(actor.Angle)
}

// UpdatePatrollers двигает живые подвижные цели туда-обратно.
// Направление меняется после шага, когда X вышел за [Left, Right].
func (s *MovementSystem) UpdatePatrollers(patrollers []component.Patroller) {
	for i := range patrollers {
		p := &patrollers[i]
		if !p.Alive || p.Speed == 0 {
			continue
		}
		p.Rect.X += p.Speed * p.Dir
		if p.Rect.X < p.Left || p.Rect.X > p.Right {
			p.Dir = -p.Dir
		}
	}
}
