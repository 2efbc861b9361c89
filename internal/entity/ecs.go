// internal/entity/ecs.go
package entity

import (
	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/defs"
	"go-bubble-shooter/internal/types"
	"go-bubble-shooter/internal/utils"

	"github.com/google/uuid"
)

// Round — всё состояние одного раунда. Владелец — симуляция (app.Game).
// При сбросе раунд не чистится по частям, а целиком заменяется новым из NewRound.
type Round struct {
	ID          uuid.UUID
	NextID      types.EntityID
	Actor       *component.Actor
	Obstacles   []component.Obstacle
	Patrollers  []component.Patroller // фиксированный набор, индекс = позиция в уровне
	Projectiles []*component.Projectile
	Ammo        int
	Phase       component.Phase
}

// NewRound строит свежий раунд по определению уровня.
func NewRound(level defs.LevelDefinition) *Round {
	r := &Round{
		ID:          uuid.New(),
		NextID:      1,
		Obstacles:   make([]component.Obstacle, 0, len(level.Obstacles)),
		Patrollers:  make([]component.Patroller, 0, len(level.Patrollers)),
		Projectiles: nil,
		Ammo:        level.Ammo,
		Phase:       component.Playing,
	}

	r.Actor = &component.Actor{
		Rect:  utils.NewRect(level.Actor.X, config.GroundY-config.ActorHeight, config.ActorWidth, config.ActorHeight),
		Speed: config.ActorSpeed,
		Angle: utils.NormalizeDegrees(level.Actor.Angle),
	}

	for _, o := range level.Obstacles {
		r.Obstacles = append(r.Obstacles, component.Obstacle{Rect: utils.NewRect(o.X, o.Y, o.W, o.H)})
	}

	for _, p := range level.Patrollers {
		r.Patrollers = append(r.Patrollers, component.Patroller{
			ID:    r.NewEntity(),
			Rect:  utils.NewRect(p.X, p.Y, config.PatrollerWidth, config.PatrollerHeight),
			Speed: p.Speed,
			Left:  p.Left,
			Right: p.Right,
			Dir:   1,
			Alive: true,
		})
	}
	return r
}

func (r *Round) NewEntity() types.EntityID {
	id := r.NextID
	r.NextID++
	return id
}

// AllPatrollersDead — пустой набор целей тоже считается побеждённым.
func (r *Round) AllPatrollersDead() bool {
	for i := range r.Patrollers {
		if r.Patrollers[i].Alive {
			return false
		}
	}
	return true
}

// AlivePatrollers возвращает число живых целей.
func (r *Round) AlivePatrollers() int {
	n := 0
	for i := range r.Patrollers {
		if r.Patrollers[i].Alive {
			n++
		}
	}
	return n
}
