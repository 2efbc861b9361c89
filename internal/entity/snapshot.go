// internal/entity/snapshot.go
package entity

import (
	"go-bubble-shooter/internal/component"
)

// Snapshot — копия раунда для отрисовки. Изменения в ней на раунд не влияют.
type Snapshot struct {
	RoundID     string
	Actor       component.Actor
	Obstacles   []component.Obstacle
	Patrollers  []component.Patroller
	Projectiles []component.Projectile
	Ammo        int
	Phase       component.Phase
}

// Snapshot снимает копию текущего состояния раунда.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		RoundID:     r.ID.String(),
		Obstacles:   append([]component.Obstacle(nil), r.Obstacles...),
		Patrollers:  append([]component.Patroller(nil), r.Patrollers...),
		Projectiles: make([]component.Projectile, 0, len(r.Projectiles)),
		Ammo:        r.Ammo,
		Phase:       r.Phase,
	}
	if r.Actor != nil {
		snap.Actor = *r.Actor
	}
	for _, p := range r.Projectiles {
		snap.Projectiles = append(snap.Projectiles, *p)
	}
	return snap
}
