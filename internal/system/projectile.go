// internal/system/projectile.go
package system

import (
	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/entity"
	"go-bubble-shooter/internal/event"
	"go-bubble-shooter/internal/utils"
)

// ProjectileSystem управляет движением снарядов, отскоками и временем жизни
type ProjectileSystem struct {
	eventDispatcher *event.Dispatcher
	width           int
	groundY         int
	edgeThreshold   int
	lifetimeMs      int64
	speed           float64
}

func NewProjectileSystem(eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		eventDispatcher: eventDispatcher,
		width:           config.ScreenWidth,
		groundY:         config.GroundY,
		edgeThreshold:   config.EdgeThreshold,
		lifetimeMs:      config.ProjectileLifetimeMs,
		speed:           config.ProjectileSpeed,
	}
}

// Fire выпускает снаряд из центра игрока по углу прицела и тратит один патрон.
// Возвращает false, если раунд не идёт или патроны кончились.
func (s *ProjectileSystem) Fire(round *entity.Round, now int64) bool {
	if round.Phase != component.Playing || round.Ammo <= 0 {
		return false
	}
	cx, cy := round.Actor.Center()
	dx, dy := utils.AimVector(round.Actor.Angle)
	p := &component.Projectile{
		ID:        round.NewEntity(),
		Position:  component.Position{X: float64(cx), Y: float64(cy)},
		Velocity:  component.Velocity{VX: dx * s.speed, VY: dy * s.speed},
		SpawnedAt: now,
		Alive:     true,
	}
	round.Projectiles = append(round.Projectiles, p)
	round.Ammo--

	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: projectileData(round, p)})
	return true
}

// Update двигает все снаряды раунда на один тик.
func (s *ProjectileSystem) Update(round *entity.Round, now int64) {
	for _, p := range round.Projectiles {
		s.step(round, p, now)
	}
}

func (s *ProjectileSystem) step(round *entity.Round, p *component.Projectile, now int64) {
	p.X += p.VX
	p.Y += p.VY

	box := p.Rect()
	bounced := bounceOffArena(p, box, s.width, s.groundY)

	for i := range round.Obstacles {
		wall := round.Obstacles[i].Rect
		if utils.Intersects(box, wall) {
			bounceOffObstacle(p, box, wall, s.edgeThreshold)
			bounced = true
		}
	}
	if bounced {
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileBounced, Data: projectileData(round, p)})
	}

	if p.Alive && now-p.SpawnedAt > s.lifetimeMs {
		p.Alive = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExpired, Data: projectileData(round, p)})
	}
}

// RemoveDead убирает снаряды с Alive == false, сохраняя порядок остальных.
func (s *ProjectileSystem) RemoveDead(round *entity.Round) {
	alive := round.Projectiles[:0]
	for _, p := range round.Projectiles {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(round.Projectiles); i++ {
		round.Projectiles[i] = nil
	}
	round.Projectiles = alive
}

func projectileData(round *entity.Round, p *component.Projectile) event.ProjectileData {
	return event.ProjectileData{
		RoundID: round.ID.String(),
		ID:      uint32(p.ID),
		X:       p.X,
		Y:       p.Y,
	}
}
