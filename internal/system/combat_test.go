package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/event"
)

func TestResolveHitsKillsEveryOverlappingTarget(t *testing.T) {
	d := event.NewDispatcher()
	var killed []event.PatrollerData
	d.Subscribe(event.PatrollerKilled, event.ListenerFunc(func(e event.Event) {
		killed = append(killed, e.Data.(event.PatrollerData))
	}))
	s := NewCombatSystem(d)

	r := newTestRound(0)
	r.Patrollers = []component.Patroller{
		{Rect: rectOf(100, 480, 30, 35), Alive: true},
		{Rect: rectOf(105, 480, 30, 35), Alive: true},
		{Rect: rectOf(600, 480, 30, 35), Alive: true},
	}
	p := addProjectile(r, 95, 495, 10, 0, 0)

	assert.Equal(t, 2, s.ResolveHits(r))

	assert.False(t, r.Patrollers[0].Alive)
	assert.False(t, r.Patrollers[1].Alive)
	assert.True(t, r.Patrollers[2].Alive)
	assert.True(t, p.Alive, "projectiles pass through targets")

	if assert.Len(t, killed, 2) {
		assert.Equal(t, 0, killed[0].Index)
		assert.Equal(t, 2, killed[0].Left)
		assert.Equal(t, 1, killed[1].Index)
		assert.Equal(t, 1, killed[1].Left)
	}
}

func TestResolveHitsIgnoresDeadAndTouching(t *testing.T) {
	s := NewCombatSystem(nil)
	r := newTestRound(0)
	r.Patrollers = []component.Patroller{
		{Rect: rectOf(100, 480, 30, 35), Alive: false},
		{Rect: rectOf(110, 480, 30, 35), Alive: true},
	}
	addProjectile(r, 95, 495, 10, 0, 0) // правый край 110 только касается второй цели

	assert.Equal(t, 0, s.ResolveHits(r))
	assert.True(t, r.Patrollers[1].Alive)

	dead := addProjectile(r, 115, 495, 10, 0, 0)
	dead.Alive = false
	assert.Equal(t, 0, s.ResolveHits(r))
}
