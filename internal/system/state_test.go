package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/event"
)

func TestStateCheck(t *testing.T) {
	alive := component.Patroller{Rect: rectOf(600, 480, 30, 35), Alive: true}
	dead := component.Patroller{Rect: rectOf(600, 480, 30, 35)}

	tests := []struct {
		name        string
		ammo        int
		projectiles int
		patrollers  []component.Patroller
		want        component.Phase
	}{
		{"still playing", 2, 0, []component.Patroller{alive}, component.Playing},
		{"projectile in flight", 0, 1, []component.Patroller{alive}, component.Playing},
		{"out of ammo", 0, 0, []component.Patroller{alive, dead}, component.Lost},
		{"all dead", 1, 1, []component.Patroller{dead, dead}, component.Won},
		{"last shot wins", 0, 0, []component.Patroller{dead}, component.Won},
		{"no targets at all", 3, 0, nil, component.Won},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := event.NewDispatcher()
			seen := recordEvents(d)
			s := NewStateSystem(d)
			r := newTestRound(tt.ammo)
			r.Patrollers = tt.patrollers
			for i := 0; i < tt.projectiles; i++ {
				addProjectile(r, 400, 200, 1, 1, 0)
			}

			assert.Equal(t, tt.want, s.Check(r))
			assert.Equal(t, tt.want, r.Phase)
			assert.Equal(t, tt.want == component.Won, seen[event.RoundWon] == 1)
			assert.Equal(t, tt.want == component.Lost, seen[event.RoundLost] == 1)
		})
	}
}

func TestStateCheckTerminalIsSticky(t *testing.T) {
	d := event.NewDispatcher()
	seen := recordEvents(d)
	s := NewStateSystem(d)
	r := newTestRound(0)
	r.Phase = component.Lost
	r.Patrollers = nil

	assert.Equal(t, component.Lost, s.Check(r))
	assert.Zero(t, seen[event.RoundWon])
	assert.Zero(t, seen[event.RoundLost])
}
