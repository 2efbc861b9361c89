package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/defs"
	"go-bubble-shooter/internal/entity"
	"go-bubble-shooter/internal/event"
)

// newTestRound строит раунд без стен и целей: только игрок и патроны.
func newTestRound(ammo int) *entity.Round {
	return entity.NewRound(defs.LevelDefinition{
		ID:    "TEST",
		Ammo:  ammo,
		Actor: defs.ActorDef{X: 40, Angle: 45},
	})
}

// recordEvents подписывает счётчик на все типы событий.
func recordEvents(d *event.Dispatcher) map[event.EventType]int {
	seen := make(map[event.EventType]int)
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { seen[e.Type]++ }),
		event.ProjectileFired,
		event.ProjectileBounced,
		event.ProjectileExpired,
		event.PatrollerKilled,
		event.RoundWon,
		event.RoundLost,
	)
	return seen
}

func addProjectile(r *entity.Round, x, y, vx, vy float64, spawnedAt int64) *component.Projectile {
	p := &component.Projectile{
		ID:        r.NewEntity(),
		Position:  component.Position{X: x, Y: y},
		Velocity:  component.Velocity{VX: vx, VY: vy},
		SpawnedAt: spawnedAt,
		Alive:     true,
	}
	r.Projectiles = append(r.Projectiles, p)
	return p
}

func TestFireSpawnsFromActorCenter(t *testing.T) {
	d := event.NewDispatcher()
	seen := recordEvents(d)
	s := NewProjectileSystem(d)
	r := newTestRound(3)

	require.True(t, s.Fire(r, 1234))
	require.Len(t, r.Projectiles, 1)
	assert.Equal(t, 2, r.Ammo)

	p := r.Projectiles[0]
	assert.Equal(t, 55.0, p.X)
	assert.Equal(t, 495.0, p.Y)
	assert.InDelta(t, 10*math.Sqrt2/2, p.VX, 1e-9)
	assert.InDelta(t, -10*math.Sqrt2/2, p.VY, 1e-9)
	assert.Equal(t, int64(1234), p.SpawnedAt)
	assert.True(t, p.Alive)
	assert.Equal(t, 1, seen[event.ProjectileFired])
}

func TestFireIgnoredWithoutAmmoOrWhenRoundOver(t *testing.T) {
	s := NewProjectileSystem(nil)

	empty := newTestRound(0)
	assert.False(t, s.Fire(empty, 0))
	assert.Empty(t, empty.Projectiles)
	assert.Equal(t, 0, empty.Ammo)

	won := newTestRound(3)
	won.Phase = component.Won
	assert.False(t, s.Fire(won, 0))
	assert.Empty(t, won.Projectiles)
	assert.Equal(t, 3, won.Ammo)
}

func TestUpdateMovesByVelocity(t *testing.T) {
	s := NewProjectileSystem(nil)
	r := newTestRound(0)
	p := addProjectile(r, 100, 100, 3.5, -2.25, 0)

	s.Update(r, 16)

	assert.Equal(t, 103.5, p.X)
	assert.Equal(t, 97.75, p.Y)
	assert.Equal(t, 3.5, p.VX)
	assert.Equal(t, -2.25, p.VY)
}

func TestArenaBounce(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantVX, wantVY float64
	}{
		{"left wall", 2, 100, -10, 0, 10, 0},
		{"right wall", 880, 100, 10, 0, -10, 0},
		{"ceiling", 100, 5, 0, -10, 0, 10},
		{"ground line", 100, 500, 0, 10, 0, -10},
		{"corner flips both axes", 3, 3, -10, -10, 10, 10},
		{"open field", 400, 200, 10, 10, 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := event.NewDispatcher()
			seen := recordEvents(d)
			s := NewProjectileSystem(d)
			r := newTestRound(0)
			p := addProjectile(r, tt.x, tt.y, tt.vx, tt.vy, 0)

			s.Update(r, 0)

			assert.Equal(t, tt.wantVX, p.VX)
			assert.Equal(t, tt.wantVY, p.VY)
			bounced := tt.wantVX != tt.vx || tt.wantVY != tt.vy
			assert.Equal(t, bounced, seen[event.ProjectileBounced] == 1)
		})
	}
}

func TestObstacleBounceChoosesAxisByEdgeProximity(t *testing.T) {
	s := NewProjectileSystem(nil)

	t.Run("side hit flips horizontal", func(t *testing.T) {
		r := newTestRound(0)
		r.Obstacles = []component.Obstacle{{Rect: rectOf(300, 200, 20, 100)}}
		p := addProjectile(r, 280, 250, 10, 0, 0)

		s.Update(r, 0)

		assert.Equal(t, -10.0, p.VX)
		assert.Equal(t, 0.0, p.VY)
	})

	t.Run("top hit flips vertical", func(t *testing.T) {
		r := newTestRound(0)
		r.Obstacles = []component.Obstacle{{Rect: rectOf(300, 200, 100, 20)}}
		p := addProjectile(r, 340, 180, 0, 10, 0)

		s.Update(r, 0)

		assert.Equal(t, 0.0, p.VX)
		assert.Equal(t, -10.0, p.VY)
	})

	t.Run("each overlapping obstacle flips once", func(t *testing.T) {
		r := newTestRound(0)
		r.Obstacles = []component.Obstacle{
			{Rect: rectOf(300, 200, 100, 20)},
			{Rect: rectOf(330, 195, 100, 20)},
		}
		p := addProjectile(r, 340, 180, 0, 10, 0)

		s.Update(r, 0)

		assert.Equal(t, 10.0, p.VY, "two vertical flips cancel out")
	})
}

func TestLifetimeExpiry(t *testing.T) {
	d := event.NewDispatcher()
	seen := recordEvents(d)
	s := NewProjectileSystem(d)
	r := newTestRound(0)
	p := addProjectile(r, 400, 200, 1, 0, 1000)

	s.Update(r, 7000)
	assert.True(t, p.Alive, "exactly the lifetime is still alive")

	s.Update(r, 7001)
	assert.False(t, p.Alive)
	assert.Equal(t, 1, seen[event.ProjectileExpired])
	require.Len(t, r.Projectiles, 1, "expired projectiles stay until cleanup")

	s.RemoveDead(r)
	assert.Empty(t, r.Projectiles)
}

func TestRemoveDeadKeepsOrder(t *testing.T) {
	s := NewProjectileSystem(nil)
	r := newTestRound(0)
	a := addProjectile(r, 100, 100, 0, 0, 0)
	b := addProjectile(r, 200, 100, 0, 0, 0)
	c := addProjectile(r, 300, 100, 0, 0, 0)
	b.Alive = false

	s.RemoveDead(r)

	assert.Equal(t, []*component.Projectile{a, c}, r.Projectiles)
}
