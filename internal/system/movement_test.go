package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/input"
	"go-bubble-shooter/internal/utils"
)

func rectOf(x, y, w, h int) utils.Rect {
	return utils.NewRect(x, y, w, h)
}

func newActor(x int, angle float64) *component.Actor {
	return &component.Actor{Rect: rectOf(x, 470, 30, 50), Speed: 5, Angle: angle}
}

func TestUpdateActorMovesAndClamps(t *testing.T) {
	s := NewMovementSystem()

	a := newActor(40, 45)
	s.UpdateActor(a, input.Keys{MoveRight: true})
	assert.Equal(t, 45, a.Rect.X)

	a = newActor(3, 45)
	s.UpdateActor(a, input.Keys{MoveLeft: true})
	assert.Equal(t, 0, a.Rect.X)

	a = newActor(868, 45)
	s.UpdateActor(a, input.Keys{MoveRight: true})
	assert.Equal(t, 870, a.Rect.X)

	a = newActor(100, 45)
	s.UpdateActor(a, input.Keys{MoveLeft: true, MoveRight: true})
	assert.Equal(t, 100, a.Rect.X, "opposite keys cancel")
}

func TestUpdateActorWrapsAngle(t *testing.T) {
	s := NewMovementSystem()

	a := newActor(40, 0)
	s.UpdateActor(a, input.Keys{RotateDown: true})
	assert.Equal(t, 358.0, a.Angle)

	a = newActor(40, 359)
	s.UpdateActor(a, input.Keys{RotateUp: true})
	assert.Equal(t, 1.0, a.Angle)

	a = newActor(40, 45)
	s.UpdateActor(a, input.Keys{})
	assert.Equal(t, 45.0, a.Angle)
}

func TestActorStaysInsideArena(t *testing.T) {
	s := NewMovementSystem()
	rapid.Check(t, func(t *rapid.T) {
		a := newActor(rapid.IntRange(0, 870).Draw(t, "x"), rapid.Float64Range(0, 359.9).Draw(t, "angle"))
		steps := rapid.IntRange(1, 400).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			s.UpdateActor(a, input.Keys{
				MoveLeft:   rapid.Bool().Draw(t, "left"),
				MoveRight:  rapid.Bool().Draw(t, "right"),
				RotateUp:   rapid.Bool().Draw(t, "up"),
				RotateDown: rapid.Bool().Draw(t, "down"),
			})
			if a.Rect.X < 0 || a.Rect.X > 870 {
				t.Fatalf("actor left arena: x=%d", a.Rect.X)
			}
			if a.Angle < 0 || a.Angle >= 360 {
				t.Fatalf("angle out of range: %v", a.Angle)
			}
		}
	})
}

func TestUpdatePatrollers(t *testing.T) {
	s := NewMovementSystem()
	patrollers := []component.Patroller{
		{Rect: rectOf(519, 305, 30, 35), Speed: 1, Left: 210, Right: 520, Dir: 1, Alive: true},
		{Rect: rectOf(540, 395, 30, 35), Alive: true},
		{Rect: rectOf(300, 305, 30, 35), Speed: 2, Left: 210, Right: 520, Dir: 1, Alive: false},
	}

	s.UpdatePatrollers(patrollers)
	assert.Equal(t, 520, patrollers[0].Rect.X)
	assert.Equal(t, 1, patrollers[0].Dir, "x == right is still inside")

	s.UpdatePatrollers(patrollers)
	assert.Equal(t, 521, patrollers[0].Rect.X, "flip happens after the step")
	assert.Equal(t, -1, patrollers[0].Dir)

	s.UpdatePatrollers(patrollers)
	assert.Equal(t, 520, patrollers[0].Rect.X)

	assert.Equal(t, 540, patrollers[1].Rect.X, "stationary")
	assert.Equal(t, 300, patrollers[2].Rect.X, "dead targets stay put")
}
