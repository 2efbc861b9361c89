// pkg/render/raylibshell/input.go
package raylibshell

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"go-bubble-shooter/internal/input"
)

// Input reads raylib's keyboard state, which is refreshed by EndDrawing.
type Input struct {
	queue *input.Queue
}

func NewInput() *Input {
	return &Input{queue: input.NewQueue()}
}

func (in *Input) Keys() input.Keys {
	return input.Keys{
		MoveLeft:   rl.IsKeyDown(rl.KeyA),
		MoveRight:  rl.IsKeyDown(rl.KeyD),
		RotateUp:   rl.IsKeyDown(rl.KeyJ),
		RotateDown: rl.IsKeyDown(rl.KeyL),
	}
}

func (in *Input) DrainActions() []input.Action {
	if rl.IsKeyPressed(rl.KeySpace) {
		in.queue.Push(input.Fire)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		in.queue.Push(input.Reset)
	}
	return in.queue.Drain()
}
