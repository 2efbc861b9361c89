// pkg/render/ebitenshell/input.go
package ebitenshell

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-bubble-shooter/internal/input"
)

// Input samples the keyboard once per ebiten Update.
// A/D move, J/L aim, Space fires, R resets, P pauses, Esc quits.
type Input struct {
	queue *input.Queue
}

func NewInput() *Input {
	return &Input{queue: input.NewQueue()}
}

func (in *Input) Keys() input.Keys {
	return input.Keys{
		MoveLeft:   ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight:  ebiten.IsKeyPressed(ebiten.KeyD),
		RotateUp:   ebiten.IsKeyPressed(ebiten.KeyJ),
		RotateDown: ebiten.IsKeyPressed(ebiten.KeyL),
	}
}

// DrainActions returns the one-shot presses of this frame. Each press is reported once.
func (in *Input) DrainActions() []input.Action {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.queue.Push(input.Fire)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.queue.Push(input.Reset)
	}
	return in.queue.Drain()
}

func (in *Input) PauseRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}

func (in *Input) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
