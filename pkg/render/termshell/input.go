// pkg/render/termshell/input.go
package termshell

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-bubble-shooter/internal/input"
)

// DefaultHoldWindow — терминал не сообщает об отпускании клавиши, поэтому
// клавиша считается нажатой, пока приходят повторы с интервалом меньше окна.
const DefaultHoldWindow = 150 * time.Millisecond

// Input превращает события tcell в снимок клавиш и очередь действий.
type Input struct {
	queue     *input.Queue
	holdUntil map[rune]time.Time
	window    time.Duration
	now       func() time.Time
	quit      bool
}

func NewInput(window time.Duration, now func() time.Time) *Input {
	if now == nil {
		now = time.Now
	}
	return &Input{
		queue:     input.NewQueue(),
		holdUntil: make(map[rune]time.Time),
		window:    window,
		now:       now,
	}
}

// HandleEvent обрабатывает одно событие терминала.
func (in *Input) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch r := toLower(key.Rune()); r {
	case 'a', 'd', 'j', 'l':
		in.holdUntil[r] = in.now().Add(in.window)
	case ' ':
		in.queue.Push(input.Fire)
	case 'r':
		in.queue.Push(input.Reset)
	case 'q':
		in.quit = true
	}
}

func (in *Input) held(r rune) bool {
	until, ok := in.holdUntil[r]
	return ok && in.now().Before(until)
}

func (in *Input) Keys() input.Keys {
	return input.Keys{
		MoveLeft:   in.held('a'),
		MoveRight:  in.held('d'),
		RotateUp:   in.held('j'),
		RotateDown: in.held('l'),
	}
}

func (in *Input) DrainActions() []input.Action {
	return in.queue.Drain()
}

func (in *Input) QuitRequested() bool {
	return in.quit
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
