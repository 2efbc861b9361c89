// internal/input/input.go
package input

// Keys — снимок удерживаемых клавиш, берётся один раз за тик.
type Keys struct {
	MoveLeft   bool
	MoveRight  bool
	RotateUp   bool // увеличивает угол прицела
	RotateDown bool // уменьшает угол прицела
}

// Action — разовое действие, срабатывает по нажатию, а не по удержанию.
type Action int

const (
	Fire Action = iota
	Reset
)

func (a Action) String() string {
	switch a {
	case Fire:
		return "fire"
	case Reset:
		return "reset"
	}
	return "unknown"
}

// Queue накапливает разовые действия между тиками.
// Каждое действие выдаётся из Drain ровно один раз.
type Queue struct {
	pending []Action
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push добавляет действие в конец очереди.
func (q *Queue) Push(a Action) {
	q.pending = append(q.pending, a)
}

// Drain забирает все накопленные действия и очищает очередь.
func (q *Queue) Drain() []Action {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

// Len — сколько действий ждёт обработки.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Frame — ввод одного тика: снимок клавиш и разобранные разовые действия.
type Frame struct {
	Keys        Keys
	FireCount   int
	ResetWanted bool
}

// NewFrame раскладывает действия очереди по полям кадра.
func NewFrame(keys Keys, actions []Action) Frame {
	f := Frame{Keys: keys}
	for _, a := range actions {
		switch a {
		case Fire:
			f.FireCount++
		case Reset:
			f.ResetWanted = true
		}
	}
	return f
}
