// internal/interfaces/shell.go
package interfaces

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -source=shell.go -destination=mocks/shell_mock.go -package=mocks

import (
	"image/color"

	"go-bubble-shooter/internal/input"
)

// Renderer — то, что симуляция требует от графической оболочки.
// Координаты в пикселях арены, (0,0) — левый верхний угол.
type Renderer interface {
	DrawRect(x, y, w, h float64, clr color.RGBA)
	DrawCircle(cx, cy, radius float64, clr color.RGBA)
	DrawText(text string, x, y float64, clr color.RGBA)
	PresentFrame()
}

// InputSource — оболочка ввода: снимок клавиш и разовые действия с прошлого тика.
type InputSource interface {
	Keys() input.Keys
	DrainActions() []input.Action
}

// Clock — монотонные часы в миллисекундах.
type Clock interface {
	NowMillis() int64
}
