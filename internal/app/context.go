// internal/app/context.go
package app

import (
	"go-bubble-shooter/internal/interfaces"
)

// Context — ручки внешних оболочек, которые передаются в каждый тик
// вместо глобальных синглтонов окна, ввода и часов.
type Context struct {
	Input    interfaces.InputSource
	Clock    interfaces.Clock
	Renderer interfaces.Renderer // может быть nil, если кадр рисуется отдельно
}
