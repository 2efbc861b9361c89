// internal/component/actor.go
package component

import "go-bubble-shooter/internal/utils"

// Actor — персонаж игрока. Один на раунд, пересоздаётся при сбросе.
type Actor struct {
	Rect  utils.Rect
	Speed int
	Angle float64 // угол прицела в градусах, [0, 360)
}

// Center — точка, из которой вылетают снаряды.
func (a *Actor) Center() (int, int) {
	return a.Rect.Center()
}
