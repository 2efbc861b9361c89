// internal/component/patroller.go
package component

import (
	"go-bubble-shooter/internal/types"
	"go-bubble-shooter/internal/utils"
)

// Patroller — цель. Стоит на месте (Speed == 0) или ходит между Left и Right.
// Мёртвые цели не удаляются из раунда, только помечаются Alive = false.
type Patroller struct {
	ID    types.EntityID
	Rect  utils.Rect
	Speed int
	Left  int // для подвижных целей требуется Left <= Right
	Right int
	Dir   int // +1 вправо, -1 влево
	Alive bool
}
