// internal/component/projectile.go
package component

import (
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/types"
	"go-bubble-shooter/internal/utils"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID        types.EntityID
	Position        // непрерывная позиция левого верхнего угла
	Velocity        // пикселей за тик
	SpawnedAt int64 // мс, по часам раунда
	Alive     bool  // false — снаряд удаляется на ближайшем шаге
}

// Rect — квадрат коллизии, координаты усекаются до целых.
func (p *Projectile) Rect() utils.Rect {
	return utils.NewRect(int(p.X), int(p.Y), config.ProjectileSize, config.ProjectileSize)
}
