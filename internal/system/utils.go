// internal/system/utils.go
package system

import (
	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/utils"
)

// bounceOffArena отражает скорость от стен арены.
// Горизонтальная и вертикальная проверки независимы: в углу срабатывают обе.
func bounceOffArena(p *component.Projectile, box utils.Rect, width, groundY int) bool {
	bounced := false
	if box.Left() <= 0 || box.Right() >= width {
		p.VX = -p.VX
		bounced = true
	}
	if box.Top() <= 0 || box.Bottom() >= groundY {
		p.VY = -p.VY
		bounced = true
	}
	return bounced
}

// bounceOffObstacle выбирает ось отскока по близости краёв.
// Это эвристика: быстрый снаряд может «проскочить» край, а при пересечении
// нескольких стен за тик отражение применяется по разу для каждой.
func bounceOffObstacle(p *component.Projectile, box utils.Rect, wall utils.Rect, threshold int) {
	if utils.NearEdge(box.Right(), wall.Left(), threshold) || utils.NearEdge(box.Left(), wall.Right(), threshold) {
		p.VX = -p.VX
	} else {
		p.VY = -p.VY
	}
}
