// internal/utils/rect.go
package utils

import putils "go-bubble-shooter/pkg/utils"

// Rect — прямоугольник, выровненный по осям, в целых пикселях экрана.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center возвращает центр с целочисленным делением, как при отрисовке.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects — стандартная проверка пересечения AABB.
// Края не включаются: соприкасающиеся прямоугольники не пересекаются.
func Intersects(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// Intersects — то же, что и пакетная функция, в виде метода.
func (r Rect) Intersects(other Rect) bool {
	return Intersects(r, other)
}

// NearEdge сообщает, что две координаты ближе друг к другу, чем threshold.
func NearEdge(a, b, threshold int) bool {
	return putils.Abs(a-b) < threshold
}
