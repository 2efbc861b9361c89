// internal/ui/ammo_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/interfaces"
)

// AmmoIndicator отображает оставшиеся патроны в левом верхнем углу.
type AmmoIndicator struct {
	X, Y  float64
	Color color.RGBA
}

// NewAmmoIndicator создает индикатор патронов.
func NewAmmoIndicator(x, y float64) *AmmoIndicator {
	return &AmmoIndicator{
		X:     x,
		Y:     y,
		Color: config.AmmoTextColor,
	}
}

// Text — подпись для заданного числа патронов.
func (i *AmmoIndicator) Text(ammo int) string {
	return fmt.Sprintf("Bullets: %d", ammo)
}

// Draw отрисовывает индикатор.
func (i *AmmoIndicator) Draw(r interfaces.Renderer, ammo int) {
	r.DrawText(i.Text(ammo), i.X, i.Y, i.Color)
}
