// internal/ui/pause_overlay.go
package ui

import (
	"image/color"

	"go-bubble-shooter/internal/interfaces"
)

// PauseOverlay затемняет экран и пишет «PAUSED».
type PauseOverlay struct {
	Width, Height float64
	Shade         color.RGBA
	TextColor     color.RGBA
}

func NewPauseOverlay(width, height float64) *PauseOverlay {
	return &PauseOverlay{
		Width:     width,
		Height:    height,
		Shade:     color.RGBA{0, 0, 0, 128},
		TextColor: color.RGBA{255, 255, 255, 255},
	}
}

func (p *PauseOverlay) Draw(r interfaces.Renderer) {
	r.DrawRect(0, 0, p.Width, p.Height, p.Shade)
	r.DrawText("PAUSED (P to resume)", p.Width/2-140, p.Height/2-20, p.TextColor)
}
