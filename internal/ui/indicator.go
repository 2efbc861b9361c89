// internal/ui/indicator.go
package ui

import (
	"image/color"

	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/interfaces"
)

// PhaseBanner — надпись о победе или поражении по центру экрана
type PhaseBanner struct {
	CenterX, CenterY float64
}

func NewPhaseBanner(centerX, centerY float64) *PhaseBanner {
	return &PhaseBanner{CenterX: centerX, CenterY: centerY}
}

// Line возвращает текст, позицию и цвет надписи для фазы.
// ok == false, пока раунд идёт.
func (b *PhaseBanner) Line(phase component.Phase) (text string, x, y float64, clr color.RGBA, ok bool) {
	switch phase {
	case component.Won:
		return config.WinBannerText, b.CenterX - config.WinBannerDX, b.CenterY, config.WinBannerColor, true
	case component.Lost:
		return config.LoseBannerText, b.CenterX - config.LoseBannerDX, b.CenterY, config.LoseBannerColor, true
	}
	return "", 0, 0, color.RGBA{}, false
}

// Draw отрисовывает надпись, если раунд закончен
func (b *PhaseBanner) Draw(r interfaces.Renderer, phase component.Phase) {
	if text, x, y, clr, ok := b.Line(phase); ok {
		r.DrawText(text, x, y, clr)
	}
}
