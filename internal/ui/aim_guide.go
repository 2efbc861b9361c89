// internal/ui/aim_guide.go
package ui

import (
	"image/color"

	"go-bubble-shooter/internal/component"
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/interfaces"
	"go-bubble-shooter/internal/utils"
)

// AimGuide рисует пунктир прицела от центра игрока.
type AimGuide struct {
	Start, End, Step int
	DotRadius        float64
	Color            color.RGBA
}

func NewAimGuide() *AimGuide {
	return &AimGuide{
		Start:     config.AimGuideStart,
		End:       config.AimGuideEnd,
		Step:      config.AimGuideStep,
		DotRadius: config.AimGuideRadius,
		Color:     config.ActorColor,
	}
}

// Dots возвращает центры точек пунктира, координаты усечены до целых.
func (g *AimGuide) Dots(actor component.Actor) [][2]float64 {
	cx, cy := actor.Center()
	dx, dy := utils.AimVector(actor.Angle)
	dots := make([][2]float64, 0, (g.End-g.Start)/g.Step+1)
	for d := g.Start; d < g.End; d += g.Step {
		x := float64(cx) + dx*float64(d)
		y := float64(cy) + dy*float64(d)
		dots = append(dots, [2]float64{float64(int(x)), float64(int(y))})
	}
	return dots
}

func (g *AimGuide) Draw(r interfaces.Renderer, actor component.Actor) {
	for _, d := range g.Dots(actor) {
		r.DrawCircle(d[0], d[1], g.DotRadius, g.Color)
	}
}
