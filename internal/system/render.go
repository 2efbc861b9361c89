// internal/system/render.go
package system

import (
	"go-bubble-shooter/internal/config"
	"go-bubble-shooter/internal/entity"
	"go-bubble-shooter/internal/interfaces"
	"go-bubble-shooter/internal/ui"
)

// RenderSystem рисует снимок раунда в фиксированном порядке:
// фон, земля, стены, живые цели, снаряды, игрок, патроны, надпись.
type RenderSystem struct {
	ammo     *ui.AmmoIndicator
	banner   *ui.PhaseBanner
	aimGuide *ui.AimGuide
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{
		ammo:     ui.NewAmmoIndicator(config.HUDTextX, config.HUDTextY),
		banner:   ui.NewPhaseBanner(config.ScreenWidth/2, config.ScreenHeight/2),
		aimGuide: ui.NewAimGuide(),
	}
}

// Draw выводит кадр, не вызывая PresentFrame.
func (s *RenderSystem) Draw(r interfaces.Renderer, snap entity.Snapshot) {
	r.DrawRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.BackgroundColor)
	r.DrawRect(0, config.GroundY, config.ScreenWidth, config.ScreenHeight, config.GroundColor)

	for _, o := range snap.Obstacles {
		r.DrawRect(float64(o.Rect.X), float64(o.Rect.Y), float64(o.Rect.W), float64(o.Rect.H), config.ObstacleColor)
	}

	for _, p := range snap.Patrollers {
		if !p.Alive {
			continue
		}
		r.DrawRect(float64(p.Rect.X), float64(p.Rect.Y), float64(p.Rect.W), float64(p.Rect.H), config.PatrollerColor)
	}

	for _, p := range snap.Projectiles {
		// Круг рисуется с центром в (X, Y), а коллизия считается квадратом от (X, Y)
		r.DrawCircle(float64(int(p.X)), float64(int(p.Y)), config.ProjectileRadius, config.ProjectileColor)
	}

	a := snap.Actor
	r.DrawRect(float64(a.Rect.X), float64(a.Rect.Y), float64(a.Rect.W), float64(a.Rect.H), config.ActorColor)
	s.aimGuide.Draw(r, a)

	s.ammo.Draw(r, snap.Ammo)
	s.banner.Draw(r, snap.Phase)
}

// Frame рисует снимок и показывает кадр.
func (s *RenderSystem) Frame(r interfaces.Renderer, snap entity.Snapshot) {
	s.Draw(r, snap)
	r.PresentFrame()
}
