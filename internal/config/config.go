// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 600
	GroundHeight = 80
	GroundY      = ScreenHeight - GroundHeight // Линия земли: ниже неё только подвал с HUD
	TickRate     = 60
	MaxDeltaTime = 0.06

	ProjectileSpeed      = 10.0 // пикселей за тик
	ProjectileSize       = 15   // сторона квадрата коллизии
	ProjectileRadius     = 15.0 // радиус при отрисовке
	ProjectileLifetimeMs = 6000
	EdgeThreshold        = 6 // пикселей, для выбора оси отскока от препятствия

	ActorWidth      = 30
	ActorHeight     = 50
	ActorStartX     = 40
	ActorSpeed      = 5
	ActorStartAngle = 45.0
	AimStep         = 2.0 // градусов за тик

	AimGuideStart  = 10
	AimGuideEnd    = 220
	AimGuideStep   = 15
	AimGuideRadius = 3.0

	PatrollerWidth  = 30
	PatrollerHeight = 35

	HUDTextX       = 20
	HUDTextY       = 20
	HUDFontSize    = 28
	WinBannerDX    = 180
	LoseBannerDX   = 190
	WinBannerText  = "YOU WIN! (R to restart)"
	LoseBannerText = "TRY AGAIN (R to restart)"
)

var (
	BackgroundColor = color.RGBA{30, 34, 48, 255}
	GroundColor     = color.RGBA{80, 80, 80, 255}
	WhiteColor      = color.RGBA{240, 240, 240, 255}
	BlackColor      = color.RGBA{20, 20, 20, 255}
	GrayColor       = color.RGBA{120, 120, 120, 255}
	GreenColor      = color.RGBA{60, 200, 60, 255}
	RedColor        = color.RGBA{220, 70, 70, 255}

	ObstacleColor   = BlackColor
	PatrollerColor  = RedColor
	ProjectileColor = GreenColor
	ActorColor      = WhiteColor
	AmmoTextColor   = WhiteColor
	WinBannerColor  = GreenColor
	LoseBannerColor = RedColor
)
