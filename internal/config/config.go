package config

import "image/color"

// Константы отображения для отладочного просмотрщика (cmd/game).
const (
	ScreenWidth  = 1200
	ScreenHeight = 720
	TicksPerSec  = 60

	FieldOffsetX = 120.0
	FieldOffsetY = 90.0
	CellWidth    = 100.0 // пикселей на одну клетку ряда
	LaneHeight   = 110.0 // пикселей на один ряд

	UnitRadius       = 18.0
	DefenderRadius   = 24.0
	ProjectileRadius = 6.0
	PortalRadius     = 14.0
	StrokeWidth      = 2.0

	HUDX = 12
	HUDY = 12
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	LaneColor        = color.RGBA{56, 92, 60, 255}
	LaneAltColor     = color.RGBA{64, 104, 68, 255}
	HostileColor     = color.RGBA{150, 150, 170, 255}
	AlliedColor      = color.RGBA{230, 90, 200, 255}
	FrozenColor      = color.RGBA{120, 190, 255, 255}
	StunnedColor     = color.RGBA{255, 215, 0, 255}
	DefenderColor    = color.RGBA{50, 205, 50, 255}
	ProjectileColor  = color.RGBA{180, 255, 80, 255}
	PortalColor      = color.RGBA{180, 50, 230, 255}
	PortalOffColor   = color.RGBA{90, 60, 100, 255}
	TerrainColor     = color.RGBA{200, 240, 255, 110}
	ExplosionColor   = color.RGBA{255, 69, 0, 200}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	ArmorStrokeColor = color.RGBA{200, 200, 200, 255}
)
