// pkg/render/color.go
package render

import (
	"image/color"

	"go-lane-defense/pkg/utils"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// FadeColor умножает альфу цвета на opacity (0..1).
func FadeColor(c color.RGBA, opacity float64) color.RGBA {
	opacity = utils.Clamp(opacity, 0, 1)
	// RGBA в ebiten — с предумноженной альфой
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}

// LightenColor смешивает цвет с белым в доле t.
func LightenColor(c color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t, 0, 1)
	mix := func(v uint8) uint8 {
		return uint8(float64(v) + (255-float64(v))*t)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: c.A}
}
