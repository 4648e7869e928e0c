package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — встроенный растровый шрифт для HUD.
var DefaultFace = text.NewGoXFace(basicfont.Face7x13)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float64
	Color        color.RGBA
	OutlineColor color.RGBA
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64, clr color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        clr,
		OutlineColor: color.RGBA{0, 0, 0, 255},
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране, центрируя текст по X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	label := toRoman(waveNumber)
	if label == "" {
		return
	}
	w, _ := text.Measure(label, DefaultFace, 0)
	x := i.X - w/2

	// Обводка
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(screen, label, x+float64(dx), i.Y+float64(dy), i.OutlineColor)
		}
	}
	DrawText(screen, label, x, i.Y, i.Color)
}

// DrawText рисует строку шрифтом HUD.
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = 16
	text.Draw(screen, s, DefaultFace, op)
}
