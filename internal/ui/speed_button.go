// internal/ui/speed_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton — кнопка переключения скорости симуляции (x1, x2, x4).
type SpeedButton struct {
	X, Y         float32
	Size         float32
	StateColors  []color.RGBA
	CurrentState int
	pulse        int // Тиков осталось до конца анимации нажатия
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Update() {
	if b.pulse > 0 {
		b.pulse--
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	scale := 1 + 0.3*float32(b.pulse)/10
	size := b.Size * scale
	clr := b.StateColors[b.CurrentState]

	height := size * 1.2
	offset := size * 0.8
	// Два треугольника «перемотки»
	for _, shift := range []float32{0, offset} {
		left := b.X - size + shift
		right := b.X + shift
		vector.StrokeLine(screen, left, b.Y-height/2, right, b.Y, 2, clr, true)
		vector.StrokeLine(screen, right, b.Y, left, b.Y+height/2, 2, clr, true)
		vector.StrokeLine(screen, left, b.Y+height/2, left, b.Y-height/2, 2, clr, true)
	}
}

// IsClicked проверяет попадание по кругу: форма кнопки сложная.
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) ToggleState() {
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.pulse = 10
}
