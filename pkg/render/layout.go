// pkg/render/layout.go
package render

import (
	"math"

	"go-lane-defense/pkg/lanegrid"
)

// LaneLayout переводит координаты поля (ряд, позиция) в пиксели экрана и обратно.
type LaneLayout struct {
	OffsetX, OffsetY float64
	CellWidth        float64
	LaneHeight       float64
}

// Point возвращает центр точки с дробным рядом row и позицией pos.
func (l LaneLayout) Point(row, pos float64) (float32, float32) {
	x := l.OffsetX + pos*l.CellWidth
	y := l.OffsetY + row*l.LaneHeight + l.LaneHeight/2
	return float32(x), float32(y)
}

// CellRect возвращает прямоугольник клетки: левый верхний угол, ширину и высоту.
func (l LaneLayout) CellRect(c lanegrid.Cell) (x, y, w, h float32) {
	x = float32(l.OffsetX + float64(c.Col)*l.CellWidth)
	y = float32(l.OffsetY + float64(c.Lane)*l.LaneHeight)
	return x, y, float32(l.CellWidth), float32(l.LaneHeight)
}

// CellAt возвращает клетку под экранной точкой (x, y).
func (l LaneLayout) CellAt(x, y int) lanegrid.Cell {
	col := math.Floor((float64(x) - l.OffsetX) / l.CellWidth)
	lane := math.Floor((float64(y) - l.OffsetY) / l.LaneHeight)
	return lanegrid.Cell{Lane: int(lane), Col: int(col)}
}
