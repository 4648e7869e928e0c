// pkg/lanegrid/cell.go
package lanegrid

import (
	"math"

	"go-lane-defense/pkg/utils"
)

// Cell — клетка поля: ряд (Lane) и столбец (Col).
type Cell struct {
	Lane, Col int
}

// CellOf возвращает клетку, в которой лежит непрерывная позиция pos на ряду lane.
func CellOf(lane int, pos float64) Cell {
	return Cell{Lane: lane, Col: int(math.Floor(pos))}
}

// Center возвращает позицию центра клетки вдоль ряда.
func (c Cell) Center() float64 {
	return float64(c.Col) + 0.5
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{Lane: c.Lane + other.Lane, Col: c.Col + other.Col}
}

// Square возвращает все клетки в квадрате радиуса r вокруг c (r=1 даёт 3x3).
// Порядок: по рядам сверху вниз, внутри ряда слева направо.
func (c Cell) Square(r int) []Cell {
	if r < 0 {
		return nil
	}
	cells := make([]Cell, 0, (2*r+1)*(2*r+1))
	for dl := -r; dl <= r; dl++ {
		for dc := -r; dc <= r; dc++ {
			cells = append(cells, c.Add(Cell{Lane: dl, Col: dc}))
		}
	}
	return cells
}

// Behind возвращает соседнюю клетку позади движения с направлением dir (знак скорости).
func (c Cell) Behind(dir float64) Cell {
	return Cell{Lane: c.Lane, Col: c.Col - int(utils.Sign(dir))}
}
