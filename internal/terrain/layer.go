// Package terrain keeps transient per-cell speed markers left behind by units.
package terrain

import (
	"sort"

	"go-lane-defense/pkg/lanegrid"
)

// Marker — активная метка на клетке.
type Marker struct {
	Remaining  int
	Multiplier float64
}

// Layer maps cells to markers. A re-marked cell is refreshed, never stacked.
type Layer struct {
	markers map[lanegrid.Cell]*Marker
}

func NewLayer() *Layer {
	return &Layer{markers: make(map[lanegrid.Cell]*Marker)}
}

// Mark ставит или обновляет метку. Возвращает true, если метка новая.
func (l *Layer) Mark(cell lanegrid.Cell, lifetime int, multiplier float64) bool {
	if lifetime <= 0 {
		return false
	}
	if m, ok := l.markers[cell]; ok {
		m.Remaining = lifetime
		m.Multiplier = multiplier
		return false
	}
	l.markers[cell] = &Marker{Remaining: lifetime, Multiplier: multiplier}
	return true
}

// At возвращает метку клетки.
func (l *Layer) At(cell lanegrid.Cell) (Marker, bool) {
	m, ok := l.markers[cell]
	if !ok {
		return Marker{}, false
	}
	return *m, true
}

// Active reports whether the cell currently holds a marker.
func (l *Layer) Active(cell lanegrid.Cell) bool {
	_, ok := l.markers[cell]
	return ok
}

// Multiplier returns the speed multiplier for the cell, 1 when unmarked.
func (l *Layer) Multiplier(cell lanegrid.Cell) float64 {
	if m, ok := l.markers[cell]; ok {
		return m.Multiplier
	}
	return 1
}

// Tick отсчитывает время жизни меток и удаляет истёкшие. Возвращает число удалённых.
func (l *Layer) Tick() int {
	expired := 0
	for cell, m := range l.markers {
		m.Remaining--
		if m.Remaining <= 0 {
			delete(l.markers, cell)
			expired++
		}
	}
	return expired
}

func (l *Layer) Len() int {
	return len(l.markers)
}

// Cells возвращает отмеченные клетки в порядке ряд, столбец.
func (l *Layer) Cells() []lanegrid.Cell {
	cells := make([]lanegrid.Cell, 0, len(l.markers))
	for c := range l.markers {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Lane != cells[j].Lane {
			return cells[i].Lane < cells[j].Lane
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}
