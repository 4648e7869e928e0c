// Package spatial buckets live units by lane for same-lane lookups.
package spatial

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
)

// Entry — юнит в корзине ряда.
type Entry struct {
	Handle types.Handle
	Unit   *component.Unit
}

// Index хранит юнитов по рядам. Пересобирается каждый тик.
type Index struct {
	lanes [][]Entry
}

func NewIndex(laneCount int) *Index {
	if laneCount < 0 {
		laneCount = 0
	}
	return &Index{lanes: make([][]Entry, laneCount)}
}

// Rebuild раскладывает всех юнитов пула по рядам в порядке слотов.
// Юниты вне поля по ряду не индексируются.
func (ix *Index) Rebuild(units *entity.Pool[component.Unit]) {
	for i := range ix.lanes {
		ix.lanes[i] = ix.lanes[i][:0]
	}
	units.Each(func(h types.Handle, u *component.Unit) {
		ix.insert(h, u)
	})
}

// insert добавляет юнита в корзину его ряда.
func (ix *Index) insert(h types.Handle, u *component.Unit) {
	if u.Lane < 0 || u.Lane >= len(ix.lanes) {
		return
	}
	ix.lanes[u.Lane] = append(ix.lanes[u.Lane], Entry{Handle: h, Unit: u})
}

// Lane возвращает корзину ряда. Срез нельзя изменять.
func (ix *Index) Lane(lane int) []Entry {
	if lane < 0 || lane >= len(ix.lanes) {
		return nil
	}
	return ix.lanes[lane]
}

// LaneCount — число рядов.
func (ix *Index) LaneCount() int {
	return len(ix.lanes)
}

// Len — общее число проиндексированных юнитов.
func (ix *Index) Len() int {
	n := 0
	for _, bucket := range ix.lanes {
		n += len(bucket)
	}
	return n
}
