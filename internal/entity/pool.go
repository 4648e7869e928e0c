// internal/entity/pool.go
package entity

import "go-lane-defense/internal/types"

type slot[T any] struct {
	gen   uint32
	alive bool
	value *T
}

// Pool — арена слотов с поколениями. Удалённый слот попадает в список свободных,
// и все выданные на него ссылки перестают разрешаться.
type Pool[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// Insert кладёт значение в пул и возвращает ссылку на него.
func (p *Pool[T]) Insert(v *T) types.Handle {
	p.live++
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		s := &p.slots[idx]
		s.alive = true
		s.value = v
		return types.Handle{Index: idx, Gen: s.gen}
	}
	p.slots = append(p.slots, slot[T]{gen: 1, alive: true, value: v})
	return types.Handle{Index: uint32(len(p.slots) - 1), Gen: 1}
}

// Get разрешает ссылку. Устаревшая ссылка даёт false.
func (p *Pool[T]) Get(h types.Handle) (*T, bool) {
	if h.IsNil() || int(h.Index) >= len(p.slots) {
		return nil, false
	}
	s := &p.slots[h.Index]
	if !s.alive || s.gen != h.Gen {
		return nil, false
	}
	return s.value, true
}

// Contains reports whether the handle still resolves.
func (p *Pool[T]) Contains(h types.Handle) bool {
	_, ok := p.Get(h)
	return ok
}

// Remove освобождает слот и увеличивает его поколение.
func (p *Pool[T]) Remove(h types.Handle) bool {
	if _, ok := p.Get(h); !ok {
		return false
	}
	s := &p.slots[h.Index]
	s.alive = false
	s.value = nil
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	p.free = append(p.free, h.Index)
	p.live--
	return true
}

// Len — число живых значений.
func (p *Pool[T]) Len() int {
	return p.live
}

// Handles returns a snapshot of live handles in slot order.
// Callers that remove entities while scanning iterate the snapshot.
func (p *Pool[T]) Handles() []types.Handle {
	out := make([]types.Handle, 0, p.live)
	for i := range p.slots {
		if p.slots[i].alive {
			out = append(out, types.Handle{Index: uint32(i), Gen: p.slots[i].gen})
		}
	}
	return out
}

// Each вызывает fn для каждого живого значения в порядке слотов.
// fn не должна удалять значения из пула.
func (p *Pool[T]) Each(fn func(h types.Handle, v *T)) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.alive {
			fn(types.Handle{Index: uint32(i), Gen: s.gen}, s.value)
		}
	}
}
