// internal/component/status_effect.go
package component

import "go-lane-defense/internal/types"

// StatusTimers — оставшиеся тики статусов одного юнита.
type StatusTimers struct {
	Freeze int
	Stun   int
	Spray  int
	Charm  int // Сколько ещё юнит остаётся обращённым
}

// Idle reports whether no timer is running.
func (s *StatusTimers) Idle() bool {
	return s.Freeze == 0 && s.Stun == 0 && s.Spray == 0 && s.Charm == 0
}

// StatusTable holds status timers keyed by unit handle.
type StatusTable struct {
	timers map[types.Handle]*StatusTimers
}

func NewStatusTable() *StatusTable {
	return &StatusTable{timers: make(map[types.Handle]*StatusTimers)}
}

// Get возвращает таймеры юнита, если они есть.
func (t *StatusTable) Get(h types.Handle) (*StatusTimers, bool) {
	s, ok := t.timers[h]
	return s, ok
}

// Ensure возвращает таймеры юнита, создавая запись при необходимости.
func (t *StatusTable) Ensure(h types.Handle) *StatusTimers {
	s, ok := t.timers[h]
	if !ok {
		s = &StatusTimers{}
		t.timers[h] = s
	}
	return s
}

// Forget удаляет запись юнита.
func (t *StatusTable) Forget(h types.Handle) {
	delete(t.timers, h)
}

func (t *StatusTable) Len() int {
	return len(t.timers)
}
