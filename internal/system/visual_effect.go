// internal/system/visual_effect.go
package system

import "go-lane-defense/internal/entity"

// VisualEffectSystem продвигает кратковременные эффекты и удаляет завершённые.
type VisualEffectSystem struct {
	c *tickContext
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(c *tickContext) *VisualEffectSystem {
	return &VisualEffectSystem{c: c}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update() {
	advanceEffects(s.c.w)
}

func advanceEffects(w *entity.World) {
	kept := w.Effects[:0]
	for _, e := range w.Effects {
		e.Timer++
		if e.Timer < e.Duration {
			kept = append(kept, e)
		}
	}
	w.Effects = kept
}
