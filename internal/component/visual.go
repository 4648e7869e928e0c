// internal/component/visual.go
package component

// Flash — вспышка при попадании. Продвигается даже у оглушённого юнита.
type Flash struct {
	Timer    int // Сколько тиков эффект уже активен
	Duration int // Общая продолжительность эффекта
}

// EffectKind — тип визуального эффекта.
type EffectKind uint8

const (
	EffectBlast EffectKind = iota
	EffectArc
	EffectSplash
	EffectSpray
)

// VisualEffect — кратковременный эффект для отрисовки.
// Координаты в единицах поля: X вдоль ряда, Y — номер ряда.
type VisualEffect struct {
	Kind     EffectKind
	FromX    float64
	FromY    float64
	ToX      float64
	ToY      float64
	Radius   float64
	Timer    int
	Duration int
}

// Progress возвращает долю прошедшего времени в [0, 1].
func (v *VisualEffect) Progress() float64 {
	if v.Duration <= 0 {
		return 1
	}
	return float64(v.Timer) / float64(v.Duration)
}
