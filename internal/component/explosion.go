package component

import "go-lane-defense/internal/types"

// ExplosionPattern — форма зоны поражения взрыва.
type ExplosionPattern uint8

const (
	// PatternGrid — квадрат клеток фиксированного радиуса вокруг клетки взрыва.
	PatternGrid ExplosionPattern = iota
	// PatternCircle — евклидов радиус вокруг точной позиции.
	PatternCircle
)

// Explosion — ожидающий разрешения взрыв.
type Explosion struct {
	Source     types.Handle // Ручка в пуле юнитов или защитников, см. FromUnit
	FromUnit   bool         // Источник — самоуничтожающийся юнит, иначе защитник
	Faction    Faction
	Lane       int
	Pos        float64
	Damage     int
	Pattern    ExplosionPattern
	GridRadius int
	Radius     float64
}

// IsSourceUnit reports whether unit h is the exploding unit itself.
// Defender handles live in another pool and may coincide with unit handles.
func (e Explosion) IsSourceUnit(h types.Handle) bool {
	return e.FromUnit && h == e.Source
}
