// internal/component/projectile.go
package component

import (
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	DefID  string
	Kind   defs.ProjectileKind
	Effect defs.ProjectileEffect

	Lane int
	Pos  float64
	Row  float64 // Непрерывная координата ряда, для самонаводящихся снарядов

	Damage       int
	SplashDamage int
	Speed        float64

	// Самонаведение. Target — слабая ссылка, проверяется по поколению.
	Target           types.Handle
	Heading          float64
	RetargetCooldown int

	// Навесная траектория
	StartPos, LandPos float64
	Elapsed, Duration int
	Height            float64
	Landed            bool
	SplashApplied     bool

	// Порталы
	PortalCapable bool
	Portaled      bool
	Source        types.Handle // Защитник, выпустивший снаряд
	SourceLane    int
	SourcePos     float64

	hit  map[types.Handle]struct{}
	Done bool // Контракт исчерпан, снаряд подлежит удалению
}

// AlreadyHit reports whether the unit was already resolved against this projectile.
func (p *Projectile) AlreadyHit(h types.Handle) bool {
	_, ok := p.hit[h]
	return ok
}

// MarkHit добавляет юнита в множество уже поражённых.
func (p *Projectile) MarkHit(h types.Handle) {
	if p.hit == nil {
		p.hit = make(map[types.Handle]struct{})
	}
	p.hit[h] = struct{}{}
}

// HitCount — сколько юнитов уже поражено.
func (p *Projectile) HitCount() int {
	return len(p.hit)
}

// Penetrates reports whether the projectile keeps flying after a resolved hit.
func (p *Projectile) Penetrates() bool {
	return p.Kind == defs.ProjectilePenetrating
}

// ArcOffset — вертикальное смещение навесного снаряда, только для отрисовки.
func (p *Projectile) ArcOffset() float64 {
	if p.Duration <= 0 {
		return 0
	}
	t := float64(p.Elapsed) / float64(p.Duration)
	return 4 * p.Height * t * (1 - t)
}
