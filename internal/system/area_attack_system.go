// internal/system/area_attack_system.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

// blastTicks — длительность визуального эффекта взрыва.
const blastTicks = 24

// AreaAttackSystem разрешает взрывы: бомбы защитников и самоуничтожение юнитов.
// Взрыв не порождает новых взрывов.
type AreaAttackSystem struct {
	c *tickContext
}

func NewAreaAttackSystem(c *tickContext) *AreaAttackSystem {
	return &AreaAttackSystem{c: c}
}

func (s *AreaAttackSystem) Update() {
	c := s.c
	s.collectUnitExplosions()
	for _, e := range c.w.Explosions {
		s.detonate(e)
	}
	c.w.Explosions = c.w.Explosions[:0]
}

// collectUnitExplosions ставит в очередь взрывы юнитов с флагом самоуничтожения.
func (s *AreaAttackSystem) collectUnitExplosions() {
	c := s.c
	c.w.Units.Each(func(h types.Handle, u *component.Unit) {
		if !u.ExplodeQueued || u.Exploded || u.KillCause == component.CauseExplosion {
			return
		}
		u.Exploded = true
		c.w.Explosions = append(c.w.Explosions, component.Explosion{
			Source:   h,
			FromUnit: true,
			Faction:  u.Faction,
			Lane:     u.Lane,
			Pos:      u.Pos,
			Damage:   u.ExplosionDamage,
			Pattern:  component.PatternCircle,
			Radius:   u.ExplosionRadius,
		})
	})
}

// detonate наносит полный урон без учёта брони всем противникам в зоне, один раз.
func (s *AreaAttackSystem) detonate(e component.Explosion) {
	c := s.c
	if e.FromUnit {
		if u, ok := c.w.Units.Get(e.Source); ok && u.KillCause == component.CauseExplosion {
			return
		}
	}

	covers := s.footprint(e)
	victims := 0
	for _, h := range c.w.Units.Handles() {
		u, _ := c.w.Units.Get(h)
		if !u.Alive() || e.IsSourceUnit(h) || !u.Faction.Opposes(e.Faction) {
			continue
		}
		if !covers(u.Lane, u.Pos) {
			continue
		}
		c.damageUnit(h, u, e.Damage, component.CauseExplosion)
		victims++
	}

	// Защитники на стороне союзников
	if component.FactionAllied.Opposes(e.Faction) {
		for _, h := range c.w.Defenders.Handles() {
			d, _ := c.w.Defenders.Get(h)
			if d.Destroyed || !covers(d.Lane(), d.Pos()) {
				continue
			}
			victims++
			if d.TakeDamage(e.Damage) {
				c.removeDefender(h, d)
				c.emit(event.DefenderDestroyed, event.DefenderData{Defender: h, DefID: d.DefID, Cell: d.Cell})
			}
		}
	}

	radius := e.Radius
	if e.Pattern == component.PatternGrid {
		radius = float64(e.GridRadius) + 0.5
	}
	c.addEffect(component.VisualEffect{
		Kind:     component.EffectBlast,
		FromX:    e.Pos,
		FromY:    float64(e.Lane),
		Radius:   radius,
		Duration: blastTicks,
	})
	c.emit(event.ExplosionTriggered, event.ExplosionData{
		Source:   e.Source,
		FromUnit: e.FromUnit,
		Lane:     e.Lane,
		Pos:      e.Pos,
		Victims:  victims,
	})
	c.sound(event.SoundExplode)
	c.metrics.Explosion()
	c.log.Debug().Str("source", e.Source.String()).Bool("unit", e.FromUnit).
		Int("lane", e.Lane).Float64("pos", e.Pos).Int("victims", victims).Msg("explosion")
}

// footprint возвращает проверку попадания точки в зону взрыва.
func (s *AreaAttackSystem) footprint(e component.Explosion) func(lane int, pos float64) bool {
	switch e.Pattern {
	case component.PatternGrid:
		cells := make(map[lanegrid.Cell]bool)
		for _, cell := range lanegrid.CellOf(e.Lane, e.Pos).Square(e.GridRadius) {
			cells[cell] = true
		}
		return func(lane int, pos float64) bool {
			return cells[lanegrid.CellOf(lane, pos)]
		}
	case component.PatternCircle:
		spacing := s.c.cfg.Field.LaneSpacing
		return func(lane int, pos float64) bool {
			return lanegrid.Distance(e.Lane, e.Pos, lane, pos, spacing) <= e.Radius+1e-9
		}
	}
	return func(int, float64) bool { return false }
}

// resolveSplash наносит урон по области вокруг клетки приземления. Повторный вызов
// для того же снаряда ничего не делает. Юниты, уже получившие прямой урон, исключаются.
func (c *tickContext) resolveSplash(h types.Handle, p *component.Projectile) int {
	if p.SplashApplied {
		return 0
	}
	p.SplashApplied = true
	if p.SplashDamage <= 0 {
		return 0
	}

	center := lanegrid.CellOf(p.Lane, p.LandPos).Center()
	rx, ry := c.cfg.Projectile.SplashRadiusX, c.cfg.Projectile.SplashRadiusY
	spacing := c.cfg.Field.LaneSpacing

	targets := 0
	for l := p.Lane - 1 - int(ry); l <= p.Lane+1+int(ry); l++ {
		for _, e := range c.index.Lane(l) {
			u := e.Unit
			if !eligible(u) || p.AlreadyHit(e.Handle) {
				continue
			}
			dx := u.Pos - center
			dy := float64(u.Lane-p.Lane) * spacing
			if !lanegrid.InEllipse(dx, dy, rx, ry) {
				continue
			}
			p.MarkHit(e.Handle)
			c.damageUnit(e.Handle, u, p.SplashDamage, component.CauseSplash)
			targets++
		}
	}

	c.addEffect(component.VisualEffect{
		Kind:     component.EffectSplash,
		FromX:    center,
		FromY:    float64(p.Lane),
		Radius:   rx,
		Duration: blastTicks,
	})
	c.emit(event.SplashLanded, event.SplashLandedData{Projectile: h, Lane: p.Lane, Pos: p.LandPos, Targets: targets})
	c.sound(event.SoundSplat)
	return targets
}
