// internal/system/projectile.go
package system

import (
	"math"
	"sort"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/spatial"
	"go-lane-defense/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	c *tickContext
}

func NewProjectileSystem(c *tickContext) *ProjectileSystem {
	return &ProjectileSystem{c: c}
}

func (s *ProjectileSystem) Update() {
	c := s.c
	for _, h := range c.w.Projectiles.Handles() {
		p, _ := c.w.Projectiles.Get(h)
		if p.Done {
			continue
		}
		kind := projectileKindOf(p.Kind)
		kind.advance(s, h, p)
		if s.outOfBounds(p) {
			c.removeProjectile(h, p)
			continue
		}
		kind.resolve(s, h, p)
	}
}

func (s *ProjectileSystem) outOfBounds(p *component.Projectile) bool {
	f := s.c.cfg.Field
	if p.Pos < -f.SpawnMargin || p.Pos > f.LaneLength+f.SpawnMargin {
		return true
	}
	return p.Row < -0.5 || p.Row > float64(f.LaneCount)-0.5
}

// teleport переносит снаряд через портал один раз. Портал годится, только если
// снаряд ещё на ряду выстрела и портал лежит впереди точки выстрела.
func (s *ProjectileSystem) teleport(p *component.Projectile) {
	if !p.PortalCapable || p.Portaled || p.Lane != p.SourceLane {
		return
	}
	for _, link := range s.c.w.Portals {
		node, ok := link.Touching(p.Lane, p.Pos, math.Max(s.c.cfg.Portal.Radius, p.Speed))
		if !ok || node.Pos <= p.SourcePos {
			continue
		}
		exit := link.Exit(node)
		p.Lane = exit.Lane
		p.Row = float64(exit.Lane)
		p.Pos = exit.Pos
		p.Portaled = true
		return
	}
}

// contacts возвращает всех ещё не поражённых юнитов в радиусе попадания, ближайшие первыми.
func (s *ProjectileSystem) contacts(p *component.Projectile) []spatial.Entry {
	return s.contactsAt(p.Lane, p.Pos, p)
}

func (s *ProjectileSystem) contactsAt(lane int, pos float64, p *component.Projectile) []spatial.Entry {
	radius := s.c.cfg.Projectile.HitRadius
	var out []spatial.Entry
	for _, e := range s.c.index.Lane(lane) {
		u := e.Unit
		if !eligible(u) || p.AlreadyHit(e.Handle) {
			continue
		}
		if math.Abs(u.Pos-pos) <= radius*u.Size {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Unit.Pos-pos) < math.Abs(out[j].Unit.Pos-pos)
	})
	return out
}

// firstContact — ближайший юнит в радиусе попадания.
func (s *ProjectileSystem) firstContact(p *component.Projectile) (types.Handle, *component.Unit, bool) {
	return first(s.contacts(p))
}

// closestTo — ближайший юнит к точке приземления в радиусе попадания.
func (s *ProjectileSystem) closestTo(lane int, pos float64, p *component.Projectile) (types.Handle, *component.Unit, bool) {
	return first(s.contactsAt(lane, pos, p))
}

func first(entries []spatial.Entry) (types.Handle, *component.Unit, bool) {
	if len(entries) == 0 {
		return types.NilHandle, nil, false
	}
	return entries[0].Handle, entries[0].Unit, true
}

// hit разрешает попадание: отмечает цель, наносит урон и пишет событие.
// Промах по иммунитету тоже считается разрешённым попаданием.
func (s *ProjectileSystem) hit(h types.Handle, p *component.Projectile, uh types.Handle, u *component.Unit, cause component.KillCause) (HitOutcome, int) {
	c := s.c
	p.MarkHit(uh)
	outcome, removed := c.damageUnit(uh, u, p.Damage, cause)
	c.emit(event.ProjectileHit, event.ProjectileHitData{
		Projectile: h,
		Unit:       uh,
		Outcome:    outcome.String(),
		Damage:     removed,
	})
	c.metrics.Hit(outcome.String())
	// Непробивающий снаряд исчерпан первым разрешённым попаданием
	if !p.Penetrates() {
		c.removeProjectile(h, p)
	}
	return outcome, removed
}
