package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanegrid"
)

// projectileKind — закон движения и правило попадания одного варианта снаряда.
type projectileKind interface {
	advance(s *ProjectileSystem, h types.Handle, p *component.Projectile)
	resolve(s *ProjectileSystem, h types.Handle, p *component.Projectile)
}

func projectileKindOf(k defs.ProjectileKind) projectileKind {
	switch k {
	case defs.ProjectileLinear:
		return linearKind{}
	case defs.ProjectileArc:
		return arcKind{}
	case defs.ProjectileHoming:
		return homingKind{}
	case defs.ProjectilePenetrating:
		return penetratingKind{}
	case defs.ProjectileCharm:
		return charmKind{}
	}
	return linearKind{}
}

// linearKind летит по ряду и разрешается ровно против одного юнита.
type linearKind struct{}

func (linearKind) advance(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	p.Pos += p.Speed
	s.teleport(p)
}

func (linearKind) resolve(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	uh, u, ok := s.firstContact(p)
	if !ok {
		return
	}
	outcome, _ := s.hit(h, p, uh, u, component.CauseProjectile)
	if p.Effect == defs.EffectFreeze && outcome == HitDamaged {
		s.c.applyFreeze(uh, u)
	}
}

// penetratingKind проходит сквозь юнитов, поражая каждого не более одного раза.
type penetratingKind struct{}

func (penetratingKind) advance(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	linearKind{}.advance(s, h, p)
}

func (penetratingKind) resolve(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	for _, e := range s.contacts(p) {
		s.hit(h, p, e.Handle, e.Unit, component.CauseProjectile)
	}
}

// charmKind обращает юнита, если попадание действительно сняло здоровье.
type charmKind struct{}

func (charmKind) advance(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	linearKind{}.advance(s, h, p)
}

func (charmKind) resolve(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	uh, u, ok := s.firstContact(p)
	if !ok {
		return
	}
	if _, removed := s.hit(h, p, uh, u, component.CauseProjectile); removed > 0 {
		s.c.applyCharm(u)
	}
}

// arcKind летит навесом к точке приземления; урон только при приземлении.
type arcKind struct{}

func (arcKind) advance(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	p.Elapsed++
	t := 1.0
	if p.Duration > 0 {
		t = math.Min(1, float64(p.Elapsed)/float64(p.Duration))
	}
	p.Pos = utils.Lerp(p.StartPos, p.LandPos, t)
	if t >= 1 {
		p.Landed = true
	}
}

func (arcKind) resolve(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	if !p.Landed {
		return
	}
	if uh, u, ok := s.closestTo(p.Lane, p.LandPos, p); ok {
		s.hit(h, p, uh, u, component.CauseProjectile)
	}
	s.c.resolveSplash(h, p)
	s.c.removeProjectile(h, p)
}

// homingKind поворачивает к цели; потеряв её, выжидает и выбирает ближайшую.
type homingKind struct{}

func (homingKind) advance(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	c := s.c
	spacing := c.cfg.Field.LaneSpacing

	target, ok := c.w.Units.Get(p.Target)
	if ok && !eligible(target) {
		ok = false
	}
	if !ok {
		if !p.Target.IsNil() {
			// Цель потеряна: держим курс и ждём перед перенацеливанием
			p.Target = types.NilHandle
			p.RetargetCooldown = c.cfg.Projectile.RetargetCooldown
		}
		if p.RetargetCooldown > 0 {
			p.RetargetCooldown--
		}
		if p.RetargetCooldown == 0 {
			if aim, found := c.globalNearest(p.Lane, p.Pos, nil); found {
				p.Target = aim.Handle
				target, ok = aim.Unit, true
			}
		}
	}
	if ok {
		want := headingTo(p.Pos, p.Row, target.Pos, float64(target.Lane), spacing)
		p.Heading = utils.TurnToward(p.Heading, want, c.cfg.Projectile.HomingTurnRate)
	}

	p.Pos += math.Cos(p.Heading) * p.Speed
	p.Row += math.Sin(p.Heading) * p.Speed / spacing
	p.Lane = int(math.Round(p.Row))
}

func (homingKind) resolve(s *ProjectileSystem, h types.Handle, p *component.Projectile) {
	uh, u, ok := s.homingContact(p)
	if !ok {
		return
	}
	s.hit(h, p, uh, u, component.CauseProjectile)
}

// headingTo — угол от точки (pos, row) к (tpos, trow) в координатах поля.
func headingTo(pos, row, tpos, trow, spacing float64) float64 {
	return math.Atan2((trow-row)*spacing, tpos-pos)
}

// homingContact ищет юнита в радиусе попадания в двумерных координатах.
func (s *ProjectileSystem) homingContact(p *component.Projectile) (types.Handle, *component.Unit, bool) {
	c := s.c
	spacing := c.cfg.Field.LaneSpacing
	var (
		bestH types.Handle
		bestU *component.Unit
	)
	bestDist := math.MaxFloat64
	for _, e := range c.index.Lane(p.Lane) {
		u := e.Unit
		if !eligible(u) || p.AlreadyHit(e.Handle) {
			continue
		}
		dx := u.Pos - p.Pos
		dy := (float64(u.Lane) - p.Row) * spacing
		if !lanegrid.InCircle(dx, dy, c.cfg.Projectile.HitRadius*u.Size) {
			continue
		}
		if d := math.Hypot(dx, dy); d < bestDist {
			bestH, bestU, bestDist = e.Handle, u, d
		}
	}
	return bestH, bestU, bestU != nil
}
