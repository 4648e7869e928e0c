package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
)

// sprayTicks — длительность визуального облака распылителя.
const sprayTicks = 30

// defenderKind — атака одного вида защитника. Возвращает true, если атака состоялась.
type defenderKind interface {
	attack(s *DefenderSystem, h types.Handle, d *component.Defender) bool
}

func defenderKindOf(b defs.DefenderBehavior) defenderKind {
	switch b {
	case defs.DefenderShooter:
		return shooterKind{}
	case defs.DefenderHoming:
		return homingShooterKind{}
	case defs.DefenderLobber:
		return lobberKind{}
	case defs.DefenderChain:
		return chainKind{}
	case defs.DefenderSprayer:
		return sprayerKind{}
	case defs.DefenderBomb:
		return bombKind{}
	case defs.DefenderWall:
		return wallKind{}
	}
	return wallKind{}
}

// shooterKind стреляет по ближайшей цели на ряду, при возможности через портал.
type shooterKind struct{}

func (shooterKind) attack(s *DefenderSystem, h types.Handle, d *component.Defender) bool {
	c := s.c
	var (
		aim Aim
		ok  bool
	)
	if d.PortalCapable {
		aim, ok = c.portalAware(d.Lane(), d.Pos(), d.Range)
	} else {
		aim, ok = c.frontLane(d.Lane(), d.Pos(), d.Range)
	}
	if !ok {
		return false
	}
	return s.fire(h, d, TargetHint{Unit: aim.Handle, Pos: aim.AimPos})
}

// homingShooterKind выпускает самонаводящийся снаряд по ближайшей цели на поле.
type homingShooterKind struct{}

func (homingShooterKind) attack(s *DefenderSystem, h types.Handle, d *component.Defender) bool {
	aim, ok := s.c.globalNearest(d.Lane(), d.Pos(), nil)
	if !ok {
		return false
	}
	return s.fire(h, d, TargetHint{Unit: aim.Handle, Pos: aim.AimPos})
}

// lobberKind бросает навесной снаряд в позицию цели.
type lobberKind struct{}

func (lobberKind) attack(s *DefenderSystem, h types.Handle, d *component.Defender) bool {
	aim, ok := s.c.frontLane(d.Lane(), d.Pos(), d.Range)
	if !ok {
		return false
	}
	return s.fire(h, d, TargetHint{Unit: aim.Handle, Pos: aim.AimPos})
}

// chainKind бьёт молнией без снаряда.
type chainKind struct{}

func (chainKind) attack(s *DefenderSystem, h types.Handle, d *component.Defender) bool {
	c := s.c
	aim, ok := c.frontLane(d.Lane(), d.Pos(), d.Range)
	if !ok {
		return false
	}
	c.chainLightning(h, aim.Handle, aim.Unit, d.Damage, d.Pos())
	c.sound(event.SoundZap)
	return true
}

// sprayerKind оглушает и помечает всех врагов перед собой в пределах Range.
type sprayerKind struct{}

func (sprayerKind) attack(s *DefenderSystem, h types.Handle, d *component.Defender) bool {
	c := s.c
	from, to := d.Pos(), d.Pos()+d.Range
	hit := 0
	for _, e := range c.index.Lane(d.Lane()) {
		u := e.Unit
		if !eligible(u) || u.Pos < from || u.Pos > to {
			continue
		}
		c.applyStun(e.Handle, u, c.cfg.Status.StunTicks)
		c.applySpray(e.Handle, u)
		hit++
	}
	if hit == 0 {
		return false
	}
	c.addEffect(component.VisualEffect{
		Kind:     component.EffectSpray,
		FromX:    from,
		FromY:    float64(d.Lane()),
		ToX:      to,
		ToY:      float64(d.Lane()),
		Duration: sprayTicks,
	})
	c.sound(event.SoundSpray)
	return true
}

// bombKind взрывается по окончании запала и расходуется.
type bombKind struct{}

func (bombKind) attack(s *DefenderSystem, h types.Handle, d *component.Defender) bool {
	c := s.c
	if d.FuseTimer > 0 {
		d.FuseTimer--
		if d.FuseTimer > 0 {
			return false
		}
	}
	c.w.Explosions = append(c.w.Explosions, component.Explosion{
		Source:     h,
		Faction:    component.FactionAllied,
		Lane:       d.Lane(),
		Pos:        d.Pos(),
		Damage:     d.Damage,
		Pattern:    component.PatternGrid,
		GridRadius: c.cfg.Explosion.GridRadius,
	})
	c.removeDefender(h, d)
	return true
}

// wallKind не атакует.
type wallKind struct{}

func (wallKind) attack(*DefenderSystem, types.Handle, *component.Defender) bool { return false }
