package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
)

// DefenderSystem перезаряжает защитников и запускает их атаки.
type DefenderSystem struct {
	c *tickContext
}

func NewDefenderSystem(c *tickContext) *DefenderSystem {
	return &DefenderSystem{c: c}
}

func (s *DefenderSystem) Update() {
	c := s.c
	for _, h := range c.w.Defenders.Handles() {
		d, _ := c.w.Defenders.Get(h)
		if d.Destroyed {
			continue
		}
		kind := defenderKindOf(d.Behavior)
		if d.Behavior == defs.DefenderBomb || d.Behavior == defs.DefenderWall {
			kind.attack(s, h, d)
			continue
		}
		if d.FireTimer > 0 {
			d.FireTimer--
		}
		if d.FireTimer > 0 {
			continue
		}
		// Без цели защитник остаётся заряженным
		if kind.attack(s, h, d) {
			d.FireTimer = d.FireInterval
		}
	}
}

// fire выпускает снаряд защитника.
func (s *DefenderSystem) fire(h types.Handle, d *component.Defender, hint TargetHint) bool {
	c := s.c
	ph, err := SpawnProjectile(c.w, d.Projectile, d.Lane(), d.Pos(), hint, d.PortalCapable,
		WithDamage(d.Damage, d.SplashDamage), WithSource(h))
	if err != nil {
		c.log.Warn().Err(err).Str("defender", d.DefID).Msg("cannot fire")
		return false
	}
	p, _ := c.w.Projectiles.Get(ph)
	c.emit(event.ProjectileFired, event.ProjectileFiredData{
		Projectile: ph,
		Source:     h,
		Kind:       string(p.Kind),
		Lane:       p.Lane,
		Pos:        p.Pos,
		TargetPos:  hint.Pos,
	})
	c.sound(event.SoundShoot)
	return true
}
