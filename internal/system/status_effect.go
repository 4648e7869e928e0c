// internal/system/status_effect.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// StatusEffectSystem отсчитывает таймеры статусов, ведёт анимацию смерти
// и применяет отложенные обращения.
type StatusEffectSystem struct {
	c *tickContext
}

func NewStatusEffectSystem(c *tickContext) *StatusEffectSystem {
	return &StatusEffectSystem{c: c}
}

// Update — первая стадия тика.
func (s *StatusEffectSystem) Update() {
	c := s.c
	for _, h := range c.w.Units.Handles() {
		u, _ := c.w.Units.Get(h)
		u.AdvanceFlashes()
		if u.Removed {
			continue
		}
		if u.Dying {
			s.advanceDeath(h, u)
			continue
		}
		if timers, ok := c.w.Status.Get(h); ok {
			s.tickTimers(h, u, timers)
		}
		if u.CharmPending && !u.Dying {
			s.commitCharm(h, u)
		}
	}
	s.advancePortals()
}

// advanceDeath — юнит продолжает движение с линейно затухающей скоростью и тускнеет.
func (s *StatusEffectSystem) advanceDeath(h types.Handle, u *component.Unit) {
	total := s.c.cfg.Status.DeathTicks
	u.DeathTimer--
	if u.DeathTimer <= 0 {
		u.DeathTimer = 0
		u.Opacity = 0
		s.c.removeUnit(h, u)
		return
	}
	frac := float64(u.DeathTimer) / float64(total)
	u.Pos += u.DeathSpeed * frac
	u.Opacity = frac
}

func (s *StatusEffectSystem) tickTimers(h types.Handle, u *component.Unit, t *component.StatusTimers) {
	c := s.c
	if t.Freeze > 0 {
		t.Freeze--
		if t.Freeze == 0 {
			u.Frozen = false
			c.recalcSpeed(u)
		}
	}
	if t.Stun > 0 {
		t.Stun--
		if t.Stun == 0 {
			u.Stunned = false
		}
	}
	if t.Spray > 0 {
		t.Spray--
		if t.Spray == 0 {
			u.Spraying = false
			// Отложенная казнь: только живой и не обращённый юнит, и только при удачном броске
			if eligible(u) && utils.Chance(c.rng, c.cfg.Status.SprayKillChance) {
				c.kill(h, u, component.CauseSpray)
				return
			}
		}
	}
	if t.Charm > 0 {
		t.Charm--
		if t.Charm == 0 {
			s.revert(h, u)
		}
	}
	if t.Idle() {
		c.w.Status.Forget(h)
	}
}

func (s *StatusEffectSystem) revert(h types.Handle, u *component.Unit) {
	if u.Dying {
		return
	}
	u.Faction = component.FactionHostile
	u.InCombat = false
	u.AttackTimer = 0
	s.c.recalcSpeed(u)
	s.c.emit(event.UnitReverted, event.UnitData{Unit: h, DefID: u.DefID, Lane: u.Lane, Pos: u.Pos})
	s.c.log.Debug().Str("unit", h.String()).Str("kind", u.DefID).Msg("conversion expired")
}

func (s *StatusEffectSystem) commitCharm(h types.Handle, u *component.Unit) {
	c := s.c
	u.CharmPending = false
	u.Faction = component.FactionAllied
	u.InCombat = false
	u.AttackTimer = 0
	c.w.Status.Ensure(h).Charm = c.cfg.Status.CharmTicks
	c.recalcSpeed(u)
	c.emit(event.UnitConverted, event.UnitData{Unit: h, DefID: u.DefID, Lane: u.Lane, Pos: u.Pos})
	c.metrics.Conversion()
	c.log.Debug().Str("unit", h.String()).Str("kind", u.DefID).Int("ticks", c.cfg.Status.CharmTicks).Msg("unit converted")
}

func (s *StatusEffectSystem) advancePortals() {
	c := s.c
	for i, link := range c.w.Portals {
		if link.Advance(c.cfg.Portal.SwitchInterval, c.cfg.Portal.SwitchDowntime) {
			c.emit(event.PortalSwitched, event.PortalData{Link: i, Layout: link.Current})
		}
	}
}

// applyFreeze замораживает юнита. Повторное применение только обновляет таймер.
func (c *tickContext) applyFreeze(h types.Handle, u *component.Unit) {
	if u.Dying || u.Removed {
		return
	}
	c.w.Status.Ensure(h).Freeze = c.cfg.Status.FreezeTicks
	u.Frozen = true
	c.recalcSpeed(u)
}

// applyStun оглушает юнита.
func (c *tickContext) applyStun(h types.Handle, u *component.Unit, ticks int) {
	if u.Dying || u.Removed {
		return
	}
	c.w.Status.Ensure(h).Stun = ticks
	u.Stunned = true
}

// applySpray помечает юнита для отложенной казни.
func (c *tickContext) applySpray(h types.Handle, u *component.Unit) {
	if u.Dying || u.Removed {
		return
	}
	c.w.Status.Ensure(h).Spray = c.cfg.Status.SprayTicks
	u.Spraying = true
}

// applyCharm откладывает обращение до следующего тика.
func (c *tickContext) applyCharm(u *component.Unit) {
	if u.Dying || u.Removed || u.Converted() {
		return
	}
	u.CharmPending = true
}
