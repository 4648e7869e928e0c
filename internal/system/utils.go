// internal/system/utils.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// HitOutcome — результат разрешения одного попадания.
type HitOutcome uint8

const (
	HitMiss    HitOutcome = iota // Цель не приняла удар (уже умирает)
	HitImmune                    // Попадание засчитано, урон отменён иммунитетом
	HitDamaged
	HitKilled
)

func (o HitOutcome) String() string {
	switch o {
	case HitImmune:
		return "immune"
	case HitDamaged:
		return "damaged"
	case HitKilled:
		return "killed"
	}
	return "miss"
}

// flashTicks — длительность вспышки при попадании.
const flashTicks = 8

// rollsImmunity — иммунитет проверяется только для снарядов, осколков и цепной молнии.
func rollsImmunity(cause component.KillCause) bool {
	switch cause {
	case component.CauseProjectile, component.CauseSplash, component.CauseChain:
		return true
	}
	return false
}

// damageUnit наносит урон юниту. Взрывной урон игнорирует броню и иммунитет.
// Возвращает исход и сколько эффективного здоровья было снято.
func (c *tickContext) damageUnit(h types.Handle, u *component.Unit, damage int, cause component.KillCause) (HitOutcome, int) {
	if !u.Alive() {
		return HitMiss, 0
	}
	if rollsImmunity(cause) && utils.Chance(c.rng, u.ImmunityChance) {
		u.AddFlash(flashTicks)
		return HitImmune, 0
	}

	var removed int
	if cause == component.CauseExplosion {
		removed = u.TakeArmorIgnoringDamage(damage)
	} else {
		removed = u.TakeDamage(damage)
	}
	u.AddFlash(flashTicks)

	if u.Health <= 0 {
		c.kill(h, u, cause)
		return HitKilled, removed
	}
	return HitDamaged, removed
}

// kill переводит юнита в состояние умирания.
// Флаг самоуничтожения выставляется до перехода и только если смерть не от взрыва.
func (c *tickContext) kill(h types.Handle, u *component.Unit, cause component.KillCause) {
	if u.Dying || u.Removed {
		return
	}
	u.KillCause = cause
	if u.SelfDestructs() && cause != component.CauseExplosion && !u.Exploded {
		u.ExplodeQueued = true
	}

	u.DeathSpeed = u.Speed
	if u.Stunned || u.InCombat {
		u.DeathSpeed = 0
	}
	u.Dying = true
	u.DeathTimer = c.cfg.Status.DeathTicks
	u.Health = 0
	u.Frozen = false
	u.Stunned = false
	u.Spraying = false
	u.CharmPending = false
	u.InCombat = false
	c.w.Status.Forget(h)

	c.emit(event.UnitKilled, event.UnitData{
		Unit:  h,
		DefID: u.DefID,
		Lane:  u.Lane,
		Pos:   u.Pos,
		Cause: cause.String(),
	})
	c.metrics.Kill(cause.String())

	if !u.Converted() && utils.Chance(c.rng, c.cfg.Drops.Chance) {
		c.emit(event.CurrencyDropped, event.CurrencyData{Lane: u.Lane, Pos: u.Pos, Amount: c.cfg.Drops.Amount})
	}
}

// eligible — юнит может быть целью атак защитников.
func eligible(u *component.Unit) bool {
	return u.Alive() && !u.Converted()
}
