package system

import (
	"github.com/rs/zerolog"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/metrics"
	"go-lane-defense/internal/spatial"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// tickContext — состояние, общее для всех систем на время одного тика.
type tickContext struct {
	w       *entity.World
	cfg     *config.Config
	rng     utils.Random
	index   *spatial.Index
	report  *RemovalReport
	events  *event.Dispatcher
	log     zerolog.Logger
	metrics *metrics.Recorder

	removedUnits       map[types.Handle]bool
	removedProjectiles map[types.Handle]bool
	removedDefenders   map[types.Handle]bool
}

func (c *tickContext) begin(w *entity.World, rng utils.Random) {
	c.w = w
	c.cfg = w.Config
	c.rng = rng
	c.report = &RemovalReport{}
	c.removedUnits = make(map[types.Handle]bool)
	c.removedProjectiles = make(map[types.Handle]bool)
	c.removedDefenders = make(map[types.Handle]bool)
	if c.index == nil || c.index.LaneCount() != c.cfg.Field.LaneCount {
		c.index = spatial.NewIndex(c.cfg.Field.LaneCount)
	}
}

func (c *tickContext) finish() RemovalReport {
	report := *c.report
	c.report = nil
	c.w = nil
	c.rng = nil
	return report
}

func (c *tickContext) rebuildIndex() {
	c.index.Rebuild(&c.w.Units)
}

// emit пишет событие в журнал отчёта и рассылает подписчикам.
func (c *tickContext) emit(t event.EventType, data interface{}) {
	e := event.Event{Type: t, Tick: c.w.Tick, Data: data}
	c.report.Events = append(c.report.Events, e)
	c.events.Dispatch(e)
}

func (c *tickContext) sound(name string) {
	c.emit(event.SoundCue, event.SoundData{Name: name})
}

func (c *tickContext) removeUnit(h types.Handle, u *component.Unit) {
	u.Removed = true
	u.InCombat = false
	if c.removedUnits[h] {
		return
	}
	c.removedUnits[h] = true
	c.report.Units = append(c.report.Units, h)
}

func (c *tickContext) removeProjectile(h types.Handle, p *component.Projectile) {
	p.Done = true
	if c.removedProjectiles[h] {
		return
	}
	c.removedProjectiles[h] = true
	c.report.Projectiles = append(c.report.Projectiles, h)
}

func (c *tickContext) removeDefender(h types.Handle, d *component.Defender) {
	d.Destroyed = true
	if c.removedDefenders[h] {
		return
	}
	c.removedDefenders[h] = true
	c.report.Defenders = append(c.report.Defenders, h)
}

func (c *tickContext) addEffect(e component.VisualEffect) {
	c.w.Effects = append(c.w.Effects, e)
}

// attackInterval возвращает интервал атаки юнита в тиках.
func (c *tickContext) attackInterval(u *component.Unit) int {
	if u.AttackInterval > 0 {
		return u.AttackInterval
	}
	return c.cfg.Faction.AttackInterval
}

// recalcSpeed пересчитывает скорость юнита из сохранённой базовой.
func (c *tickContext) recalcSpeed(u *component.Unit) {
	u.RecalcSpeed(c.cfg.Status.FreezeFactor)
}
