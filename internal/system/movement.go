// internal/system/movement.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

// MovementSystem двигает юнитов, разрешает укусы защитников, порталы и прорывы.
type MovementSystem struct {
	c *tickContext
}

func NewMovementSystem(c *tickContext) *MovementSystem {
	return &MovementSystem{c: c}
}

func (s *MovementSystem) Update() {
	c := s.c
	for _, h := range c.w.Units.Handles() {
		u, _ := c.w.Units.Get(h)
		if !u.Alive() {
			continue
		}
		// Оглушённый юнит не двигается и не атакует
		if u.Stunned {
			continue
		}
		unitKindOf(u.Behavior).update(s, h, u)
	}
}

// bite ищет защитника впереди на расстоянии укуса. Возвращает true, если юнит занят едой.
func (s *MovementSystem) bite(h types.Handle, u *component.Unit) bool {
	c := s.c
	dh, d, ok := s.blockingDefender(u)
	if !ok {
		u.AttackTimer = 0
		return false
	}
	u.AttackTimer++
	if u.AttackTimer < c.attackInterval(u) {
		return true
	}
	u.AttackTimer = 0
	c.sound(event.SoundChomp)
	if d.TakeDamage(u.AttackDamage) {
		c.removeDefender(dh, d)
		c.emit(event.DefenderDestroyed, event.DefenderData{Defender: dh, DefID: d.DefID, Cell: d.Cell})
		c.log.Debug().Str("defender", d.DefID).Int("lane", d.Lane()).Int("col", d.Cell.Col).
			Str("by", h.String()).Msg("defender destroyed")
	}
	return true
}

// blockingDefender — ближайший живой защитник перед юнитом в пределах укуса.
func (s *MovementSystem) blockingDefender(u *component.Unit) (types.Handle, *component.Defender, bool) {
	c := s.c
	reach := c.cfg.Faction.BiteRange
	col := lanegrid.CellOf(u.Lane, u.Pos).Col
	for _, cc := range []int{col, col - 1} {
		dh, d, ok := c.w.DefenderAt(lanegrid.Cell{Lane: u.Lane, Col: cc})
		if !ok || d.Destroyed {
			continue
		}
		gap := u.Pos - d.Pos()
		if gap >= -reach && gap <= reach {
			return dh, d, true
		}
	}
	return types.NilHandle, nil, false
}

// move сдвигает юнита, проводит его через порталы и проверяет выход за поле.
func (s *MovementSystem) move(h types.Handle, u *component.Unit) {
	c := s.c
	u.Pos += u.Speed
	s.teleport(u)

	switch {
	case !u.Converted() && u.Pos < 0:
		c.removeUnit(h, u)
		c.emit(event.LaneBreached, event.UnitData{Unit: h, DefID: u.DefID, Lane: u.Lane, Pos: u.Pos})
		c.log.Debug().Str("unit", h.String()).Str("kind", u.DefID).Int("lane", u.Lane).Msg("lane breached")
	case u.Converted() && u.Pos > c.cfg.Field.LaneLength+c.cfg.Field.SpawnMargin:
		c.removeUnit(h, u)
	}
}

// teleport переносит юнита через портал один раз за подход.
func (s *MovementSystem) teleport(u *component.Unit) {
	c := s.c
	radius := c.cfg.Portal.Radius
	if u.Portaled {
		for _, link := range c.w.Portals {
			if link.Near(u.Lane, u.Pos, radius) {
				return
			}
		}
		u.Portaled = false
		return
	}
	for _, link := range c.w.Portals {
		node, ok := link.Touching(u.Lane, u.Pos, radius)
		if !ok {
			continue
		}
		exit := link.Exit(node)
		u.Lane = exit.Lane
		u.Pos = exit.Pos
		u.Portaled = true
		u.InCombat = false
		return
	}
}
