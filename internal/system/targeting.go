package system

import (
	"math"
	"sort"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/spatial"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

// Aim — выбранная цель и позиция, в которую целится атакующий.
// При стрельбе через портал AimPos равна позиции входного портала.
type Aim struct {
	Handle    types.Handle
	Unit      *component.Unit
	Lane      int
	AimPos    float64
	ViaPortal bool
}

// frontLaneTarget — ближайшая цель на ряду впереди from, не дальше maxRange (0 — без ограничения)
// и не дальше limit по позиции.
func (c *tickContext) frontLaneTarget(lane int, from, maxRange, limit float64) (spatial.Entry, bool) {
	best, found := spatial.Entry{}, false
	bestDist := math.MaxFloat64
	for _, e := range c.index.Lane(lane) {
		u := e.Unit
		if !eligible(u) || u.Pos < from || u.Pos > limit {
			continue
		}
		d := u.Pos - from
		if maxRange > 0 && d > maxRange {
			continue
		}
		if d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}

// fieldEnd — дальняя граница поля, за которой юниты ещё не видны.
func (c *tickContext) fieldEnd() float64 {
	return c.cfg.Field.LaneLength
}

// frontLane находит ближайшую цель перед атакующим на его ряду.
func (c *tickContext) frontLane(lane int, from, maxRange float64) (Aim, bool) {
	e, ok := c.frontLaneTarget(lane, from, maxRange, c.fieldEnd())
	if !ok {
		return Aim{}, false
	}
	return Aim{Handle: e.Handle, Unit: e.Unit, Lane: lane, AimPos: e.Unit.Pos}, true
}

// globalNearest — ближайшая цель по евклидову расстоянию на всех рядах.
func (c *tickContext) globalNearest(lane int, pos float64, exclude func(types.Handle) bool) (Aim, bool) {
	spacing := c.cfg.Field.LaneSpacing
	best, found := Aim{}, false
	bestDist := math.MaxFloat64
	for l := 0; l < c.index.LaneCount(); l++ {
		for _, e := range c.index.Lane(l) {
			u := e.Unit
			if !eligible(u) || u.Pos > c.fieldEnd() {
				continue
			}
			if exclude != nil && exclude(e.Handle) {
				continue
			}
			d := lanegrid.Distance(lane, pos, u.Lane, u.Pos, spacing)
			if d < bestDist {
				best = Aim{Handle: e.Handle, Unit: u, Lane: u.Lane, AimPos: u.Pos}
				bestDist, found = d, true
			}
		}
	}
	return best, found
}

// portalAware сначала ищет цель между атакующим и ближайшим порталом впереди,
// затем на рядах выхода за позицией выхода. Без портала впереди работает как frontLane.
func (c *tickContext) portalAware(lane int, from, maxRange float64) (Aim, bool) {
	type entry struct {
		link *component.PortalLink
		node component.PortalNode
	}
	var ahead []entry
	for _, link := range c.w.Portals {
		if node, ok := link.Ahead(lane, from, 1); ok {
			ahead = append(ahead, entry{link: link, node: node})
		}
	}
	if len(ahead) == 0 {
		return c.frontLane(lane, from, maxRange)
	}
	sort.SliceStable(ahead, func(i, j int) bool { return ahead[i].node.Pos < ahead[j].node.Pos })

	nearest := ahead[0].node
	if e, ok := c.frontLaneTarget(lane, from, maxRange, nearest.Pos); ok {
		return Aim{Handle: e.Handle, Unit: e.Unit, Lane: lane, AimPos: e.Unit.Pos}, true
	}

	for _, a := range ahead {
		exit := a.link.Exit(a.node)
		if e, ok := c.frontLaneTarget(exit.Lane, exit.Pos, 0, c.fieldEnd()); ok {
			return Aim{Handle: e.Handle, Unit: e.Unit, Lane: exit.Lane, AimPos: a.node.Pos, ViaPortal: true}, true
		}
	}
	return Aim{}, false
}
