package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/spatial"
	"go-lane-defense/internal/types"
)

// FactionCombatSystem ведёт бой обращённых юнитов с вражескими на одном ряду.
type FactionCombatSystem struct {
	c *tickContext
}

func NewFactionCombatSystem(c *tickContext) *FactionCombatSystem {
	return &FactionCombatSystem{c: c}
}

type duel struct {
	h        types.Handle
	u        *component.Unit
	opponent spatial.Entry
}

func (s *FactionCombatSystem) Update() {
	c := s.c
	window := c.cfg.Faction.CombatRange

	// Пары определяются по снимку до нанесения урона
	var duels []duel
	for lane := 0; lane < c.index.LaneCount(); lane++ {
		entries := c.index.Lane(lane)
		for _, e := range entries {
			u := e.Unit
			u.Opponent = false
			if !u.Alive() {
				continue
			}
			if opp, ok := nearestOpponent(entries, u, window); ok {
				u.Opponent = true
				duels = append(duels, duel{h: e.Handle, u: u, opponent: opp})
			}
		}
	}

	for _, d := range duels {
		u := d.u
		if !u.InCombat {
			u.InCombat = true
			u.AttackTimer = 0
		}
		if !u.Alive() || u.Stunned || !d.opponent.Unit.Alive() {
			continue
		}
		u.AttackTimer++
		if u.AttackTimer < c.attackInterval(u) {
			continue
		}
		u.AttackTimer = 0
		c.damageUnit(d.opponent.Handle, d.opponent.Unit, u.AttackDamage, component.CauseMelee)
	}

	// Выход из боя: противник погиб или в окне никого не осталось
	c.w.Units.Each(func(h types.Handle, u *component.Unit) {
		if !u.InCombat {
			return
		}
		if !u.Alive() || !u.Opponent || !s.hasLiveOpponent(u, window) {
			u.InCombat = false
			u.AttackTimer = 0
		}
	})
}

func (s *FactionCombatSystem) hasLiveOpponent(u *component.Unit, window float64) bool {
	_, ok := nearestOpponent(s.c.index.Lane(u.Lane), u, window)
	return ok
}

// nearestOpponent — ближайший живой юнит противоположной стороны в пределах окна.
func nearestOpponent(entries []spatial.Entry, u *component.Unit, window float64) (spatial.Entry, bool) {
	best, found := spatial.Entry{}, false
	bestDist := math.MaxFloat64
	for _, e := range entries {
		o := e.Unit
		if o == u || !o.Alive() || !o.Faction.Opposes(u.Faction) {
			continue
		}
		d := math.Abs(o.Pos - u.Pos)
		if d <= window && d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}
