package system

import (
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

// arcTicks — сколько тиков рисуется дуга молнии.
const arcTicks = 12

// chainDamage — урон на прыжке jump: base * falloff^jump с округлением вниз.
func chainDamage(base int, falloff float64, jump int) int {
	return int(math.Floor(float64(base)*math.Pow(falloff, float64(jump)) + 1e-9))
}

// chainLightning бьёт первую цель и перескакивает на ближайшие ещё не поражённые
// цели в радиусе прыжка. Возвращает нанесённый на каждом шаге урон.
func (c *tickContext) chainLightning(source types.Handle, firstH types.Handle, first *component.Unit, base int, fromPos float64) []int {
	cfg := c.cfg.Chain
	spacing := c.cfg.Field.LaneSpacing
	visited := map[types.Handle]bool{}

	var dealt []int
	prevH := source
	prevX, prevY := fromPos, float64(first.Lane)
	curH, cur := firstH, first
	for jump := 0; jump <= cfg.MaxJumps; jump++ {
		dmg := chainDamage(base, cfg.Falloff, jump)
		if dmg <= 0 {
			break
		}
		visited[curH] = true
		c.damageUnit(curH, cur, dmg, component.CauseChain)
		dealt = append(dealt, dmg)

		c.emit(event.ChainArc, event.ChainArcData{From: prevH, To: curH, Jump: jump, Damage: dmg})
		c.addEffect(component.VisualEffect{
			Kind:     component.EffectArc,
			FromX:    prevX,
			FromY:    prevY,
			ToX:      cur.Pos,
			ToY:      float64(cur.Lane),
			Duration: arcTicks,
		})

		nextH, next, ok := c.nearestUnvisited(cur.Lane, cur.Pos, cfg.JumpRadius, spacing, visited)
		if !ok {
			break
		}
		prevH, prevX, prevY = curH, cur.Pos, float64(cur.Lane)
		curH, cur = nextH, next
	}
	return dealt
}

// nearestUnvisited — ближайший подходящий юнит в радиусе на любом ряду.
func (c *tickContext) nearestUnvisited(lane int, pos, radius, spacing float64, visited map[types.Handle]bool) (types.Handle, *component.Unit, bool) {
	var (
		bestH types.Handle
		bestU *component.Unit
	)
	bestDist := math.MaxFloat64
	for l := 0; l < c.index.LaneCount(); l++ {
		for _, e := range c.index.Lane(l) {
			if visited[e.Handle] || !eligible(e.Unit) {
				continue
			}
			d := lanegrid.Distance(lane, pos, e.Unit.Lane, e.Unit.Pos, spacing)
			if d <= radius+1e-9 && d < bestDist {
				bestH, bestU, bestDist = e.Handle, e.Unit, d
			}
		}
	}
	return bestH, bestU, bestU != nil
}
