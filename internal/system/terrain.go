package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/lanegrid"
)

// TerrainSystem обновляет слой меток: старение, новые метки от следопытов и ускорение юнитов.
type TerrainSystem struct {
	c *tickContext
}

func NewTerrainSystem(c *tickContext) *TerrainSystem {
	return &TerrainSystem{c: c}
}

func (s *TerrainSystem) Update() {
	c := s.c
	c.w.Terrain.Tick()

	for _, h := range c.w.Units.Handles() {
		u, _ := c.w.Units.Get(h)
		// Оглушённые юниты пропускают пересчёт скорости от местности
		if !u.Alive() || u.Stunned {
			continue
		}
		if u.Behavior == defs.BehaviorTrailer {
			s.sample(u)
			continue
		}
		s.applyBoost(u)
	}
}

// sample ставит метку на клетку позади следопыта раз в SampleInterval тиков.
func (s *TerrainSystem) sample(u *component.Unit) {
	c := s.c
	u.TrailTimer++
	if u.TrailTimer < c.cfg.Terrain.SampleInterval {
		return
	}
	u.TrailTimer = 0
	cell := lanegrid.CellOf(u.Lane, u.Pos).Behind(u.Speed)
	if !c.w.CellInRange(cell) {
		return
	}
	if c.w.Terrain.Mark(cell, c.cfg.Terrain.Lifetime, c.cfg.Terrain.SpeedMultiplier) {
		c.emit(event.TerrainMarked, event.TerrainData{Cell: cell})
	}
}

// applyBoost берёт множитель метки текущей клетки и пересчитывает скорость
// от сохранённой базовой, поэтому ускорение не накапливается.
func (s *TerrainSystem) applyBoost(u *component.Unit) {
	boost := s.c.w.Terrain.Multiplier(lanegrid.CellOf(u.Lane, u.Pos))
	if boost == u.TerrainBoost {
		return
	}
	u.TerrainBoost = boost
	s.c.recalcSpeed(u)
}
