// internal/entity/world.go
package entity

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/terrain"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

// World owns every live collection the resolver works on.
type World struct {
	Config  *config.Config
	Library *defs.Library

	Units       Pool[component.Unit]
	Projectiles Pool[component.Projectile]
	Defenders   Pool[component.Defender]

	Portals []*component.PortalLink
	Terrain *terrain.Layer
	Status  *component.StatusTable
	Budget  *SpawnBudgetState

	// Взрывы, ожидающие стадии разрешения
	Explosions []component.Explosion
	Effects    []component.VisualEffect

	Tick uint64

	cells map[lanegrid.Cell]types.Handle
}

// NewWorld создаёт пустой мир.
func NewWorld(cfg *config.Config, lib *defs.Library) *World {
	return &World{
		Config:  cfg,
		Library: lib,
		Terrain: terrain.NewLayer(),
		Status:  component.NewStatusTable(),
		Budget:  NewSpawnBudgetState(cfg.SpawnCaps),
		cells:   make(map[lanegrid.Cell]types.Handle),
	}
}

// LaneInRange reports whether lane is a valid lane index.
func (w *World) LaneInRange(lane int) bool {
	return lane >= 0 && lane < w.Config.Field.LaneCount
}

// CellInRange reports whether the cell lies on the field.
func (w *World) CellInRange(c lanegrid.Cell) bool {
	return w.LaneInRange(c.Lane) && c.Col >= 0 && float64(c.Col) < w.Config.Field.LaneLength
}

// Unit разрешает ссылку на юнита.
func (w *World) Unit(h types.Handle) (*component.Unit, bool) {
	return w.Units.Get(h)
}

// AddUnit кладёт юнита в пул.
func (w *World) AddUnit(u *component.Unit) types.Handle {
	return w.Units.Insert(u)
}

// AddProjectile кладёт снаряд в пул.
func (w *World) AddProjectile(p *component.Projectile) types.Handle {
	return w.Projectiles.Insert(p)
}

// AddDefender занимает клетку защитником.
func (w *World) AddDefender(d *component.Defender) types.Handle {
	h := w.Defenders.Insert(d)
	w.cells[d.Cell] = h
	return h
}

// DefenderAt возвращает защитника в клетке.
func (w *World) DefenderAt(c lanegrid.Cell) (types.Handle, *component.Defender, bool) {
	h, ok := w.cells[c]
	if !ok {
		return types.NilHandle, nil, false
	}
	d, ok := w.Defenders.Get(h)
	if !ok {
		return types.NilHandle, nil, false
	}
	return h, d, true
}

// RemoveUnit удаляет юнита, его таймеры статусов и освобождает бюджет.
func (w *World) RemoveUnit(h types.Handle) bool {
	u, ok := w.Units.Get(h)
	if !ok {
		return false
	}
	w.Budget.Release(u.DefID)
	w.Status.Forget(h)
	return w.Units.Remove(h)
}

// RemoveProjectile удаляет снаряд.
func (w *World) RemoveProjectile(h types.Handle) bool {
	return w.Projectiles.Remove(h)
}

// RemoveDefender удаляет защитника и освобождает клетку.
func (w *World) RemoveDefender(h types.Handle) bool {
	d, ok := w.Defenders.Get(h)
	if !ok {
		return false
	}
	if w.cells[d.Cell] == h {
		delete(w.cells, d.Cell)
	}
	return w.Defenders.Remove(h)
}
