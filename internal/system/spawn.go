package system

import (
	"errors"
	"fmt"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

var (
	ErrUnknownKind          = errors.New("unknown kind")
	ErrLaneOutOfRange       = errors.New("lane out of range")
	ErrSpawnBudgetExhausted = errors.New("spawn budget exhausted")
	ErrCellOccupied         = errors.New("cell occupied")
	ErrCellBlocked          = errors.New("cell blocked by terrain marker")
)

// UnitModifiers adjusts a spawned unit relative to its definition.
type UnitModifiers struct {
	HealthScale float64 // 0 — без изменений
	SpeedScale  float64 // 0 — без изменений
	BonusArmor  int
	Offset      float64 // Сдвиг позиции появления вдоль ряда
}

// SpawnUnit создаёт юнита за правым краем ряда lane.
func SpawnUnit(w *entity.World, lane int, kind string, mods UnitModifiers) (types.Handle, error) {
	def, ok := w.Library.Unit(kind)
	if !ok {
		return types.NilHandle, fmt.Errorf("spawn unit %q: %w", kind, ErrUnknownKind)
	}
	if !w.LaneInRange(lane) {
		return types.NilHandle, fmt.Errorf("spawn unit %q on lane %d: %w", kind, lane, ErrLaneOutOfRange)
	}
	if !w.Budget.Acquire(kind) {
		return types.NilHandle, fmt.Errorf("spawn unit %q: %w", kind, ErrSpawnBudgetExhausted)
	}

	pos := w.Config.Field.LaneLength + w.Config.Field.SpawnMargin + mods.Offset
	u := component.NewUnit(def, lane, pos)
	if mods.HealthScale > 0 {
		u.Health = int(float64(u.Health) * mods.HealthScale)
		u.MaxHealth = u.Health
	}
	if mods.SpeedScale > 0 {
		u.BaseSpeed *= mods.SpeedScale
	}
	if mods.BonusArmor > 0 {
		u.Armor += mods.BonusArmor
		u.MaxArmor = u.Armor
	}
	u.RecalcSpeed(w.Config.Status.FreezeFactor)
	return w.AddUnit(u), nil
}

// TargetHint подсказывает снаряду цель: ссылку на юнита и/или позицию.
type TargetHint struct {
	Unit types.Handle
	Pos  float64
}

// ProjectileOption настраивает создаваемый снаряд.
type ProjectileOption func(p *component.Projectile)

// WithDamage задаёт прямой урон и урон по области.
func WithDamage(damage, splash int) ProjectileOption {
	return func(p *component.Projectile) {
		p.Damage = damage
		p.SplashDamage = splash
	}
}

// WithSource запоминает защитника, выпустившего снаряд.
func WithSource(h types.Handle) ProjectileOption {
	return func(p *component.Projectile) {
		p.Source = h
	}
}

// SpawnProjectile создаёт снаряд типа kind в точке (lane, pos).
func SpawnProjectile(w *entity.World, kind string, lane int, pos float64, hint TargetHint, portalCapable bool, opts ...ProjectileOption) (types.Handle, error) {
	def, ok := w.Library.Projectile(kind)
	if !ok {
		return types.NilHandle, fmt.Errorf("spawn projectile %q: %w", kind, ErrUnknownKind)
	}
	if !w.LaneInRange(lane) {
		return types.NilHandle, fmt.Errorf("spawn projectile %q on lane %d: %w", kind, lane, ErrLaneOutOfRange)
	}

	p := &component.Projectile{
		DefID:         def.ID,
		Kind:          def.Kind,
		Effect:        def.Effect,
		Lane:          lane,
		Pos:           pos,
		Row:           float64(lane),
		Speed:         def.Speed,
		PortalCapable: portalCapable,
		SourceLane:    lane,
		SourcePos:     pos,
	}
	for _, opt := range opts {
		opt(p)
	}

	cfg := w.Config.Projectile
	switch def.Kind {
	case defs.ProjectileHoming:
		p.Target = hint.Unit
		if t, ok := w.Units.Get(hint.Unit); ok {
			p.Heading = headingTo(p.Pos, p.Row, t.Pos, float64(t.Lane), w.Config.Field.LaneSpacing)
		}
	case defs.ProjectileArc:
		p.StartPos = pos
		p.LandPos = hint.Pos
		if t, ok := w.Units.Get(hint.Unit); ok && hint.Pos == 0 {
			p.LandPos = t.Pos
		}
		p.Duration = cfg.ArcTicks
		p.Height = cfg.ArcHeight
	}
	return w.AddProjectile(p), nil
}

// PlaceDefender ставит защитника kind в клетку cell.
func PlaceDefender(w *entity.World, kind string, cell lanegrid.Cell) (types.Handle, error) {
	def, ok := w.Library.Defender(kind)
	if !ok {
		return types.NilHandle, fmt.Errorf("place defender %q: %w", kind, ErrUnknownKind)
	}
	if !w.CellInRange(cell) {
		return types.NilHandle, fmt.Errorf("place defender %q at %d/%d: %w", kind, cell.Lane, cell.Col, ErrLaneOutOfRange)
	}
	if _, _, taken := w.DefenderAt(cell); taken {
		return types.NilHandle, fmt.Errorf("place defender %q at %d/%d: %w", kind, cell.Lane, cell.Col, ErrCellOccupied)
	}
	if w.Terrain.Active(cell) {
		return types.NilHandle, fmt.Errorf("place defender %q at %d/%d: %w", kind, cell.Lane, cell.Col, ErrCellBlocked)
	}
	return w.AddDefender(component.NewDefender(def, cell)), nil
}
