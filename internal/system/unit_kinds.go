package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/types"
)

// unitKind — поведение конкретного типа юнита на стадии ближнего боя.
type unitKind interface {
	update(s *MovementSystem, h types.Handle, u *component.Unit)
}

// unitKindOf выбирает поведение. Неизвестные типы ведут себя как обычный ходок.
func unitKindOf(b defs.UnitBehavior) unitKind {
	switch b {
	case defs.BehaviorExploder:
		return exploderKind{}
	case defs.BehaviorTrailer:
		return trailerKind{}
	case defs.BehaviorWalker:
		return walkerKind{}
	}
	return walkerKind{}
}

// walkerKind идёт по ряду и кусает защитников на пути.
type walkerKind struct{}

func (walkerKind) update(s *MovementSystem, h types.Handle, u *component.Unit) {
	if u.InCombat {
		return
	}
	if !u.Converted() && s.bite(h, u) {
		return
	}
	s.move(h, u)
}

// exploderKind — ходок с запалом; по окончании запала взрывается.
type exploderKind struct{}

func (exploderKind) update(s *MovementSystem, h types.Handle, u *component.Unit) {
	if u.FuseTimer > 0 {
		u.FuseTimer--
		if u.FuseTimer == 0 {
			s.c.kill(h, u, component.CauseFuse)
			return
		}
	}
	walkerKind{}.update(s, h, u)
}

// trailerKind ходит как обычный юнит; метки на клетках ставит TerrainSystem.
type trailerKind struct{}

func (trailerKind) update(s *MovementSystem, h types.Handle, u *component.Unit) {
	walkerKind{}.update(s, h, u)
}
