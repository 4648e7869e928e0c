// internal/component/unit.go
package component

import "go-lane-defense/internal/defs"

// Faction — сторона, за которую сражается юнит.
type Faction uint8

const (
	FactionHostile Faction = iota
	FactionAllied
)

func (f Faction) String() string {
	if f == FactionAllied {
		return "allied"
	}
	return "hostile"
}

// Opposes reports whether two factions fight each other.
func (f Faction) Opposes(other Faction) bool {
	return f != other
}

// Direction возвращает знак движения: враги идут к дому (к нулю), союзники обратно.
func (f Faction) Direction() float64 {
	if f == FactionAllied {
		return 1
	}
	return -1
}

// KillCause records why a unit died.
type KillCause uint8

const (
	CauseNone KillCause = iota
	CauseProjectile
	CauseSplash
	CauseChain
	CauseMelee
	CauseSpray
	CauseExplosion
	CauseFuse
)

func (c KillCause) String() string {
	switch c {
	case CauseProjectile:
		return "projectile"
	case CauseSplash:
		return "splash"
	case CauseChain:
		return "chain"
	case CauseMelee:
		return "melee"
	case CauseSpray:
		return "spray"
	case CauseExplosion:
		return "explosion"
	case CauseFuse:
		return "fuse"
	}
	return "none"
}

// Unit — подвижная сущность на ряду.
type Unit struct {
	DefID    string
	Behavior defs.UnitBehavior

	Lane int
	Pos  float64 // Убывание позиции = продвижение к дому

	Health, MaxHealth int
	Armor, MaxArmor   int

	BaseSpeed float64 // Модуль исходной скорости, не меняется после создания
	Speed     float64 // Текущая скорость со знаком, пересчитывается из BaseSpeed

	Faction        Faction
	ImmunityChance float64
	Size           float64

	AttackDamage   int
	AttackInterval int
	AttackTimer    int

	// Статусы. Таймеры хранятся в StatusTable.
	Frozen       bool
	Stunned      bool
	Spraying     bool
	CharmPending bool
	Dying        bool

	DeathTimer int
	DeathSpeed float64 // Скорость в момент смерти
	Opacity    float64

	KillCause     KillCause
	ExplodeQueued bool // Выставляется до перехода в Dying
	Exploded      bool

	FuseTimer       int
	ExplosionDamage int
	ExplosionRadius float64

	InCombat bool
	Opponent bool // Есть ли противник в пределах окна на этом тике
	Removed  bool // Уже передан вызывающему на удаление

	Portaled     bool    // Уже прошёл через портал на текущем подходе
	TerrainBoost float64 // Множитель метки под юнитом, 1 — метки нет
	TrailTimer   int

	Flashes []Flash
}

// NewUnit создаёт юнита по определению.
func NewUnit(def defs.UnitDefinition, lane int, pos float64) *Unit {
	size := def.Size
	if size <= 0 {
		size = 1
	}
	u := &Unit{
		DefID:           def.ID,
		Behavior:        def.Behavior,
		Lane:            lane,
		Pos:             pos,
		Health:          def.Health,
		MaxHealth:       def.Health,
		Armor:           def.Armor,
		MaxArmor:        def.Armor,
		BaseSpeed:       def.Speed,
		Faction:         FactionHostile,
		ImmunityChance:  def.ImmunityChance,
		Size:            size,
		AttackDamage:    def.AttackDamage,
		AttackInterval:  def.AttackInterval,
		Opacity:         1,
		FuseTimer:       def.FuseTicks,
		ExplosionDamage: def.ExplosionDamage,
		ExplosionRadius: def.ExplosionRadius,
		TerrainBoost:    1,
	}
	u.RecalcSpeed(1)
	return u
}

// EffectiveHealth — здоровье вместе с бронёй.
func (u *Unit) EffectiveHealth() int {
	return u.Health + u.Armor
}

// Alive reports whether the unit still takes part in combat.
func (u *Unit) Alive() bool {
	return !u.Dying && !u.Removed && u.Health > 0
}

// Converted reports whether the unit currently fights for the allied side.
func (u *Unit) Converted() bool {
	return u.Faction == FactionAllied
}

// SelfDestructs reports whether death by ordinary damage must still detonate the unit.
func (u *Unit) SelfDestructs() bool {
	return u.Behavior == defs.BehaviorExploder && u.ExplosionDamage > 0
}

// TakeDamage applies damage armor-first; overflow beyond the armor carries into health.
// Returns the amount of effective health actually removed.
func (u *Unit) TakeDamage(d int) int {
	if d <= 0 {
		return 0
	}
	before := u.EffectiveHealth()
	if u.Armor > 0 {
		if d <= u.Armor {
			u.Armor -= d
			d = 0
		} else {
			d -= u.Armor
			u.Armor = 0
		}
	}
	u.Health -= d
	if u.Health < 0 {
		u.Health = 0
	}
	return before - u.EffectiveHealth()
}

// TakeArmorIgnoringDamage bypasses armor entirely.
func (u *Unit) TakeArmorIgnoringDamage(d int) int {
	if d <= 0 {
		return 0
	}
	before := u.Health
	u.Health -= d
	if u.Health < 0 {
		u.Health = 0
	}
	return before - u.Health
}

// RecalcSpeed derives Speed from BaseSpeed, faction, freeze and terrain boost.
// BaseSpeed is never touched, so neither modifier can compound.
func (u *Unit) RecalcSpeed(freezeFactor float64) {
	s := u.BaseSpeed
	if u.Frozen {
		s *= freezeFactor
	}
	if u.TerrainBoost > 0 {
		s *= u.TerrainBoost
	}
	u.Speed = u.Faction.Direction() * s
}

// AddFlash ставит в очередь косметическую вспышку.
func (u *Unit) AddFlash(duration int) {
	u.Flashes = append(u.Flashes, Flash{Duration: duration})
}

// AdvanceFlashes продвигает вспышки и удаляет завершённые.
func (u *Unit) AdvanceFlashes() {
	kept := u.Flashes[:0]
	for _, f := range u.Flashes {
		f.Timer++
		if f.Timer < f.Duration {
			kept = append(kept, f)
		}
	}
	u.Flashes = kept
}
