package defs

// UnitDefinition holds all the static data for a specific kind of mobile unit.
type UnitDefinition struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Behavior        UnitBehavior `json:"behavior"`
	Health          int          `json:"health"`
	Armor           int          `json:"armor"`
	Speed           float64      `json:"speed"` // клеток за тик
	AttackDamage    int          `json:"attack_damage"`
	AttackInterval  int          `json:"attack_interval"` // тиков, 0 = из конфигурации
	ImmunityChance  float64      `json:"immunity_chance"`
	Size            float64      `json:"size"`
	FuseTicks       int          `json:"fuse_ticks"`
	ExplosionDamage int          `json:"explosion_damage"`
	ExplosionRadius float64      `json:"explosion_radius"`
	Special         bool         `json:"special"` // ограничивается SpawnBudgetState
	Visuals         Visuals      `json:"visuals"`
}

func defaultUnits() []UnitDefinition {
	return []UnitDefinition{
		{ID: "walker", Name: "Walker", Behavior: BehaviorWalker, Health: 200, Speed: 0.0075, AttackDamage: 20, Size: 1},
		{ID: "cone", Name: "Cone", Behavior: BehaviorWalker, Health: 200, Armor: 370, Speed: 0.0075, AttackDamage: 20, Size: 1},
		{ID: "bucket", Name: "Bucket", Behavior: BehaviorWalker, Health: 200, Armor: 1100, Speed: 0.0075, AttackDamage: 20, Size: 1},
		{ID: "runner", Name: "Runner", Behavior: BehaviorWalker, Health: 150, Speed: 0.02, AttackDamage: 15, ImmunityChance: 0.2, Size: 0.8},
		{ID: "giant", Name: "Giant", Behavior: BehaviorWalker, Health: 3000, Speed: 0.004, AttackDamage: 200, AttackInterval: 60, Size: 2, Special: true},
		{ID: "exploder", Name: "Exploder", Behavior: BehaviorExploder, Health: 340, Speed: 0.012, AttackDamage: 20,
			Size: 1, FuseTicks: 900, ExplosionDamage: 1800, ExplosionRadius: 1.5, Special: true},
		{ID: "trailer", Name: "Trailer", Behavior: BehaviorTrailer, Health: 1350, Speed: 0.01, AttackDamage: 100, Size: 1.4, Special: true},
	}
}
