package defs

// ProjectileDefinition describes a projectile variant.
type ProjectileDefinition struct {
	ID     string           `json:"id"`
	Kind   ProjectileKind   `json:"kind"`
	Speed  float64          `json:"speed"` // клеток за тик
	Effect ProjectileEffect `json:"effect,omitempty"`
}

func defaultProjectiles() []ProjectileDefinition {
	return []ProjectileDefinition{
		{ID: "pea", Kind: ProjectileLinear, Speed: 0.08},
		{ID: "snowpea", Kind: ProjectileLinear, Speed: 0.08, Effect: EffectFreeze},
		{ID: "thorn", Kind: ProjectilePenetrating, Speed: 0.08},
		{ID: "charm", Kind: ProjectileCharm, Speed: 0.06},
		{ID: "spike", Kind: ProjectileHoming, Speed: 0.1},
		{ID: "melon", Kind: ProjectileArc},
	}
}
