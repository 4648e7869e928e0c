// internal/defs/types.go
package defs

import "image/color"

// UnitBehavior selects the per-type behavior of a mobile unit.
type UnitBehavior string

const (
	BehaviorWalker   UnitBehavior = "walker"
	BehaviorExploder UnitBehavior = "exploder"
	BehaviorTrailer  UnitBehavior = "trailer"
)

// DefenderBehavior selects how a stationary defender attacks.
type DefenderBehavior string

const (
	DefenderShooter DefenderBehavior = "shooter"
	DefenderHoming  DefenderBehavior = "homing"
	DefenderLobber  DefenderBehavior = "lobber"
	DefenderChain   DefenderBehavior = "chain"
	DefenderSprayer DefenderBehavior = "sprayer"
	DefenderBomb    DefenderBehavior = "bomb"
	DefenderWall    DefenderBehavior = "wall"
)

// ProjectileKind is the closed set of projectile motion/impact variants.
type ProjectileKind string

const (
	ProjectileLinear      ProjectileKind = "linear"
	ProjectileArc         ProjectileKind = "arc"
	ProjectileHoming      ProjectileKind = "homing"
	ProjectilePenetrating ProjectileKind = "penetrating"
	ProjectileCharm       ProjectileKind = "charm"
)

// ProjectileEffect — побочный эффект попадания.
type ProjectileEffect string

const (
	EffectNone   ProjectileEffect = ""
	EffectFreeze ProjectileEffect = "freeze"
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color        color.RGBA `json:"color"`
	RadiusFactor float64    `json:"radius_factor"`
}
