package defs

// DefenderDefinition holds the static data for a stationary defender.
type DefenderDefinition struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Behavior      DefenderBehavior `json:"behavior"`
	Health        int              `json:"health"`
	FireInterval  int              `json:"fire_interval"` // тиков между атаками
	Projectile    string           `json:"projectile,omitempty"`
	Damage        int              `json:"damage"`
	SplashDamage  int              `json:"splash_damage"`
	Range         float64          `json:"range"` // 0 — весь ряд
	PortalCapable bool             `json:"portal_capable"`
	FuseTicks     int              `json:"fuse_ticks"`
	Visuals       Visuals          `json:"visuals"`
}

func defaultDefenders() []DefenderDefinition {
	return []DefenderDefinition{
		{ID: "peashooter", Name: "Peashooter", Behavior: DefenderShooter, Health: 300, FireInterval: 90, Projectile: "pea", Damage: 20, PortalCapable: true},
		{ID: "snowshooter", Name: "Snow Shooter", Behavior: DefenderShooter, Health: 300, FireInterval: 90, Projectile: "snowpea", Damage: 20, PortalCapable: true},
		{ID: "thornshooter", Name: "Thorn Shooter", Behavior: DefenderShooter, Health: 300, FireInterval: 120, Projectile: "thorn", Damage: 20},
		{ID: "charmer", Name: "Charmer", Behavior: DefenderShooter, Health: 300, FireInterval: 150, Projectile: "charm", Damage: 10},
		{ID: "spiker", Name: "Spiker", Behavior: DefenderHoming, Health: 300, FireInterval: 90, Projectile: "spike", Damage: 20},
		{ID: "lobber", Name: "Lobber", Behavior: DefenderLobber, Health: 300, FireInterval: 180, Projectile: "melon", Damage: 80, SplashDamage: 26},
		{ID: "zapper", Name: "Zapper", Behavior: DefenderChain, Health: 300, FireInterval: 150, Damage: 60, Range: 6},
		{ID: "sprayer", Name: "Sprayer", Behavior: DefenderSprayer, Health: 300, FireInterval: 300, Range: 3},
		{ID: "bomb", Name: "Bomb", Behavior: DefenderBomb, Health: 10000, Damage: 1800, FuseTicks: 60},
		{ID: "wall", Name: "Wall", Behavior: DefenderWall, Health: 4000},
	}
}
