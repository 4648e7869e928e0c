// internal/event/types.go
package event

import (
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

const (
	UnitKilled         EventType = "UnitKilled"        // Юнит вошёл в состояние умирания
	UnitConverted      EventType = "UnitConverted"     // Юнит перешёл на сторону защитников
	UnitReverted       EventType = "UnitReverted"      // Обращение закончилось
	LaneBreached       EventType = "LaneBreached"      // Враг дошёл до дома
	DefenderDestroyed  EventType = "DefenderDestroyed" // Защитник уничтожен
	ProjectileFired    EventType = "ProjectileFired"
	ProjectileHit      EventType = "ProjectileHit"
	SplashLanded       EventType = "SplashLanded"
	ExplosionTriggered EventType = "ExplosionTriggered"
	ChainArc           EventType = "ChainArc"
	CurrencyDropped    EventType = "CurrencyDropped"
	SoundCue           EventType = "SoundCue"
	PortalSwitched     EventType = "PortalSwitched"
	TerrainMarked      EventType = "TerrainMarked"
)

// UnitData — событие о конкретном юните.
type UnitData struct {
	Unit  types.Handle
	DefID string
	Lane  int
	Pos   float64
	Cause string // Только для UnitKilled
}

type DefenderData struct {
	Defender types.Handle
	DefID    string
	Cell     lanegrid.Cell
}

type ProjectileFiredData struct {
	Projectile types.Handle
	Source     types.Handle
	Kind       string
	Lane       int
	Pos        float64
	TargetPos  float64
}

// ProjectileHitData.Outcome: "miss", "immune", "damaged" или "killed".
type ProjectileHitData struct {
	Projectile types.Handle
	Unit       types.Handle
	Outcome    string
	Damage     int
}

type SplashLandedData struct {
	Projectile types.Handle
	Lane       int
	Pos        float64
	Targets    int
}

type ExplosionData struct {
	Source   types.Handle
	FromUnit bool
	Lane     int
	Pos      float64
	Victims  int
}

type ChainArcData struct {
	From, To types.Handle
	Jump     int
	Damage   int
}

type CurrencyData struct {
	Lane   int
	Pos    float64
	Amount int
}

// Звуковые подсказки для слоя представления.
const (
	SoundShoot   = "shoot"
	SoundSplat   = "splat"
	SoundExplode = "explode"
	SoundZap     = "zap"
	SoundChomp   = "chomp"
	SoundFreeze  = "freeze"
	SoundSpray   = "spray"
)

type SoundData struct {
	Name string
}

type PortalData struct {
	Link   int
	Layout int
}

type TerrainData struct {
	Cell lanegrid.Cell
}
