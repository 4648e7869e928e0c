package system

import (
	"github.com/rs/zerolog"

	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/metrics"
	"go-lane-defense/internal/utils"
)

// CombatResolver advances one simulation tick. Stage order is fixed:
// status timers, melee and attacks, faction combat, projectiles, explosions, terrain.
// Later stages read flags (dying, killed by explosion, stunned) set by earlier ones.
type CombatResolver struct {
	ctx *tickContext

	status     *StatusEffectSystem
	movement   *MovementSystem
	defenders  *DefenderSystem
	faction    *FactionCombatSystem
	projectile *ProjectileSystem
	area       *AreaAttackSystem
	terrain    *TerrainSystem
	visual     *VisualEffectSystem
}

// NewCombatResolver создаёт резолвер. dispatcher и recorder могут быть nil.
func NewCombatResolver(dispatcher *event.Dispatcher, log zerolog.Logger, recorder *metrics.Recorder) *CombatResolver {
	c := &tickContext{
		events:  dispatcher,
		log:     log,
		metrics: recorder,
	}
	return &CombatResolver{
		ctx:        c,
		status:     NewStatusEffectSystem(c),
		movement:   NewMovementSystem(c),
		defenders:  NewDefenderSystem(c),
		faction:    NewFactionCombatSystem(c),
		projectile: NewProjectileSystem(c),
		area:       NewAreaAttackSystem(c),
		terrain:    NewTerrainSystem(c),
		visual:     NewVisualEffectSystem(c),
	}
}

// SimulateTick mutates the world in place and returns what the caller must remove.
// A nil world or an empty one yields an empty report.
func (r *CombatResolver) SimulateTick(w *entity.World, rng utils.Random) RemovalReport {
	if w == nil || w.Config == nil {
		return RemovalReport{}
	}
	c := r.ctx
	c.begin(w, rng)
	w.Tick++

	r.visual.Update()
	r.status.Update()

	c.rebuildIndex()
	r.movement.Update()
	r.defenders.Update()

	c.rebuildIndex()
	r.faction.Update()
	r.projectile.Update()
	r.area.Update()
	r.terrain.Update()

	return c.finish()
}
