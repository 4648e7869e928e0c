package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

func makeAllied(w *entity.World, u *component.Unit) {
	u.Faction = component.FactionAllied
	u.RecalcSpeed(w.Config.Status.FreezeFactor)
}

func TestFactionCombat_EngageDamageDisengage(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, ally := addUnit(t, w, "walker", 2, 5)
	makeAllied(w, ally)
	_, foe := addUnit(t, w, "walker", 2, 5.2)
	foe.Health = 20

	r.SimulateTick(w, &fixedRand{})
	require.True(t, ally.InCombat)
	require.True(t, foe.InCombat)
	engaged := ally.Pos

	reports := run(r, w, &fixedRand{}, 29)
	assert.Equal(t, engaged, ally.Pos, "fighting units hold position")
	assert.True(t, foe.Dying)
	assert.Equal(t, component.CauseMelee, foe.KillCause)
	assert.False(t, ally.InCombat, "no live opponent left in the window")
	assert.Equal(t, 1, countEvents(reports, event.UnitKilled))

	r.SimulateTick(w, &fixedRand{})
	assert.Greater(t, ally.Pos, engaged, "resumes walking")
}

func TestFactionCombat_OutOfWindow(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, ally := addStill(t, w, 1, 2, 200)
	makeAllied(w, ally)
	addStill(t, w, 1, 4, 200)

	run(r, w, &fixedRand{}, 5)
	assert.False(t, ally.InCombat)
}

func TestBomb_GridExplosionIgnoresArmor(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	bh, err := PlaceDefender(w, "bomb", cell(2, 4))
	require.NoError(t, err)

	_, bucket := addUnit(t, w, "bucket", 2, 4.5)
	bucket.BaseSpeed, bucket.Speed = 0, 0
	_, diagonal := addStill(t, w, 3, 5.4, 200)
	_, far := addStill(t, w, 0, 4.5, 200)

	reports := run(r, w, &fixedRand{}, 59)
	assert.Zero(t, countEvents(reports, event.ExplosionTriggered))

	report := r.SimulateTick(w, &fixedRand{})
	require.Len(t, report.EventsOf(event.ExplosionTriggered), 1)
	assert.Contains(t, report.Defenders, bh, "bomb is consumed")

	assert.True(t, bucket.Dying)
	assert.Equal(t, component.CauseExplosion, bucket.KillCause)
	assert.True(t, diagonal.Dying)
	assert.False(t, far.Dying)
	assert.Equal(t, 200, far.Health)
}

func TestBomb_KilledExploderDoesNotExplode(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, err := PlaceDefender(w, "bomb", cell(2, 4))
	require.NoError(t, err)
	wh, err := PlaceDefender(w, "wall", cell(2, 5))
	require.NoError(t, err)

	_, ex := addUnit(t, w, "exploder", 2, 4.5)
	ex.BaseSpeed, ex.Speed = 0, 0

	reports := run(r, w, &fixedRand{}, 70)

	assert.Equal(t, 1, countEvents(reports, event.ExplosionTriggered))
	assert.True(t, ex.Dying)
	assert.Equal(t, component.CauseExplosion, ex.KillCause)
	assert.False(t, ex.ExplodeQueued)
	wall, _ := w.Defenders.Get(wh)
	assert.Equal(t, 4000, wall.Health)
}

func TestBomb_HitsUnitWithSameHandleAsBomb(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	bh, err := PlaceDefender(w, "bomb", cell(1, 2))
	require.NoError(t, err)
	uh, u := addStill(t, w, 1, 2.5, 200)
	// Пулы независимы, поэтому первые ручки совпадают
	require.Equal(t, bh, uh)

	reports := run(r, w, &fixedRand{}, 61)

	assert.Equal(t, 1, countEvents(reports, event.ExplosionTriggered))
	assert.True(t, u.Dying)
	assert.Equal(t, component.CauseExplosion, u.KillCause)
}

func TestExploder_ShotDownDetonates(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	wh, err := PlaceDefender(w, "wall", cell(1, 4))
	require.NoError(t, err)
	_, ex := addUnit(t, w, "exploder", 1, 5.0)
	ex.BaseSpeed, ex.Speed = 0, 0
	ex.Health = 10
	_, neighbour := addStill(t, w, 1, 5.5, 200)

	_, err = SpawnProjectile(w, "pea", 1, 4.8, TargetHint{}, false, WithDamage(20, 0))
	require.NoError(t, err)
	reports := run(r, w, &fixedRand{}, 5)

	require.True(t, ex.Dying)
	assert.Equal(t, component.CauseProjectile, ex.KillCause)
	assert.True(t, ex.Exploded)
	assert.Equal(t, 1, countEvents(reports, event.ExplosionTriggered))

	wall, _ := w.Defenders.Get(wh)
	assert.Equal(t, 4000-1800, wall.Health)
	assert.Equal(t, 200, neighbour.Health, "same-side units are spared")
}

func TestExploder_FuseRunsOut(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, ex := addUnit(t, w, "exploder", 0, 7)
	ex.FuseTimer = 2

	reports := run(r, w, &fixedRand{}, 3)
	assert.True(t, ex.Dying)
	assert.Equal(t, component.CauseFuse, ex.KillCause)
	assert.Equal(t, 1, countEvents(reports, event.ExplosionTriggered))
}

func TestTerrain_BoostDoesNotCompound(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, u := addUnit(t, w, "walker", 0, 5.5)
	original := u.Speed
	w.Terrain.Mark(cell(0, 5), 5, w.Config.Terrain.SpeedMultiplier)

	r.SimulateTick(w, &fixedRand{})
	require.Equal(t, 1.5, u.TerrainBoost)
	boosted := u.Speed
	assert.InDelta(t, original*1.5, boosted, 1e-12)

	run(r, w, &fixedRand{}, 2)
	assert.Equal(t, boosted, u.Speed)

	run(r, w, &fixedRand{}, 10)
	assert.Equal(t, 1.0, u.TerrainBoost)
	assert.Equal(t, original, u.Speed)
}

func TestTerrain_UsesMarkerMultiplier(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, u := addUnit(t, w, "walker", 1, 3.5)
	original := u.Speed
	w.Terrain.Mark(cell(1, 3), 50, 2.0)

	r.SimulateTick(w, &fixedRand{})
	assert.Equal(t, 2.0, u.TerrainBoost)
	assert.InDelta(t, original*2, u.Speed, 1e-12)
}

func TestTerrain_TrailerMarksCellBehind(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	addUnit(t, w, "trailer", 2, 5.5)

	reports := run(r, w, &fixedRand{}, w.Config.Terrain.SampleInterval)

	assert.True(t, w.Terrain.Active(cell(2, 6)))
	assert.Equal(t, 1, countEvents(reports, event.TerrainMarked))

	_, err := PlaceDefender(w, "wall", cell(2, 6))
	assert.ErrorIs(t, err, ErrCellBlocked)
}

func TestPlaceDefender_Errors(t *testing.T) {
	w := newTestWorld(t)
	_, err := PlaceDefender(w, "peashooter", cell(0, 0))
	require.NoError(t, err)

	_, err = PlaceDefender(w, "wall", cell(0, 0))
	assert.ErrorIs(t, err, ErrCellOccupied)
	_, err = PlaceDefender(w, "wall", cell(9, 0))
	assert.ErrorIs(t, err, ErrLaneOutOfRange)
	_, err = PlaceDefender(w, "wall", cell(0, 12))
	assert.ErrorIs(t, err, ErrLaneOutOfRange)
	_, err = PlaceDefender(w, "tree", cell(1, 1))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSpawnUnit_Budget(t *testing.T) {
	w := newTestWorld(t)

	first, err := SpawnUnit(w, 0, "exploder", UnitModifiers{})
	require.NoError(t, err)
	_, err = SpawnUnit(w, 1, "exploder", UnitModifiers{})
	require.NoError(t, err)
	_, err = SpawnUnit(w, 2, "exploder", UnitModifiers{})
	assert.ErrorIs(t, err, ErrSpawnBudgetExhausted)

	require.True(t, w.RemoveUnit(first))
	_, err = SpawnUnit(w, 2, "exploder", UnitModifiers{})
	assert.NoError(t, err)

	// Обычные юниты не ограничены
	for i := 0; i < 10; i++ {
		_, err = SpawnUnit(w, 0, "walker", UnitModifiers{})
		require.NoError(t, err)
	}
}

func TestSpawnUnit_Modifiers(t *testing.T) {
	w := newTestWorld(t)
	h, err := SpawnUnit(w, 3, "cone", UnitModifiers{HealthScale: 2, SpeedScale: 2, BonusArmor: 30, Offset: 1})
	require.NoError(t, err)
	u, _ := w.Unit(h)

	assert.Equal(t, 3, u.Lane)
	assert.Equal(t, 10.5, u.Pos)
	assert.Equal(t, 400, u.Health)
	assert.Equal(t, 400, u.Armor)
	assert.InDelta(t, -0.015, u.Speed, 1e-12)

	_, err = SpawnUnit(w, 7, "walker", UnitModifiers{})
	assert.ErrorIs(t, err, ErrLaneOutOfRange)
	_, err = SpawnUnit(w, 0, "ghost", UnitModifiers{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBite_DestroysDefender(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	wh, err := PlaceDefender(w, "wall", cell(0, 4))
	require.NoError(t, err)
	wall, _ := w.Defenders.Get(wh)
	wall.Health = 20
	_, u := addUnit(t, w, "walker", 0, 4.6)

	reports := run(r, w, &fixedRand{}, 29)
	assert.Equal(t, 4.6, u.Pos, "eating, not walking")
	assert.Zero(t, countEvents(reports, event.DefenderDestroyed))

	report := r.SimulateTick(w, &fixedRand{})
	assert.Len(t, report.EventsOf(event.DefenderDestroyed), 1)
	assert.Equal(t, wh, report.Defenders[0])

	r.SimulateTick(w, &fixedRand{})
	assert.Less(t, u.Pos, 4.6)
}

func TestBreach(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	h, _ := addUnit(t, w, "walker", 4, 0.005)

	report := r.SimulateTick(w, &fixedRand{})
	assert.Len(t, report.EventsOf(event.LaneBreached), 1)
	assert.Equal(t, h, report.Units[0])
}

func TestShooter_FiresOnlyWithTarget(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	dh, err := PlaceDefender(w, "peashooter", cell(1, 1))
	require.NoError(t, err)

	reports := run(r, w, &fixedRand{}, 3)
	assert.Zero(t, countEvents(reports, event.ProjectileFired))

	addStill(t, w, 1, 6, 200)
	report := r.SimulateTick(w, &fixedRand{})
	fired := report.EventsOf(event.ProjectileFired)
	require.Len(t, fired, 1)
	data := fired[0].Data.(event.ProjectileFiredData)
	assert.Equal(t, dh, data.Source)
	assert.Equal(t, 1, w.Projectiles.Len())

	reports = run(r, w, &fixedRand{}, 89)
	assert.Zero(t, countEvents(reports, event.ProjectileFired), "reloading")
}
