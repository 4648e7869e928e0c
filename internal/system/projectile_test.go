package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
)

func TestLinearProjectile_ResolvesAgainstOneUnit(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, a := addStill(t, w, 0, 3.1, 200)
	_, b := addStill(t, w, 0, 3.2, 200)
	_, c := addStill(t, w, 0, 3.3, 200)

	ph, err := SpawnProjectile(w, "pea", 0, 3, TargetHint{}, false, WithDamage(20, 0))
	require.NoError(t, err)

	report := r.SimulateTick(w, &fixedRand{})

	assert.Len(t, report.EventsOf(event.ProjectileHit), 1)
	assert.Equal(t, 180, a.Health)
	assert.Equal(t, 200, b.Health)
	assert.Equal(t, 200, c.Health)
	assert.Contains(t, report.Projectiles, ph)
}

func TestPenetratingProjectile_HitsEachUnitOnce(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, a := addStill(t, w, 0, 3.1, 200)
	_, b := addStill(t, w, 0, 3.2, 200)
	_, c := addStill(t, w, 0, 3.3, 200)

	ph, err := SpawnProjectile(w, "thorn", 0, 3, TargetHint{}, false, WithDamage(20, 0))
	require.NoError(t, err)

	reports := run(r, w, &fixedRand{}, 3)

	assert.Equal(t, 3, countEvents(reports, event.ProjectileHit))
	for _, u := range []*component.Unit{a, b, c} {
		assert.Equal(t, 180, u.Health)
	}
	p, ok := w.Projectiles.Get(ph)
	require.True(t, ok)
	assert.False(t, p.Done, "penetrating projectile keeps flying")
	assert.Equal(t, 3, p.HitCount())
}

func TestProjectile_ImmuneHitIsResolvedNotMissed(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, u := addStill(t, w, 0, 3.1, 200)
	u.ImmunityChance = 0.5

	ph, err := SpawnProjectile(w, "pea", 0, 3, TargetHint{}, false, WithDamage(20, 0))
	require.NoError(t, err)

	report := r.SimulateTick(w, &fixedRand{vals: []float64{0.1}})

	hits := report.EventsOf(event.ProjectileHit)
	require.Len(t, hits, 1)
	assert.Equal(t, "immune", hits[0].Data.(event.ProjectileHitData).Outcome)
	assert.Equal(t, 200, u.Health)
	assert.Len(t, u.Flashes, 1)
	assert.Contains(t, report.Projectiles, ph)
}

func TestProjectile_SkipsConvertedAndDyingUnits(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	_, allied := addStill(t, w, 0, 3.1, 200)
	allied.Faction = component.FactionAllied
	_, dying := addStill(t, w, 0, 3.15, 200)
	dying.Dying = true
	_, target := addStill(t, w, 0, 3.3, 200)

	_, err := SpawnProjectile(w, "pea", 0, 3, TargetHint{}, false, WithDamage(20, 0))
	require.NoError(t, err)
	r.SimulateTick(w, &fixedRand{})

	assert.Equal(t, 200, allied.Health)
	assert.Equal(t, 180, target.Health)
}

func TestSnowProjectile_Freezes(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	h, u := addUnit(t, w, "walker", 0, 3.2)
	base := u.Speed

	_, err := SpawnProjectile(w, "snowpea", 0, 3, TargetHint{}, false, WithDamage(20, 0))
	require.NoError(t, err)
	r.SimulateTick(w, &fixedRand{})

	assert.True(t, u.Frozen)
	assert.InDelta(t, base*0.5, u.Speed, 1e-12)
	timers, ok := w.Status.Get(h)
	require.True(t, ok)
	assert.Equal(t, w.Config.Status.FreezeTicks, timers.Freeze)
}

func TestProjectile_RemovedOffField(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	ph, err := SpawnProjectile(w, "pea", 0, 9.45, TargetHint{}, false)
	require.NoError(t, err)

	report := r.SimulateTick(w, &fixedRand{})
	assert.Equal(t, ph, report.Projectiles[0])
}

func TestHomingProjectile_RetargetsAfterCooldown(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	first, _ := addStill(t, w, 0, 5, 200)
	second, _ := addStill(t, w, 2, 5, 200)

	ph, err := SpawnProjectile(w, "spike", 0, 1, TargetHint{Unit: first}, false, WithDamage(20, 0))
	require.NoError(t, err)
	p, _ := w.Projectiles.Get(ph)
	assert.Equal(t, 0.0, p.Heading)

	require.True(t, w.RemoveUnit(first))
	r.SimulateTick(w, &fixedRand{})

	assert.True(t, p.Target.IsNil())
	assert.Equal(t, w.Config.Projectile.RetargetCooldown-1, p.RetargetCooldown)
	assert.Equal(t, 0.0, p.Heading, "keeps the last heading while waiting")

	run(r, w, &fixedRand{}, w.Config.Projectile.RetargetCooldown-2)
	assert.True(t, p.Target.IsNil())

	r.SimulateTick(w, &fixedRand{})
	assert.Equal(t, second, p.Target)
	assert.Greater(t, p.Heading, 0.0, "turns toward the new target")
}

func TestHomingProjectile_HitsTarget(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	h, u := addStill(t, w, 1, 3, 200)

	ph, err := SpawnProjectile(w, "spike", 0, 1, TargetHint{Unit: h}, false, WithDamage(30, 0))
	require.NoError(t, err)

	var removed bool
	for i := 0; i < 60 && !removed; i++ {
		report := r.SimulateTick(w, &fixedRand{})
		for _, p := range report.Projectiles {
			removed = removed || p == ph
		}
	}
	assert.True(t, removed)
	assert.Equal(t, 170, u.Health)
}

func TestPortalCapableProjectile_Teleports(t *testing.T) {
	w := newTestWorld(t)
	w.Portals = append(w.Portals, component.NewPortalLink(0, component.PortalLayout{
		A: component.PortalNode{Lane: 1, Pos: 6},
		B: component.PortalNode{Lane: 3, Pos: 1},
	}))
	r := newTestResolver()
	_, u := addStill(t, w, 3, 2, 200)

	ph, err := SpawnProjectile(w, "pea", 1, 5.9, TargetHint{}, true, WithDamage(20, 0))
	require.NoError(t, err)
	p, _ := w.Projectiles.Get(ph)

	r.SimulateTick(w, &fixedRand{})
	assert.True(t, p.Portaled)
	assert.Equal(t, 3, p.Lane)

	run(r, w, &fixedRand{}, 15)
	assert.Equal(t, 180, u.Health)
}

func TestPortal_IgnoredWhenBehindSource(t *testing.T) {
	w := newTestWorld(t)
	w.Portals = append(w.Portals, component.NewPortalLink(0, component.PortalLayout{
		A: component.PortalNode{Lane: 1, Pos: 6},
		B: component.PortalNode{Lane: 3, Pos: 1},
	}))
	r := newTestResolver()

	// Снаряд выпущен за порталом: портал не должен его захватить
	p := &component.Projectile{Kind: "linear", Lane: 1, Row: 1, Pos: 5.95, Speed: 0.08,
		PortalCapable: true, SourceLane: 1, SourcePos: 6.5}
	w.AddProjectile(p)
	r.SimulateTick(w, &fixedRand{})

	assert.False(t, p.Portaled)
	assert.Equal(t, 1, p.Lane)
}
