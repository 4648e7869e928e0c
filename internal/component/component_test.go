package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

func TestStatusTable(t *testing.T) {
	table := NewStatusTable()
	a := types.Handle{Index: 3, Gen: 1}
	b := types.Handle{Index: 1, Gen: 2}

	table.Ensure(a).Freeze = 10
	table.Ensure(b).Stun = 5
	assert.Same(t, table.Ensure(a), table.Ensure(a))

	s, ok := table.Get(a)
	require.True(t, ok)
	assert.False(t, s.Idle())
	assert.Equal(t, 2, table.Len())

	table.Forget(a)
	_, ok = table.Get(a)
	assert.False(t, ok)
	assert.Equal(t, 1, table.Len())
}

func TestProjectileHitSet(t *testing.T) {
	p := &Projectile{Kind: defs.ProjectilePenetrating}
	h := types.Handle{Index: 0, Gen: 1}
	assert.False(t, p.AlreadyHit(h))
	p.MarkHit(h)
	p.MarkHit(h)
	assert.True(t, p.AlreadyHit(h))
	assert.False(t, p.AlreadyHit(types.Handle{Index: 0, Gen: 2}))
	assert.Equal(t, 1, p.HitCount())
	assert.True(t, p.Penetrates())
}

func TestProjectileArcOffset(t *testing.T) {
	p := &Projectile{Duration: 10, Height: 2}
	assert.Equal(t, 0.0, p.ArcOffset())
	p.Elapsed = 5
	assert.InDelta(t, 2.0, p.ArcOffset(), 1e-9)
	p.Elapsed = 10
	assert.InDelta(t, 0.0, p.ArcOffset(), 1e-9)
}

func TestDefenderTakeDamage(t *testing.T) {
	d := NewDefender(defs.DefenderDefinition{ID: "wall", Health: 30}, lanegrid.Cell{Lane: 1, Col: 2})
	assert.Equal(t, 2.5, d.Pos())
	assert.False(t, d.TakeDamage(20))
	assert.True(t, d.TakeDamage(20))
	assert.False(t, d.TakeDamage(20), "already destroyed")
	assert.Equal(t, 0, d.Health)
}

func TestPortalLink(t *testing.T) {
	first := PortalLayout{A: PortalNode{Lane: 1, Pos: 6}, B: PortalNode{Lane: 3, Pos: 1}}
	second := PortalLayout{A: PortalNode{Lane: 0, Pos: 4}, B: PortalNode{Lane: 4, Pos: 7}}
	link := NewPortalLink(3, first, second)

	node, ok := link.Ahead(1, 2, 1)
	require.True(t, ok)
	assert.Equal(t, first.A, node)
	assert.Equal(t, first.B, link.Exit(node))
	_, ok = link.Ahead(1, 7, 1)
	assert.False(t, ok, "portal behind the attacker")

	_, ok = link.Touching(3, 1.1, 0.2)
	assert.True(t, ok)

	assert.False(t, link.Advance(3, 2))
	assert.False(t, link.Advance(3, 2))
	assert.True(t, link.Advance(3, 2))
	assert.Equal(t, second, link.Layout())
	assert.False(t, link.Active)
	_, ok = link.Ahead(0, 0, 1)
	assert.False(t, ok, "inactive during downtime")

	link.Advance(3, 2)
	link.Advance(3, 2)
	assert.True(t, link.Active)
}

func TestVisualEffectProgress(t *testing.T) {
	v := VisualEffect{Timer: 5, Duration: 20}
	assert.InDelta(t, 0.25, v.Progress(), 1e-9)
	assert.Equal(t, 1.0, (&VisualEffect{}).Progress())
}

func TestExplosionIsSourceUnit(t *testing.T) {
	h := types.Handle{Index: 0, Gen: 1}
	assert.True(t, Explosion{Source: h, FromUnit: true}.IsSourceUnit(h))
	assert.False(t, Explosion{Source: h}.IsSourceUnit(h), "defender handle never matches a unit")
	assert.False(t, Explosion{Source: h, FromUnit: true}.IsSourceUnit(types.Handle{Index: 1, Gen: 1}))
}
