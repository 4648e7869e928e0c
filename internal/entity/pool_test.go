package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lane-defense/internal/types"
)

type item struct{ n int }

func TestPool_GenerationInvalidatesStaleHandles(t *testing.T) {
	var p Pool[item]
	a := p.Insert(&item{n: 1})
	b := p.Insert(&item{n: 2})
	assert.Equal(t, 2, p.Len())

	require.True(t, p.Remove(a))
	assert.False(t, p.Remove(a), "double remove")
	_, ok := p.Get(a)
	assert.False(t, ok)

	c := p.Insert(&item{n: 3})
	assert.Equal(t, a.Index, c.Index, "slot reused")
	assert.NotEqual(t, a.Gen, c.Gen)

	_, ok = p.Get(a)
	assert.False(t, ok, "stale handle must not resolve to the new occupant")
	got, ok := p.Get(c)
	require.True(t, ok)
	assert.Equal(t, 3, got.n)

	assert.Equal(t, []types.Handle{c, b}, p.Handles())
	assert.False(t, p.Contains(types.NilHandle))
	assert.False(t, p.Contains(types.Handle{Index: 99, Gen: 1}))
}

func TestPool_EachInSlotOrder(t *testing.T) {
	var p Pool[item]
	for i := 0; i < 4; i++ {
		p.Insert(&item{n: i})
	}
	var seen []int
	p.Each(func(_ types.Handle, v *item) { seen = append(seen, v.n) })
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestSpawnBudgetState(t *testing.T) {
	b := NewSpawnBudgetState(map[string]int{"exploder": 1})

	assert.True(t, b.Acquire("exploder"))
	assert.False(t, b.Acquire("exploder"))
	assert.True(t, b.Acquire("walker"), "no cap")
	assert.True(t, b.Acquire("walker"))

	b.Release("exploder")
	assert.True(t, b.CanSpawn("exploder"))
	assert.Equal(t, 1, b.Spawned("exploder"))
	assert.Equal(t, 2, b.Alive("walker"))

	b.Release("ghost")
	assert.Equal(t, 0, b.Alive("ghost"))
}
