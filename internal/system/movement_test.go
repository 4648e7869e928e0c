package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
)

// fastWalker — ходок, проходящий 0.1 клетки за тик.
func fastWalker(t *testing.T, w *entity.World, lane int, pos float64) *component.Unit {
	t.Helper()
	_, u := addUnit(t, w, "walker", lane, pos)
	u.BaseSpeed = 0.1
	u.RecalcSpeed(w.Config.Status.FreezeFactor)
	require.InDelta(t, -0.1, u.Speed, 1e-12)
	return u
}

func TestPortal_UnitTeleportsOncePerApproach(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	w.Portals = append(w.Portals, component.NewPortalLink(0, component.PortalLayout{
		A: component.PortalNode{Lane: 1, Pos: 4},
		B: component.PortalNode{Lane: 3, Pos: 7},
	}))
	u := fastWalker(t, w, 1, 4.15)

	r.SimulateTick(w, &fixedRand{})
	require.Equal(t, 3, u.Lane)
	assert.Equal(t, 7.0, u.Pos)
	assert.True(t, u.Portaled)

	// Выход тоже портал, но обратно юнит не возвращается
	r.SimulateTick(w, &fixedRand{})
	assert.Equal(t, 3, u.Lane)
	assert.InDelta(t, 6.9, u.Pos, 1e-9)
	assert.True(t, u.Portaled)

	run(r, w, &fixedRand{}, 10)
	assert.Equal(t, 3, u.Lane)
	assert.InDelta(t, 5.9, u.Pos, 1e-9)
	assert.False(t, u.Portaled, "re-armed once out of portal radius")
}

func TestPortal_UnitRearmsAndUsesNextPortal(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	w.Portals = append(w.Portals,
		component.NewPortalLink(0, component.PortalLayout{
			A: component.PortalNode{Lane: 1, Pos: 4},
			B: component.PortalNode{Lane: 3, Pos: 7},
		}),
		component.NewPortalLink(0, component.PortalLayout{
			A: component.PortalNode{Lane: 3, Pos: 5},
			B: component.PortalNode{Lane: 0, Pos: 8},
		}),
	)
	u := fastWalker(t, w, 1, 4.15)

	run(r, w, &fixedRand{}, 25)

	assert.Equal(t, 0, u.Lane)
	assert.InDelta(t, 7.45, u.Pos, 0.06)
	assert.False(t, u.Portaled)
}

func TestPortal_InactiveLinkIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	r := newTestResolver()
	link := component.NewPortalLink(0, component.PortalLayout{
		A: component.PortalNode{Lane: 1, Pos: 4},
		B: component.PortalNode{Lane: 3, Pos: 7},
	})
	link.Active = false
	w.Portals = append(w.Portals, link)
	u := fastWalker(t, w, 1, 4.15)

	run(r, w, &fixedRand{}, 3)
	assert.Equal(t, 1, u.Lane)
	assert.False(t, u.Portaled)
}
