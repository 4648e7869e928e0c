package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/system"
	"go-lane-defense/pkg/lanegrid"
)

func newTestGame(t *testing.T, mutate func(c *config.Config)) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	if mutate != nil {
		mutate(cfg)
	}
	require.NoError(t, cfg.Validate())
	return NewGame(cfg, defs.DefaultLibrary(), zerolog.Nop(), nil)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, nil)
	assert.NotEmpty(t, g.BattleID)
	assert.Equal(t, 1, g.Speed())
	assert.False(t, g.IsPaused())
	assert.Zero(t, g.Spawner.Number())
}

func TestStep_AppliesRemovals(t *testing.T) {
	g := newTestGame(t, nil)
	def, _ := g.World.Library.Unit("walker")
	g.World.AddUnit(component.NewUnit(def, 2, 0.001))

	report := g.Step()

	require.Len(t, report.Units, 1)
	assert.Zero(t, g.World.Units.Len())
	assert.Equal(t, 1, g.Breaches)
}

func TestListener_CountsKillsAndCurrency(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) {
		c.Drops.Chance = 1
		c.Drops.Amount = 25
		c.Status.DeathTicks = 2
	})
	def, _ := g.World.Library.Unit("walker")
	u := component.NewUnit(def, 1, 5)
	u.Health = 10
	g.World.AddUnit(u)
	_, err := system.SpawnProjectile(g.World, "pea", 1, 4.9, system.TargetHint{}, false, system.WithDamage(20, 0))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		g.Step()
	}

	assert.Equal(t, 1, g.Kills)
	assert.Equal(t, 25, g.Currency)
	assert.Zero(t, g.World.Units.Len(), "dead unit is removed after the death countdown")
	assert.Zero(t, g.World.Projectiles.Len())
}

func TestUpdate_SpeedAndPause(t *testing.T) {
	g := newTestGame(t, nil)

	g.Update()
	assert.Equal(t, uint64(1), g.World.Tick)

	g.HandleSpeedClick()
	assert.Equal(t, 2, g.Speed())
	g.Update()
	assert.Equal(t, uint64(3), g.World.Tick)

	g.HandlePauseClick()
	g.Update()
	assert.Equal(t, uint64(3), g.World.Tick)

	g.HandleSpeedClick()
	g.HandleSpeedClick()
	assert.Equal(t, 1, g.Speed())
}

func TestPlaceDefender(t *testing.T) {
	g := newTestGame(t, nil)
	require.NoError(t, g.PlaceDefender("wall", lanegrid.Cell{Lane: 0, Col: 2}))
	assert.ErrorIs(t, g.PlaceDefender("wall", lanegrid.Cell{Lane: 0, Col: 2}), system.ErrCellOccupied)
}

func TestSetupDemo(t *testing.T) {
	g := newTestGame(t, nil)
	require.NoError(t, g.SetupDemo())

	assert.Equal(t, 5*2+3, g.World.Defenders.Len())
	require.Len(t, g.World.Portals, 1)
	assert.True(t, g.World.Portals[0].Active)

	// Демо-бой не паникует и двигает время
	for i := 0; i < 1200; i++ {
		g.Step()
	}
	assert.Equal(t, uint64(1200), g.World.Tick)
	assert.GreaterOrEqual(t, g.Spawner.Number(), 1)
}

func TestSetupDemo_ReportsPlacementError(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.Field.LaneLength = 3 })

	err := g.SetupDemo()
	require.ErrorIs(t, err, system.ErrLaneOutOfRange)
	assert.Contains(t, err.Error(), "wall")
	assert.Empty(t, g.World.Portals)
}
