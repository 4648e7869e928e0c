package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Field.LaneCount)
	assert.Equal(t, 9.0, cfg.Field.LaneLength)
	assert.Equal(t, 60, cfg.Status.DeathTicks)
	assert.Equal(t, 0.5, cfg.Status.FreezeFactor)
	assert.Equal(t, 0.7, cfg.Chain.Falloff)
	assert.Equal(t, 3, cfg.Chain.MaxJumps)
	assert.Equal(t, 1, cfg.Explosion.GridRadius)
	assert.Equal(t, 2, cfg.SpawnCaps["exploder"])
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lanesim.json")
	body := `{
		"logLevel": "debug",
		"field": { "laneCount": 6 },
		"chain": { "falloff": 0.5, "maxJumps": 4 },
		"status": { "sprayKillChance": 1 }
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 6, cfg.Field.LaneCount)
	assert.Equal(t, 0.5, cfg.Chain.Falloff)
	assert.Equal(t, 4, cfg.Chain.MaxJumps)
	assert.Equal(t, 1.0, cfg.Status.SprayKillChance)
	// Не указанные в файле значения берутся по умолчанию
	assert.Equal(t, 9.0, cfg.Field.LaneLength)
	assert.Equal(t, 600, cfg.Status.CharmTicks)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/lanesim.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_RejectsNegativeProbability(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lanesim.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"drops": {"chance": -0.2}}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "drops.chance")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"spray chance above one", func(c *Config) { c.Status.SprayKillChance = 1.5 }},
		{"zero death ticks", func(c *Config) { c.Status.DeathTicks = 0 }},
		{"no lanes", func(c *Config) { c.Field.LaneCount = 0 }},
		{"falloff zero", func(c *Config) { c.Chain.Falloff = 0 }},
		{"falloff above one", func(c *Config) { c.Chain.Falloff = 1.2 }},
		{"negative cap", func(c *Config) { c.SpawnCaps["exploder"] = -1 }},
		{"negative grid radius", func(c *Config) { c.Explosion.GridRadius = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrOutOfRange)
		})
	}

	assert.NoError(t, Default().Validate())
}

func TestValidate_ReportsFirstKeyInOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		cfg := Default()
		cfg.Terrain.Lifetime = 0
		cfg.Status.DeathTicks = 0
		cfg.Faction.AttackInterval = 0
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Contains(t, err.Error(), "faction.attackInterval")

		cfg = Default()
		cfg.SpawnCaps = map[string]int{"trailer": -1, "exploder": -2, "giant": -3}
		err = cfg.Validate()
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Contains(t, err.Error(), "spawnCaps.exploder")
	}
}
