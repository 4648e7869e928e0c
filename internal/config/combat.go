package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// ErrOutOfRange сообщает о значении конфигурации вне допустимого диапазона.
var ErrOutOfRange = errors.New("config value out of range")

// EnvPrefix — префикс переменных окружения, переопределяющих файл.
const EnvPrefix = "LANESIM"

// FieldConfig описывает геометрию поля.
type FieldConfig struct {
	LaneCount   int     `mapstructure:"laneCount"`
	LaneLength  float64 `mapstructure:"laneLength"`  // клеток в ряду
	LaneSpacing float64 `mapstructure:"laneSpacing"` // расстояние между рядами в клетках
	SpawnMargin float64 `mapstructure:"spawnMargin"` // насколько за краем поля появляются юниты
}

// StatusConfig holds status effect durations (ticks) and probabilities.
type StatusConfig struct {
	DeathTicks      int     `mapstructure:"deathTicks"`
	FreezeTicks     int     `mapstructure:"freezeTicks"`
	FreezeFactor    float64 `mapstructure:"freezeFactor"`
	StunTicks       int     `mapstructure:"stunTicks"`
	SprayTicks      int     `mapstructure:"sprayTicks"`
	SprayKillChance float64 `mapstructure:"sprayKillChance"`
	CharmTicks      int     `mapstructure:"charmTicks"`
}

// ProjectileConfig holds collision and motion parameters shared by projectiles.
type ProjectileConfig struct {
	HitRadius        float64 `mapstructure:"hitRadius"`
	SplashRadiusX    float64 `mapstructure:"splashRadiusX"`
	SplashRadiusY    float64 `mapstructure:"splashRadiusY"`
	ArcTicks         int     `mapstructure:"arcTicks"`
	ArcHeight        float64 `mapstructure:"arcHeight"`
	HomingTurnRate   float64 `mapstructure:"homingTurnRate"` // радиан за тик
	RetargetCooldown int     `mapstructure:"retargetCooldown"`
}

// FactionConfig — ближний бой: юнит против юнита и юнит против защитника.
type FactionConfig struct {
	CombatRange    float64 `mapstructure:"combatRange"`
	AttackInterval int     `mapstructure:"attackInterval"`
	BiteRange      float64 `mapstructure:"biteRange"`
}

type ExplosionConfig struct {
	GridRadius int `mapstructure:"gridRadius"`
}

type ChainConfig struct {
	Falloff    float64 `mapstructure:"falloff"`
	JumpRadius float64 `mapstructure:"jumpRadius"`
	MaxJumps   int     `mapstructure:"maxJumps"`
}

type TerrainConfig struct {
	SpeedMultiplier float64 `mapstructure:"speedMultiplier"`
	Lifetime        int     `mapstructure:"lifetime"`
	SampleInterval  int     `mapstructure:"sampleInterval"`
}

type PortalConfig struct {
	Radius         float64 `mapstructure:"radius"`
	SwitchInterval int     `mapstructure:"switchInterval"`
	SwitchDowntime int     `mapstructure:"switchDowntime"`
}

type DropConfig struct {
	Chance float64 `mapstructure:"chance"`
	Amount int     `mapstructure:"amount"`
}

// Config — неизменяемый во время симуляции набор чисел уровня.
type Config struct {
	LogLevel   string           `mapstructure:"logLevel"`
	Seed       int64            `mapstructure:"seed"`
	Field      FieldConfig      `mapstructure:"field"`
	Status     StatusConfig     `mapstructure:"status"`
	Projectile ProjectileConfig `mapstructure:"projectile"`
	Faction    FactionConfig    `mapstructure:"faction"`
	Explosion  ExplosionConfig  `mapstructure:"explosion"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Terrain    TerrainConfig    `mapstructure:"terrain"`
	Portal     PortalConfig     `mapstructure:"portal"`
	Drops      DropConfig       `mapstructure:"drops"`
	SpawnCaps  map[string]int   `mapstructure:"spawnCaps"`
}

// Default возвращает встроенные значения (60 тиков = 1 секунда).
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Field: FieldConfig{
			LaneCount:   5,
			LaneLength:  9,
			LaneSpacing: 1,
			SpawnMargin: 0.5,
		},
		Status: StatusConfig{
			DeathTicks:      60,
			FreezeTicks:     600,
			FreezeFactor:    0.5,
			StunTicks:       120,
			SprayTicks:      180,
			SprayKillChance: 0.3,
			CharmTicks:      600,
		},
		Projectile: ProjectileConfig{
			HitRadius:        0.3,
			SplashRadiusX:    1.0,
			SplashRadiusY:    1.0,
			ArcTicks:         45,
			ArcHeight:        1.5,
			HomingTurnRate:   0.15,
			RetargetCooldown: 10,
		},
		Faction: FactionConfig{
			CombatRange:    0.4,
			AttackInterval: 30,
			BiteRange:      0.5,
		},
		Explosion: ExplosionConfig{GridRadius: 1},
		Chain: ChainConfig{
			Falloff:    0.7,
			JumpRadius: 1.5,
			MaxJumps:   3,
		},
		Terrain: TerrainConfig{
			SpeedMultiplier: 1.5,
			Lifetime:        300,
			SampleInterval:  15,
		},
		Portal: PortalConfig{
			Radius:         0.2,
			SwitchInterval: 900,
			SwitchDowntime: 60,
		},
		Drops: DropConfig{Chance: 0.1, Amount: 25},
		SpawnCaps: map[string]int{
			"exploder": 2,
			"trailer":  1,
		},
	}
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("seed", d.Seed)

	v.SetDefault("field.laneCount", d.Field.LaneCount)
	v.SetDefault("field.laneLength", d.Field.LaneLength)
	v.SetDefault("field.laneSpacing", d.Field.LaneSpacing)
	v.SetDefault("field.spawnMargin", d.Field.SpawnMargin)

	v.SetDefault("status.deathTicks", d.Status.DeathTicks)
	v.SetDefault("status.freezeTicks", d.Status.FreezeTicks)
	v.SetDefault("status.freezeFactor", d.Status.FreezeFactor)
	v.SetDefault("status.stunTicks", d.Status.StunTicks)
	v.SetDefault("status.sprayTicks", d.Status.SprayTicks)
	v.SetDefault("status.sprayKillChance", d.Status.SprayKillChance)
	v.SetDefault("status.charmTicks", d.Status.CharmTicks)

	v.SetDefault("projectile.hitRadius", d.Projectile.HitRadius)
	v.SetDefault("projectile.splashRadiusX", d.Projectile.SplashRadiusX)
	v.SetDefault("projectile.splashRadiusY", d.Projectile.SplashRadiusY)
	v.SetDefault("projectile.arcTicks", d.Projectile.ArcTicks)
	v.SetDefault("projectile.arcHeight", d.Projectile.ArcHeight)
	v.SetDefault("projectile.homingTurnRate", d.Projectile.HomingTurnRate)
	v.SetDefault("projectile.retargetCooldown", d.Projectile.RetargetCooldown)

	v.SetDefault("faction.combatRange", d.Faction.CombatRange)
	v.SetDefault("faction.attackInterval", d.Faction.AttackInterval)
	v.SetDefault("faction.biteRange", d.Faction.BiteRange)

	v.SetDefault("explosion.gridRadius", d.Explosion.GridRadius)

	v.SetDefault("chain.falloff", d.Chain.Falloff)
	v.SetDefault("chain.jumpRadius", d.Chain.JumpRadius)
	v.SetDefault("chain.maxJumps", d.Chain.MaxJumps)

	v.SetDefault("terrain.speedMultiplier", d.Terrain.SpeedMultiplier)
	v.SetDefault("terrain.lifetime", d.Terrain.Lifetime)
	v.SetDefault("terrain.sampleInterval", d.Terrain.SampleInterval)

	v.SetDefault("portal.radius", d.Portal.Radius)
	v.SetDefault("portal.switchInterval", d.Portal.SwitchInterval)
	v.SetDefault("portal.switchDowntime", d.Portal.SwitchDowntime)

	v.SetDefault("drops.chance", d.Drops.Chance)
	v.SetDefault("drops.amount", d.Drops.Amount)

	v.SetDefault("spawnCaps", d.SpawnCaps)
}

// Load читает JSON-файл конфигурации (если path не пуст), накладывает его на
// значения по умолчанию и проверяет диапазоны.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет диапазоны. Ошибки всплывают при загрузке, а не в симуляции.
// Ключи обходятся по алфавиту, поэтому из нескольких ошибок всегда сообщается первая.
func (c *Config) Validate() error {
	probabilities := map[string]float64{
		"status.sprayKillChance": c.Status.SprayKillChance,
		"drops.chance":           c.Drops.Chance,
	}
	for _, key := range slices.Sorted(maps.Keys(probabilities)) {
		if p := probabilities[key]; p < 0 || p > 1 {
			return fmt.Errorf("%w: %s=%v, want [0,1]", ErrOutOfRange, key, p)
		}
	}

	positiveTicks := map[string]int{
		"status.deathTicks":      c.Status.DeathTicks,
		"status.freezeTicks":     c.Status.FreezeTicks,
		"status.stunTicks":       c.Status.StunTicks,
		"status.sprayTicks":      c.Status.SprayTicks,
		"status.charmTicks":      c.Status.CharmTicks,
		"projectile.arcTicks":    c.Projectile.ArcTicks,
		"faction.attackInterval": c.Faction.AttackInterval,
		"terrain.lifetime":       c.Terrain.Lifetime,
		"terrain.sampleInterval": c.Terrain.SampleInterval,
		"portal.switchInterval":  c.Portal.SwitchInterval,
	}
	for _, key := range slices.Sorted(maps.Keys(positiveTicks)) {
		if v := positiveTicks[key]; v <= 0 {
			return fmt.Errorf("%w: %s=%d, want > 0", ErrOutOfRange, key, v)
		}
	}

	switch {
	case c.Field.LaneCount < 1:
		return fmt.Errorf("%w: field.laneCount=%d, want >= 1", ErrOutOfRange, c.Field.LaneCount)
	case c.Field.LaneLength <= 0:
		return fmt.Errorf("%w: field.laneLength=%v, want > 0", ErrOutOfRange, c.Field.LaneLength)
	case c.Field.LaneSpacing <= 0:
		return fmt.Errorf("%w: field.laneSpacing=%v, want > 0", ErrOutOfRange, c.Field.LaneSpacing)
	case c.Chain.Falloff <= 0 || c.Chain.Falloff > 1:
		return fmt.Errorf("%w: chain.falloff=%v, want (0,1]", ErrOutOfRange, c.Chain.Falloff)
	case c.Chain.MaxJumps < 0:
		return fmt.Errorf("%w: chain.maxJumps=%d, want >= 0", ErrOutOfRange, c.Chain.MaxJumps)
	case c.Status.FreezeFactor <= 0 || c.Status.FreezeFactor > 1:
		return fmt.Errorf("%w: status.freezeFactor=%v, want (0,1]", ErrOutOfRange, c.Status.FreezeFactor)
	case c.Terrain.SpeedMultiplier <= 0:
		return fmt.Errorf("%w: terrain.speedMultiplier=%v, want > 0", ErrOutOfRange, c.Terrain.SpeedMultiplier)
	case c.Projectile.HitRadius <= 0:
		return fmt.Errorf("%w: projectile.hitRadius=%v, want > 0", ErrOutOfRange, c.Projectile.HitRadius)
	case c.Portal.SwitchDowntime < 0 || c.Projectile.RetargetCooldown < 0 || c.Explosion.GridRadius < 0:
		return fmt.Errorf("%w: negative cooldown or radius", ErrOutOfRange)
	}
	for _, kind := range slices.Sorted(maps.Keys(c.SpawnCaps)) {
		if limit := c.SpawnCaps[kind]; limit < 0 {
			return fmt.Errorf("%w: spawnCaps.%s=%d, want >= 0", ErrOutOfRange, kind, limit)
		}
	}
	return nil
}
