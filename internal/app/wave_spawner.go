// internal/app/wave_spawner.go
package app

import (
	"errors"

	"github.com/rs/zerolog"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/types"
	"go-lane-defense/internal/utils"
)

// Wave — состояние текущей волны.
type Wave struct {
	Number     int
	Definition defs.WaveDefinition
	ToSpawn    int
	Timer      int
	Delay      int
}

// WaveSpawner выпускает юнитов по таблице defs.WavePatterns.
type WaveSpawner struct {
	w       *entity.World
	rng     *utils.PRNGService
	log     zerolog.Logger
	current *Wave
}

func NewWaveSpawner(w *entity.World, rng *utils.PRNGService, log zerolog.Logger) *WaveSpawner {
	return &WaveSpawner{w: w, rng: rng, log: log}
}

// waveDefinition возвращает описание волны. После последней волны повторяются 4-6.
func waveDefinition(n int) defs.WaveDefinition {
	if def, ok := defs.WavePatterns[n]; ok {
		return def
	}
	if n > 6 {
		return defs.WavePatterns[((n-4)%3)+4]
	}
	return defs.WavePatterns[1]
}

// StartWave запускает волну n.
func (s *WaveSpawner) StartWave(n int) *Wave {
	def := waveDefinition(n)
	s.current = &Wave{
		Number:     n,
		Definition: def,
		ToSpawn:    def.Count,
		Delay:      def.Delay,
	}
	s.log.Info().Int("wave", n).Int("units", def.Count).Msg("wave started")
	return s.current
}

// Current возвращает текущую волну или nil.
func (s *WaveSpawner) Current() *Wave {
	return s.current
}

// Number возвращает номер текущей волны (0 до первой).
func (s *WaveSpawner) Number() int {
	if s.current == nil {
		return 0
	}
	return s.current.Number
}

// Update вызывается раз в тик до резолвера.
func (s *WaveSpawner) Update() {
	if s.current == nil {
		s.StartWave(1)
	}
	wave := s.current
	if wave.Delay > 0 {
		wave.Delay--
		return
	}
	if wave.ToSpawn > 0 {
		wave.Timer++
		if wave.Timer >= wave.Definition.SpawnInterval {
			s.spawn(wave)
			wave.ToSpawn--
			wave.Timer = 0
		}
		return
	}
	if !s.hostilesLeft() {
		s.StartWave(wave.Number + 1)
	}
}

func (s *WaveSpawner) spawn(wave *Wave) {
	kind := s.rng.ChooseWeighted(wave.Definition.Units)
	lane := s.rng.Intn(s.w.Config.Field.LaneCount)
	mods := system.UnitModifiers{}
	if wave.Number > len(defs.WavePatterns) {
		mods.HealthScale = 1 + 0.2*float64(wave.Number-len(defs.WavePatterns))
	}

	h, err := system.SpawnUnit(s.w, lane, kind, mods)
	if errors.Is(err, system.ErrSpawnBudgetExhausted) {
		// Особые юниты упёрлись в лимит: заменяем обычным
		h, err = system.SpawnUnit(s.w, lane, "walker", mods)
	}
	if err != nil {
		s.log.Warn().Err(err).Str("kind", kind).Int("wave", wave.Number).Msg("spawn failed")
		return
	}
	s.log.Debug().Str("unit", h.String()).Str("kind", kind).Int("lane", lane).Msg("unit spawned")
}

// hostilesLeft — остались ли на поле живые вражеские юниты.
func (s *WaveSpawner) hostilesLeft() bool {
	left := false
	s.w.Units.Each(func(_ types.Handle, u *component.Unit) {
		if !u.Removed && u.Faction == component.FactionHostile {
			left = true
		}
	})
	return left
}
