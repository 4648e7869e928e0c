package system

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/types"
	"go-lane-defense/pkg/lanegrid"
)

// fixedRand отдаёт заранее заданные числа, затем 0.999 (броски неудачны).
type fixedRand struct {
	vals  []float64
	i     int
	draws int
}

func (r *fixedRand) Float64() float64 {
	r.draws++
	if r.i < len(r.vals) {
		v := r.vals[r.i]
		r.i++
		return v
	}
	return 0.999
}

func (r *fixedRand) Intn(int) int { return 0 }

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Drops.Chance = 0
	return cfg
}

func newTestWorld(t *testing.T) *entity.World {
	t.Helper()
	return entity.NewWorld(testConfig(), defs.DefaultLibrary())
}

func newTestResolver() *CombatResolver {
	return NewCombatResolver(event.NewDispatcher(), zerolog.Nop(), nil)
}

// beginTick готовит контекст для прямых вызовов стадий.
func beginTick(r *CombatResolver, w *entity.World, rng *fixedRand) *tickContext {
	c := r.ctx
	c.begin(w, rng)
	c.rebuildIndex()
	return c
}

func addUnit(t *testing.T, w *entity.World, kind string, lane int, pos float64) (types.Handle, *component.Unit) {
	t.Helper()
	def, ok := w.Library.Unit(kind)
	require.True(t, ok, kind)
	u := component.NewUnit(def, lane, pos)
	return w.AddUnit(u), u
}

// addStill добавляет неподвижного юнита-мишень.
func addStill(t *testing.T, w *entity.World, lane int, pos float64, health int) (types.Handle, *component.Unit) {
	t.Helper()
	h, u := addUnit(t, w, "walker", lane, pos)
	u.BaseSpeed = 0
	u.Speed = 0
	u.Health = health
	u.MaxHealth = health
	return h, u
}

func cell(lane, col int) lanegrid.Cell {
	return lanegrid.Cell{Lane: lane, Col: col}
}

func countEvents(reports []RemovalReport, t event.EventType) int {
	n := 0
	for i := range reports {
		n += len(reports[i].EventsOf(t))
	}
	return n
}

func run(r *CombatResolver, w *entity.World, rng *fixedRand, ticks int) []RemovalReport {
	out := make([]RemovalReport, 0, ticks)
	for i := 0; i < ticks; i++ {
		out = append(out, r.SimulateTick(w, rng))
	}
	return out
}
