// internal/app/game.go
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/logging"
	"go-lane-defense/internal/metrics"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/lanegrid"
)

// speedSteps — сколько тиков симуляции выполняется за один кадр.
var speedSteps = []int{1, 2, 4}

// Game владеет миром и гоняет резолвер: один вызов Update — один кадр.
type Game struct {
	Config     *config.Config
	World      *entity.World
	Resolver   *system.CombatResolver
	Dispatcher *event.Dispatcher
	Rng        *utils.PRNGService
	Spawner    *WaveSpawner
	Log        zerolog.Logger
	BattleID   string

	// Счётчики, которые ведёт слушатель событий
	Currency int
	Breaches int
	Kills    int

	speedIndex int
	paused     bool
}

// NewGame собирает игру. recorder может быть nil.
func NewGame(cfg *config.Config, lib *defs.Library, log zerolog.Logger, recorder *metrics.Recorder) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	if lib == nil {
		lib = defs.DefaultLibrary()
	}
	log, battleID := logging.WithBattle(log)

	dispatcher := event.NewDispatcher()
	world := entity.NewWorld(cfg, lib)
	rng := utils.NewPRNGService(cfg.Seed)
	g := &Game{
		Config:     cfg,
		World:      world,
		Resolver:   system.NewCombatResolver(dispatcher, log, recorder),
		Dispatcher: dispatcher,
		Rng:        rng,
		Spawner:    NewWaveSpawner(world, rng, log),
		Log:        log,
		BattleID:   battleID,
	}

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.CurrencyDropped, listener)
	dispatcher.Subscribe(event.LaneBreached, listener)
	dispatcher.Subscribe(event.UnitKilled, listener)
	dispatcher.Subscribe(event.PortalSwitched, listener)

	log.Info().Int("lanes", cfg.Field.LaneCount).Float64("length", cfg.Field.LaneLength).
		Int64("seed", cfg.Seed).Msg("battle created")
	return g
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.CurrencyDropped:
		if data, ok := e.Data.(event.CurrencyData); ok {
			l.game.Currency += data.Amount
		}
	case event.LaneBreached:
		l.game.Breaches++
		if data, ok := e.Data.(event.UnitData); ok {
			l.game.Log.Info().Int("lane", data.Lane).Str("kind", data.DefID).Int("breaches", l.game.Breaches).Msg("lane breached")
		}
	case event.UnitKilled:
		l.game.Kills++
	case event.PortalSwitched:
		if data, ok := e.Data.(event.PortalData); ok {
			l.game.Log.Debug().Int("link", data.Link).Int("layout", data.Layout).Msg("portal switched")
		}
	}
}

// Update выполняет столько тиков, сколько задаёт текущая скорость.
func (g *Game) Update() {
	if g.paused {
		return
	}
	for i := 0; i < speedSteps[g.speedIndex]; i++ {
		g.Step()
	}
}

// Step выполняет ровно один тик: волны, резолвер, затем удаление сущностей из отчёта.
func (g *Game) Step() system.RemovalReport {
	g.Spawner.Update()
	report := g.Resolver.SimulateTick(g.World, g.Rng)
	g.applyRemovals(report)
	return report
}

// applyRemovals удаляет из мира всё, что резолвер пометил к удалению.
func (g *Game) applyRemovals(r system.RemovalReport) {
	for _, h := range r.Units {
		g.World.RemoveUnit(h)
	}
	for _, h := range r.Projectiles {
		g.World.RemoveProjectile(h)
	}
	for _, h := range r.Defenders {
		g.World.RemoveDefender(h)
	}
}

// PlaceDefender ставит защитника игрока.
func (g *Game) PlaceDefender(kind string, cell lanegrid.Cell) error {
	if _, err := system.PlaceDefender(g.World, kind, cell); err != nil {
		g.Log.Debug().Err(err).Str("kind", kind).Msg("placement rejected")
		return err
	}
	g.Log.Info().Str("kind", kind).Int("lane", cell.Lane).Int("col", cell.Col).Msg("defender placed")
	return nil
}

// SetupDemo расставляет стартовых защитников и пару порталов.
// Возвращает первую ошибку расстановки, например если поле слишком короткое.
func (g *Game) SetupDemo() error {
	lanes := g.Config.Field.LaneCount
	kinds := []string{"peashooter", "snowshooter", "lobber", "zapper", "spiker", "thornshooter", "charmer"}
	for lane := 0; lane < lanes; lane++ {
		if err := g.PlaceDefender(kinds[lane%len(kinds)], lanegrid.Cell{Lane: lane, Col: 0}); err != nil {
			return fmt.Errorf("demo setup: %w", err)
		}
		if err := g.PlaceDefender("peashooter", lanegrid.Cell{Lane: lane, Col: 1}); err != nil {
			return fmt.Errorf("demo setup: %w", err)
		}
		if lane%2 == 0 {
			if err := g.PlaceDefender("wall", lanegrid.Cell{Lane: lane, Col: 3}); err != nil {
				return fmt.Errorf("demo setup: %w", err)
			}
		}
	}
	if lanes >= 3 {
		far := g.Config.Field.LaneLength - 2.5
		g.World.Portals = append(g.World.Portals, component.NewPortalLink(g.Config.Portal.SwitchInterval,
			component.PortalLayout{A: component.PortalNode{Lane: 0, Pos: far}, B: component.PortalNode{Lane: 2, Pos: 4.5}},
			component.PortalLayout{A: component.PortalNode{Lane: lanes - 1, Pos: far}, B: component.PortalNode{Lane: 1, Pos: 5.5}},
		))
	}
	return nil
}

func (g *Game) HandleSpeedClick() {
	g.speedIndex = (g.speedIndex + 1) % len(speedSteps)
}

// Speed возвращает число тиков за кадр.
func (g *Game) Speed() int {
	return speedSteps[g.speedIndex]
}

func (g *Game) HandlePauseClick() {
	g.paused = !g.paused
}

func (g *Game) IsPaused() bool {
	return g.paused
}

// Summary — короткая сводка для журнала.
func (g *Game) Summary() *zerolog.Event {
	return g.Log.Info().
		Uint64("tick", g.World.Tick).
		Int("wave", g.Spawner.Number()).
		Int("units", g.World.Units.Len()).
		Int("defenders", g.World.Defenders.Len()).
		Int("kills", g.Kills).
		Int("breaches", g.Breaches).
		Int("currency", g.Currency)
}
