// cmd/game/main.go
package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/logging"
	"go-lane-defense/internal/metrics"
	"go-lane-defense/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to the combat config (JSON)")
	defsPath := flag.String("defs", "", "path to the definitions library (JSON)")
	headless := flag.Int("headless", 0, "run N ticks without a window and print a summary")
	demo := flag.Bool("demo", true, "place starting defenders and portals")
	flag.Parse()

	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog.Fatal().Err(err).Str("path", *configPath).Msg("cannot load config")
	}
	log, err := logging.Console(cfg.LogLevel)
	if err != nil {
		bootLog.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("bad log level")
	}
	log.Info().Str("path", *configPath).Msg("config loaded")

	lib := defs.DefaultLibrary()
	if *defsPath != "" {
		if lib, err = defs.LoadLibrary(*defsPath); err != nil {
			log.Fatal().Err(err).Str("path", *defsPath).Msg("cannot load definitions")
		}
	}

	recorder, err := metrics.NewRecorder()
	if err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
	}

	game := app.NewGame(cfg, lib, log, recorder)
	if *demo {
		if err := game.SetupDemo(); err != nil {
			log.Fatal().Err(err).Msg("cannot set up demo battle")
		}
	}

	if *headless > 0 {
		for i := 0; i < *headless; i++ {
			game.Step()
		}
		game.Summary().Msg("headless run finished")
		return
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewBattleState(sm, game))
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lane Defense")
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
