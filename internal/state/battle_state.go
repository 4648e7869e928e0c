// internal/state/battle_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/ui"
)

// buildKeys — клавиши выбора защитника для установки.
var buildKeys = []struct {
	key  ebiten.Key
	kind string
}{
	{ebiten.Key1, "peashooter"},
	{ebiten.Key2, "snowshooter"},
	{ebiten.Key3, "lobber"},
	{ebiten.Key4, "zapper"},
	{ebiten.Key5, "spiker"},
	{ebiten.Key6, "charmer"},
	{ebiten.Key7, "sprayer"},
	{ebiten.Key8, "bomb"},
	{ebiten.Key9, "wall"},
}

// BattleState — основное состояние: бой идёт, игрок ставит защитников.
type BattleState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *system.RenderSystem
	wave     *ui.WaveIndicator
	speed    *ui.SpeedButton
	selected string
	message  string
}

func NewBattleState(sm *StateMachine, game *app.Game) *BattleState {
	return &BattleState{
		sm:       sm,
		game:     game,
		renderer: system.NewRenderSystem(),
		wave:     ui.NewWaveIndicator(config.ScreenWidth/2, config.HUDY, config.TextLightColor),
		speed: ui.NewSpeedButton(config.ScreenWidth-60, 30, 12, []color.RGBA{
			config.TextLightColor, config.StunnedColor, config.ExplosionColor,
		}),
		selected: "peashooter",
	}
}

func (b *BattleState) Enter() {}

func (b *BattleState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		b.game.HandlePauseClick()
		b.sm.SetState(NewPauseState(b.sm, b))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		b.toggleSpeed()
	}
	for _, bk := range buildKeys {
		if inpututil.IsKeyJustPressed(bk.key) {
			b.selected = bk.kind
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.handleClick(ebiten.CursorPosition())
	}

	b.speed.Update()
	b.game.Update()
}

func (b *BattleState) toggleSpeed() {
	b.game.HandleSpeedClick()
	b.speed.ToggleState()
}

func (b *BattleState) handleClick(x, y int) {
	if b.speed.IsClicked(x, y) {
		b.toggleSpeed()
		return
	}
	cell := b.renderer.Layout.CellAt(x, y)
	if err := b.game.PlaceDefender(b.selected, cell); err != nil {
		b.message = err.Error()
		return
	}
	b.message = ""
}

func (b *BattleState) Draw(screen *ebiten.Image) {
	b.renderer.Draw(screen, b.game.World)
	b.wave.Draw(screen, b.game.Spawner.Number())
	b.speed.Draw(screen)

	hud := fmt.Sprintf("tick %d  x%d\nkills %d  breaches %d  currency %d\nbuild: %s",
		b.game.World.Tick, b.game.Speed(), b.game.Kills, b.game.Breaches, b.game.Currency, b.selected)
	ui.DrawText(screen, hud, config.HUDX, config.HUDY, config.TextLightColor)
	if b.message != "" {
		ui.DrawText(screen, b.message, config.HUDX, config.ScreenHeight-24, config.StunnedColor)
	}
}

func (b *BattleState) Exit() {}
