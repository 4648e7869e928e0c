// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает бой и рисует поверх него затемнение.
type PauseState struct {
	stateMachine *StateMachine
	battle       *BattleState
}

func NewPauseState(sm *StateMachine, battle *BattleState) *PauseState {
	return &PauseState{stateMachine: sm, battle: battle}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		// При выходе из паузы нужно «отжать» паузу в самой игре
		s.battle.game.HandlePauseClick()
		s.stateMachine.SetState(s.battle)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	const label = "PAUSED"
	w, _ := text.Measure(label, ui.DefaultFace, 0)
	ui.DrawText(screen, label, (config.ScreenWidth-w)/2, config.ScreenHeight/2-10, config.TextLightColor)
}

func (s *PauseState) Exit() {}
