// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	sm   *StateMachine
	play *PlayState
}

func NewPauseState(sm *StateMachine, play *PlayState) *PauseState {
	return &PauseState{sm: sm, play: play}
}

func (s *PauseState) Enter() {
	s.play.pause.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	// тик нужен, чтобы игра видела ход часов; время симуляции стоит
	s.play.game.Update()

	if pauseRequested(s.play.pause) {
		s.play.game.TogglePause()
		s.sm.SetState(s.play)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)
	ui.DrawTextCentered(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
	s.play.pause.Draw(screen)
}

func (s *PauseState) Exit() {}
