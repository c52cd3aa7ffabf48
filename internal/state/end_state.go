// internal/state/end_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/ui"
)

// EndState shows the result of a finished run.
type EndState struct {
	sm      *StateMachine
	session *Session
	snap    app.Snapshot
}

func NewEndState(sm *StateMachine, session *Session, snap app.Snapshot) *EndState {
	return &EndState{sm: sm, session: session, snap: snap}
}

func (s *EndState) Enter() {
	s.session.Logger.Info("run finished",
		"run_id", s.snap.RunID,
		"phase", s.snap.Phase,
		"level", s.snap.Level,
		"score", s.snap.Score,
		"defeated", s.snap.Defeated)
}

func (s *EndState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.sm.SetState(NewMenuState(s.sm, s.session))
	}
}

func (s *EndState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title, clr := "GAME OVER", config.DangerColor
	if s.snap.Phase == component.PhaseCompleted {
		title, clr = "ALL LEVELS CLEARED", config.PlayingColor
	}
	cx := float64(config.ScreenWidth) / 2
	cy := float64(config.ScreenHeight) / 2
	ui.DrawTextCentered(screen, title, cx, cy-80, clr)
	ui.DrawTextCentered(screen, fmt.Sprintf("Score %d   Level %d/%d   Enemies %d", s.snap.Score, s.snap.Level, s.snap.Levels, s.snap.Defeated), cx, cy, config.TextLightColor)
	ui.DrawTextCentered(screen, "Enter: back to menu", cx, cy+80, config.TextLightColor)
}

func (s *EndState) Exit() {}
