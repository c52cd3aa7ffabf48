// internal/state/game_state.go
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

// PlayState ведёт забег: ввод, тик симуляции и отрисовка поля.
type PlayState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
	field   *ui.FieldRenderer
	hud     *ui.HUD
	pause   *ui.PauseButton
	notice  notice
}

func NewPlayState(sm *StateMachine, session *Session, g *app.Game) *PlayState {
	return &PlayState{
		sm:      sm,
		session: session,
		game:    g,
		field:   ui.NewFieldRenderer(session.Lib),
		hud:     ui.NewHUD(24, 24),
		pause:   ui.NewPauseButton(config.ScreenWidth-60, 60, 32, config.TextLightColor, config.PlayingColor),
	}
}

func (s *PlayState) Enter() {
	s.pause.SetPaused(false)
}

func (s *PlayState) Update(deltaTime float64) {
	s.game.SetMoveIntent(moveIntent())

	if pauseRequested(s.pause) {
		s.game.TogglePause()
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.game.HandlePointerDown(float64(x), float64(y))
	}
	s.handleSaveKeys()

	s.game.Update()

	switch phase := s.game.Phase(); {
	case phase == component.PhaseIntermission:
		s.sm.SetState(NewUpgradeState(s.sm, s))
	case phase.Terminal():
		s.sm.SetState(NewEndState(s.sm, s.session, s.game.Snapshot()))
	}
}

func moveIntent() int {
	dir := 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir++
	}
	return dir
}

// pauseRequested проверяет клавиши паузы и клик по кнопке.
func pauseRequested(btn *ui.PauseButton) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && btn.Contains(ebiten.CursorPosition())
}

func (s *PlayState) handleSaveKeys() {
	for i, key := range saveKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if s.game.Save(i + 1) {
			s.notice.show(fmt.Sprintf("Saved to slot %d", i+1))
		} else {
			s.notice.show("Save failed")
		}
	}
	for i, key := range loadKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if s.game.Load(i + 1) {
			s.notice.show(fmt.Sprintf("Loaded slot %d", i+1))
		} else {
			s.notice.show(fmt.Sprintf("Slot %d is empty or unreadable", i+1))
		}
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	snap := s.game.Snapshot()
	s.field.Draw(screen, snap)
	s.hud.Draw(screen, snap)
	s.pause.Draw(screen)
	s.notice.draw(screen)
}

func (s *PlayState) Exit() {}
