// internal/state/state.go
package state

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/ui"
)

// State описывает экран игры
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine переключает экраны
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State { return sm.current }

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Session holds what every screen needs to start or resume a run.
type Session struct {
	Lib     *defs.Library
	Options app.Options
	Music   string
	Logger  *slog.Logger
}

// NewGame starts a fresh run with the given character.
func (s *Session) NewGame(character defs.CharacterID) *app.Game {
	opts := s.Options
	opts.Character = character
	opts.Logger = s.Logger
	g := app.NewGame(s.Lib, opts)
	if opts.Audio != nil {
		opts.Audio.PlayMusic(s.Music)
	}
	return g
}

// SlotStatus lists occupied save slots, empty without a store.
func (s *Session) SlotStatus() map[int]bool {
	if s.Options.Store == nil {
		return map[int]bool{}
	}
	return s.Options.Store.SlotStatus()
}

// notice это короткое сообщение поверх экрана.
type notice struct {
	text  string
	until time.Time
}

func (n *notice) show(text string) {
	n.text = text
	n.until = time.Now().Add(2 * time.Second)
}

func (n *notice) draw(screen *ebiten.Image) {
	if n.text == "" || time.Now().After(n.until) {
		return
	}
	ui.DrawTextCentered(screen, n.text, config.ScreenWidth/2, config.ScreenHeight-60, config.TextLightColor)
}

var overlayColor = color.RGBA{0, 0, 0, 128}
