// internal/state/upgrade_state.go
package state

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/system"
	"go-arcade-shooter/internal/ui"
)

var upgradeKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// UpgradeState is the shop shown between levels.
type UpgradeState struct {
	sm     *StateMachine
	play   *PlayState
	panel  *ui.UpgradePanel
	notice notice
}

func NewUpgradeState(sm *StateMachine, play *PlayState) *UpgradeState {
	return &UpgradeState{sm: sm, play: play, panel: ui.NewUpgradePanel(play.session.Lib)}
}

func (s *UpgradeState) Enter() {}

func (s *UpgradeState) Update(deltaTime float64) {
	g := s.play.game
	g.Update()
	s.panel.Refresh(g.AvailablePoints())

	action, key := ui.ActionNone, defs.UpgradeKey("")
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		action, key = s.panel.HitTest(ebiten.CursorPosition())
	}
	keys := s.play.session.Lib.UpgradeKeys
	for i, k := range upgradeKeys {
		if i < len(keys) && inpututil.IsKeyJustPressed(k) {
			action, key = ui.ActionBuy, keys[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		action = ui.ActionReset
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		action = ui.ActionContinue
	}

	switch action {
	case ui.ActionBuy:
		s.buy(key)
	case ui.ActionReset:
		if _, err := g.ResetUpgrades(); err != nil {
			s.notice.show(err.Error())
		}
	case ui.ActionContinue:
		if err := g.Continue(); err != nil {
			s.notice.show(err.Error())
			return
		}
		s.sm.SetState(s.play)
	}
}

func (s *UpgradeState) buy(key defs.UpgradeKey) {
	err := s.play.game.BuyUpgrade(key)
	switch {
	case err == nil:
		def, _ := s.play.session.Lib.Upgrade(key)
		s.notice.show(def.Name + " bought")
	case errors.Is(err, system.ErrInsufficientPoints):
		s.notice.show("Not enough points")
	default:
		s.notice.show(err.Error())
	}
}

func (s *UpgradeState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	mx, my := ebiten.CursorPosition()
	s.panel.Draw(screen, s.play.game.Snapshot(), mx, my)
	s.notice.draw(screen)
}

func (s *UpgradeState) Exit() {}
