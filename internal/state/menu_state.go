// internal/state/menu_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/ui"
)

var (
	characterKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	loadKeys      = []ebiten.Key{ebiten.KeyF5, ebiten.KeyF6, ebiten.KeyF7}
	saveKeys      = []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3}
)

// MenuState отвечает за выбор персонажа и загрузку сохранений.
type MenuState struct {
	sm       *StateMachine
	session  *Session
	menu     *ui.CharacterMenu
	selected defs.CharacterID
	slots    map[int]bool
	notice   notice
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	return &MenuState{
		sm:       sm,
		session:  session,
		menu:     ui.NewCharacterMenu(session.Lib),
		selected: session.Options.Character,
	}
}

func (m *MenuState) Enter() {
	m.slots = m.session.SlotStatus()
}

func (m *MenuState) Update(deltaTime float64) {
	ids := m.session.Lib.CharacterIDs
	for i, key := range characterKeys {
		if i < len(ids) && inpututil.IsKeyJustPressed(key) {
			m.selected = ids[i]
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.start(m.selected)
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if id, ok := m.menu.HitTest(ebiten.CursorPosition()); ok {
			m.start(id)
			return
		}
	}
	for i, key := range loadKeys {
		if inpututil.IsKeyJustPressed(key) {
			m.load(i + 1)
			return
		}
	}
}

func (m *MenuState) start(id defs.CharacterID) {
	g := m.session.NewGame(id)
	m.sm.SetState(NewPlayState(m.sm, m.session, g))
}

func (m *MenuState) load(slot int) {
	g := m.session.NewGame(m.selected)
	if !g.Load(slot) {
		m.notice.show(fmt.Sprintf("Slot %d is empty or unreadable", slot))
		return
	}
	m.sm.SetState(NewPlayState(m.sm, m.session, g))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	m.menu.Draw(screen, m.selected, m.slots, mx, my)
	m.notice.draw(screen)
}

func (m *MenuState) Exit() {}
