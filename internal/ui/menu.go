// internal/ui/menu.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
)

const (
	cardW   = 480
	cardH   = 320
	cardGap = 60
)

// CharacterMenu показывает карточки персонажей для выбора.
type CharacterMenu struct {
	lib   *defs.Library
	cards []*Button
	ids   []defs.CharacterID
}

func NewCharacterMenu(lib *defs.Library) *CharacterMenu {
	m := &CharacterMenu{lib: lib, ids: lib.CharacterIDs}
	n := float32(len(m.ids))
	total := n*cardW + (n-1)*cardGap
	x := (config.ScreenWidth - total) / 2
	y := float32(config.ScreenHeight-cardH) / 2
	for i, id := range m.ids {
		m.cards = append(m.cards, NewButton(x+float32(i)*(cardW+cardGap), y, cardW, cardH, string(id)))
	}
	return m
}

// HitTest returns the character whose card contains (x, y).
func (m *CharacterMenu) HitTest(x, y int) (defs.CharacterID, bool) {
	for i, card := range m.cards {
		if card.Contains(x, y) {
			return m.ids[i], true
		}
	}
	return "", false
}

// Draw renders the cards; slots lists occupied save slots for the footer.
func (m *CharacterMenu) Draw(screen *ebiten.Image, selected defs.CharacterID, slots map[int]bool, mx, my int) {
	screen.Fill(config.BackgroundColor)
	DrawTextCentered(screen, "Choose your pilot", config.ScreenWidth/2, 180, config.TextLightColor)

	for i, card := range m.cards {
		def := m.lib.Character(m.ids[i])
		border := config.DisabledColor
		if def.ID == selected || card.Contains(mx, my) {
			border = def.Visuals.Color
		}
		vector.DrawFilledRect(screen, card.X, card.Y, card.W, card.H, config.PanelColor, true)
		vector.StrokeRect(screen, card.X, card.Y, card.W, card.H, 4, border, true)

		x := float64(card.X) + 24
		y := float64(card.Y) + 48
		DrawText(screen, fmt.Sprintf("%d. %s", i+1, def.Name), x, y, def.Visuals.Color)
		y += 40
		DrawText(screen, def.Description, x, y, config.TextLightColor)
		y += 56
		DrawText(screen, fmt.Sprintf("speed %.0f", def.Speed), x, y, config.TextLightColor)
		y += 32
		DrawText(screen, fmt.Sprintf("lives %d (max %d)", def.Lives, def.LivesCap), x, y, config.TextLightColor)
		y += 32
		DrawText(screen, fmt.Sprintf("shot delay %.2fs", def.ShotDelay), x, y, config.TextLightColor)
	}

	footer := "Enter: start   F5-F7: load slot"
	for slot := 1; slot <= config.SaveSlots; slot++ {
		mark := "-"
		if slots[slot] {
			mark = "saved"
		}
		footer += fmt.Sprintf("   [%d %s]", slot, mark)
	}
	DrawTextCentered(screen, footer, config.ScreenWidth/2, config.ScreenHeight-120, config.TextLightColor)
}
