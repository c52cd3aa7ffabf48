package ui

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
)

func testLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.Default(slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return lib
}

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 8: "VIII", 9: "IX", 14: "XIV", 40: "XL"}
	for n, want := range cases {
		assert.Equal(t, want, toRoman(n), "n=%d", n)
	}
}

func TestLifeColor(t *testing.T) {
	assert.Equal(t, config.DangerColor, lifeColor(0, 2, 1))
	assert.Equal(t, config.DangerColor, lifeColor(1, 2, 1))
	assert.Equal(t, config.ShieldColor, lifeColor(2, 2, 1))
	assert.NotEqual(t, config.ShieldColor, lifeColor(3, 2, 1))
}

func TestButtonContains(t *testing.T) {
	b := NewButton(100, 50, 200, 40, "ok")
	assert.True(t, b.Contains(100, 50))
	assert.True(t, b.Contains(299, 89))
	assert.False(t, b.Contains(300, 60))
	assert.False(t, b.Contains(150, 49))

	b.Enabled = false
	assert.False(t, b.Contains(150, 60))
}

func TestPauseButtonContains(t *testing.T) {
	b := NewPauseButton(50, 50, 20, config.PlayingColor, config.PlayingColor)
	assert.True(t, b.Contains(60, 60))
	assert.False(t, b.Contains(70, 70))

	b.SetPaused(true)
	assert.True(t, b.IsPaused)
}

func TestUpgradePanelHitTest(t *testing.T) {
	lib := testLibrary(t)
	p := NewUpgradePanel(lib)

	first := lib.UpgradeKeys[0]
	btn := p.buy[first]
	action, key := p.HitTest(int(btn.X)+1, int(btn.Y)+1)
	assert.Equal(t, ActionBuy, action)
	assert.Equal(t, first, key)

	action, _ = p.HitTest(int(p.reset.X)+1, int(p.reset.Y)+1)
	assert.Equal(t, ActionReset, action)
	action, _ = p.HitTest(int(p.next.X)+1, int(p.next.Y)+1)
	assert.Equal(t, ActionContinue, action)
	action, _ = p.HitTest(0, 0)
	assert.Equal(t, ActionNone, action)

	// без очков кнопки покупки выключены
	p.Refresh(0)
	action, _ = p.HitTest(int(btn.X)+1, int(btn.Y)+1)
	assert.Equal(t, ActionNone, action)

	p.Refresh(1000)
	action, _ = p.HitTest(int(btn.X)+1, int(btn.Y)+1)
	assert.Equal(t, ActionBuy, action)
}

func TestCharacterMenuHitTest(t *testing.T) {
	lib := testLibrary(t)
	m := NewCharacterMenu(lib)
	require.Len(t, m.cards, len(lib.CharacterIDs))

	for i, card := range m.cards {
		id, ok := m.HitTest(int(card.X)+10, int(card.Y)+10)
		require.True(t, ok)
		assert.Equal(t, lib.CharacterIDs[i], id)
	}
	_, ok := m.HitTest(0, 0)
	assert.False(t, ok)
}

func TestFormatEffects(t *testing.T) {
	snap := app.Snapshot{Effects: []component.ActiveEffect{
		{Name: "fast_shot", Remaining: 2.3},
		{Name: "shield", Remaining: 9},
	}}
	assert.Equal(t, "fast_shot 2.3s  shield 9.0s", formatEffects(snap))
	assert.Empty(t, formatEffects(app.Snapshot{}))
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, float64(5*config.TextCharWidth*TextScale), TextWidth("score"))
	assert.Zero(t, TextWidth(""))
}
