package term

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/utils"
)

var discard = slog.New(slog.DiscardHandler)

type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]rune, h)}
	for y := range g.cells {
		g.cells[y] = make([]rune, w)
	}
	return g
}

func (g *grid) Size() (int, int) { return g.w, g.h }

func (g *grid) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	if x >= 0 && x < g.w && y >= 0 && y < g.h {
		g.cells[y][x] = primary
	}
}

func (g *grid) row(y int) string { return string(g.cells[y]) }

// count ignores the status rows.
func (g *grid) count(ch rune) int {
	n := 0
	for _, row := range g.cells[statusRows:] {
		for _, c := range row {
			if c == ch {
				n++
			}
		}
	}
	return n
}

func testLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.Default(discard)
	require.NoError(t, err)
	return lib
}

func newGame(t *testing.T) (*app.Game, *utils.ManualClock) {
	t.Helper()
	clock := utils.NewManualClock(0)
	g := app.NewGame(testLibrary(t), app.Options{Character: defs.CharacterKava, Clock: clock, RNG: utils.NewPRNGService(1)})
	return g, clock
}

func TestCellMapping(t *testing.T) {
	x, y := Cell(0, 0, 80, 24)
	assert.Equal(t, 0, x)
	assert.Equal(t, statusRows, y)

	x, y = Cell(1920, 1080, 80, 24)
	assert.Equal(t, 79, x)
	assert.Equal(t, 23, y)

	x, y = Cell(960, 540, 80, 24)
	assert.Equal(t, 40, x)
	assert.Equal(t, 11+statusRows, y)
}

func TestRendererDrawsEntities(t *testing.T) {
	lib := testLibrary(t)
	snap := app.Snapshot{
		Phase:    component.PhasePlaying,
		Level:    2,
		Levels:   8,
		Score:    40,
		Lives:    2,
		MaxLives: 4,
		Player:   app.PlayerView{Character: defs.CharacterKava, X: 896, Y: 824, Size: 128},
		Enemies: []app.EnemyView{
			{Type: defs.EnemyGunner, Rarity: defs.RarityElite, X: 100, Y: 100, Size: 96, Health: 2, MaxHealth: 6},
		},
		Projectiles:      []app.ProjectileView{{X: 960, Y: 500, Size: 32, Attack: defs.AttackNormal}},
		EnemyProjectiles: []app.ProjectileView{{X: 300, Y: 600, Size: 10}},
		PowerUps:         []app.PowerUpView{{Type: defs.PowerUpShield, X: 1500, Y: 300, Size: 30}},
	}

	c := newGrid(80, 24)
	NewRenderer(lib).Draw(c, snap)

	assert.Equal(t, 1, c.count('A'))
	assert.Equal(t, 1, c.count('W'))
	assert.Equal(t, 1, c.count('|'))
	assert.Equal(t, 1, c.count('*'))
	assert.Equal(t, 1, c.count('S'))
	assert.True(t, strings.HasPrefix(c.row(0), "Lvl 2/8"))
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(app.Snapshot{
		Level: 1, Levels: 8, TimeRemaining: 12.4, Score: 30, Available: 10,
		Lives: 2, MaxLives: 3, ShieldCharges: 1,
		Effects: []component.ActiveEffect{{Name: "shield", Remaining: 4}},
	})
	assert.Equal(t, "Lvl 1/8  T  12  Score 30  Pts 10  ♥♥·  Shield x1  [shield 4.0s]", line)
}

func TestRendererShowsShopInIntermission(t *testing.T) {
	lib := testLibrary(t)
	c := newGrid(100, 30)
	NewRenderer(lib).Draw(c, app.Snapshot{Phase: component.PhaseIntermission, Level: 1, Levels: 8, Available: 60})

	var found bool
	for y := 0; y < c.h; y++ {
		if strings.Contains(c.row(y), "Level 1 complete. Points: 60") {
			found = true
		}
	}
	assert.True(t, found)
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestControllerMovementDecays(t *testing.T) {
	g, _ := newGame(t)
	c := NewController(g, discard)

	assert.Equal(t, CommandNone, c.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	c.Tick()
	assert.Equal(t, 1, g.Player.MoveIntent)

	for i := 0; i < moveHoldTicks; i++ {
		c.Tick()
	}
	assert.Equal(t, 0, g.Player.MoveIntent)

	c.HandleKey(key('a'))
	c.Tick()
	assert.Equal(t, -1, g.Player.MoveIntent)
}

func TestControllerShootsAndPauses(t *testing.T) {
	g, clock := newGame(t)
	c := NewController(g, discard)

	c.HandleKey(key(' '))
	clock.Advance(0.05)
	g.Update()
	require.Len(t, g.Player.Projectiles, 1)
	assert.Less(t, g.Player.Projectiles[0].DirY, 0.0)

	c.HandleKey(key('p'))
	assert.Equal(t, component.PhasePaused, g.Phase())
	c.HandleKey(key('p'))
	assert.Equal(t, component.PhasePlaying, g.Phase())
}

func TestControllerShopKeys(t *testing.T) {
	g, clock := newGame(t)
	c := NewController(g, discard)

	c.HandleKey(key('1'))
	assert.Empty(t, g.Player.Upgrades)

	g.ProgressionSystem.LevelStart = g.Now() - 29.99
	clock.Advance(0.05)
	g.Update()
	require.Equal(t, component.PhaseIntermission, g.Phase())

	c.HandleKey(key('1'))
	assert.Equal(t, "Not enough points", c.Message)

	g.Score = 100
	c.HandleKey(key('1'))
	assert.Equal(t, 1, g.Player.Upgrades[g.Lib.UpgradeKeys[0]])

	c.HandleKey(key('r'))
	assert.Empty(t, g.Player.Upgrades)
	assert.Contains(t, c.Message, "Refunded")

	assert.Equal(t, CommandNone, c.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, component.PhasePlaying, g.Phase())
	assert.Equal(t, 2, g.ProgressionSystem.Level)
}

func TestControllerQuitAndRestart(t *testing.T) {
	g, _ := newGame(t)
	c := NewController(g, discard)

	assert.Equal(t, CommandQuit, c.HandleKey(key('q')))
	assert.Equal(t, CommandQuit, c.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))

	g.ProgressionSystem.Phase = component.PhaseGameOver
	assert.Equal(t, CommandRestart, c.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}

func TestControllerSaveWithoutStore(t *testing.T) {
	g, _ := newGame(t)
	c := NewController(g, discard)
	c.HandleKey(tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone))
	assert.Equal(t, "Could not save to slot 1", c.Message)
}
