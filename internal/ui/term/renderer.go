// Package term draws the game in a terminal with tcell.
package term

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
)

// statusRows lines at the top are reserved for the HUD.
const statusRows = 2

// Canvas is the part of tcell.Screen the renderer needs.
type Canvas interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var enemyGlyphs = map[defs.EnemyType]rune{
	defs.EnemyBasic:  'o',
	defs.EnemyTough:  'O',
	defs.EnemyFast:   'v',
	defs.EnemyGunner: 'W',
}

var powerUpGlyphs = map[defs.PowerUpType]rune{
	defs.PowerUpHealth:   '+',
	defs.PowerUpFastShot: 'F',
	defs.PowerUpShield:   'S',
}

type Renderer struct {
	lib *defs.Library
}

func NewRenderer(lib *defs.Library) *Renderer {
	return &Renderer{lib: lib}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Cell maps a field point to a terminal cell below the status rows.
func Cell(x, y float64, w, h int) (int, int) {
	rows := max(1, h-statusRows)
	cx := int(x * float64(w) / config.ScreenWidth)
	cy := int(y*float64(rows)/config.ScreenHeight) + statusRows
	return min(max(cx, 0), w-1), min(max(cy, statusRows), h-1)
}

func (r *Renderer) put(c Canvas, x, y float64, ch rune, style tcell.Style) {
	w, h := c.Size()
	cx, cy := Cell(x, y, w, h)
	c.SetContent(cx, cy, ch, nil, style)
}

func writeLine(c Canvas, x, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	for _, ch := range s {
		if x >= w {
			return
		}
		c.SetContent(x, y, ch, nil, style)
		x++
	}
}

func clearCanvas(c Canvas) {
	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// Draw renders one frame of snap.
func (r *Renderer) Draw(c Canvas, snap app.Snapshot) {
	clearCanvas(c)
	r.drawStatus(c, snap)

	for _, pu := range snap.PowerUps {
		style := tcell.StyleDefault.Foreground(rgb(r.lib.PowerUp(pu.Type).Visuals.Color))
		r.put(c, pu.X, pu.Y, powerUpGlyphs[pu.Type], style)
	}
	for _, e := range snap.Enemies {
		style := tcell.StyleDefault.Foreground(rgb(config.RarityColors[string(e.Rarity)]))
		if e.Flash {
			style = style.Reverse(true)
		}
		glyph, ok := enemyGlyphs[e.Type]
		if !ok {
			glyph = '?'
		}
		r.put(c, e.X+e.Size/2, e.Y+e.Size/2, glyph, style)
	}
	for _, pr := range snap.Projectiles {
		r.put(c, pr.X, pr.Y, '|', tcell.StyleDefault.Foreground(rgb(r.lib.Attack(pr.Attack).Visuals.Color)))
	}
	for _, pr := range snap.EnemyProjectiles {
		r.put(c, pr.X, pr.Y, '*', tcell.StyleDefault.Foreground(rgb(config.EnemyShotColor)))
	}

	p := snap.Player
	style := tcell.StyleDefault.Foreground(rgb(r.lib.Character(p.Character).Visuals.Color)).Bold(true)
	if p.HasShield {
		style = style.Background(rgb(config.ShieldColor))
	}
	r.put(c, p.X+p.Size/2, p.Y+p.Size/2, 'A', style)

	switch snap.Phase {
	case component.PhaseIntermission:
		r.drawShop(c, snap)
	case component.PhasePaused:
		r.drawBanner(c, "PAUSED  (p to resume)")
	case component.PhaseGameOver:
		r.drawBanner(c, fmt.Sprintf("GAME OVER  score %d  (enter: new run, q: quit)", snap.Score))
	case component.PhaseCompleted:
		r.drawBanner(c, fmt.Sprintf("ALL LEVELS CLEARED  score %d  (enter: new run, q: quit)", snap.Score))
	}
}

// StatusLine is the first HUD row.
func StatusLine(snap app.Snapshot) string {
	lives := strings.Repeat("♥", snap.Lives) + strings.Repeat("·", max(0, snap.MaxLives-snap.Lives))
	line := fmt.Sprintf("Lvl %d/%d  T %3.0f  Score %d  Pts %d  %s",
		snap.Level, snap.Levels, snap.TimeRemaining, snap.Score, snap.Available, lives)
	if snap.ShieldCharges > 0 {
		line += fmt.Sprintf("  Shield x%d", snap.ShieldCharges)
	}
	for _, e := range snap.Effects {
		line += fmt.Sprintf("  [%s %.1fs]", e.Name, e.Remaining)
	}
	return line
}

func (r *Renderer) drawStatus(c Canvas, snap app.Snapshot) {
	writeLine(c, 0, 0, StatusLine(snap), tcell.StyleDefault.Bold(true))
	w, _ := c.Size()
	writeLine(c, 0, 1, strings.Repeat("─", w), tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawBanner(c Canvas, msg string) {
	w, h := c.Size()
	x := max(0, (w-len([]rune(msg)))/2)
	writeLine(c, x, h/2, msg, tcell.StyleDefault.Reverse(true))
}

func (r *Renderer) drawShop(c Canvas, snap app.Snapshot) {
	_, h := c.Size()
	y := max(statusRows, h/2-len(r.lib.UpgradeKeys)/2-2)
	writeLine(c, 2, y, fmt.Sprintf("Level %d complete. Points: %d", snap.Level, snap.Available), tcell.StyleDefault.Bold(true))
	for i, key := range r.lib.UpgradeKeys {
		def, _ := r.lib.Upgrade(key)
		style := tcell.StyleDefault
		if def.Cost > snap.Available {
			style = style.Dim(true)
		}
		writeLine(c, 2, y+1+i, fmt.Sprintf("%d) %-20s lvl %d  cost %d", i+1, def.Name, snap.Upgrades[key], def.Cost), style)
	}
	writeLine(c, 2, y+2+len(r.lib.UpgradeKeys), "r) reset upgrades   enter) next level", tcell.StyleDefault)
}

// DrawMessage writes msg on the bottom row.
func (r *Renderer) DrawMessage(c Canvas, msg string) {
	if msg == "" {
		return
	}
	_, h := c.Size()
	writeLine(c, 0, h-1, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}
