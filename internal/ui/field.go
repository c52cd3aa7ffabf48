// internal/ui/field.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
)

// FieldRenderer рисует игровое поле по снимку состояния.
type FieldRenderer struct {
	lib *defs.Library
}

func NewFieldRenderer(lib *defs.Library) *FieldRenderer {
	return &FieldRenderer{lib: lib}
}

func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)

	for _, pu := range snap.PowerUps {
		clr := r.lib.PowerUp(pu.Type).Visuals.Color
		vector.DrawFilledCircle(screen, float32(pu.X), float32(pu.Y), float32(pu.Size/2), clr, true)
		vector.StrokeCircle(screen, float32(pu.X), float32(pu.Y), float32(pu.Size/2), 1, color.White, true)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, pr := range snap.Projectiles {
		clr := r.lib.Attack(pr.Attack).Visuals.Color
		vector.DrawFilledCircle(screen, float32(pr.X), float32(pr.Y), float32(pr.Size/2), clr, true)
	}
	for _, pr := range snap.EnemyProjectiles {
		vector.DrawFilledCircle(screen, float32(pr.X), float32(pr.Y), float32(pr.Size/2), config.EnemyShotColor, true)
	}
	r.drawPlayer(screen, snap.Player)
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y, size := float32(e.X), float32(e.Y), float32(e.Size)
	var fill color.Color = r.lib.Enemy(e.Type).Visuals.Color
	if e.Flash {
		fill = color.White
	}
	vector.DrawFilledRect(screen, x, y, size, size, fill, true)
	vector.StrokeRect(screen, x, y, size, size, 3, config.RarityColors[string(e.Rarity)], true)

	if e.MaxHealth > 1 {
		ratio := float32(e.Health) / float32(e.MaxHealth)
		vector.DrawFilledRect(screen, x, y-10, size, 6, config.DisabledColor, false)
		vector.DrawFilledRect(screen, x, y-10, size*ratio, 6, config.DangerColor, false)
	}
}

func (r *FieldRenderer) drawPlayer(screen *ebiten.Image, p app.PlayerView) {
	x, y, size := float32(p.X), float32(p.Y), float32(p.Size)
	clr := r.lib.Character(p.Character).Visuals.Color
	vector.DrawFilledRect(screen, x, y, size, size, clr, true)
	vector.StrokeRect(screen, x, y, size, size, config.StrokeWidth, color.White, true)
	if p.HasShield {
		vector.StrokeCircle(screen, x+size/2, y+size/2, size*0.75, 4, config.ShieldColor, true)
	}
}
