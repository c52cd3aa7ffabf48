// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/config"
)

const (
	LivesCols          = 6
	LifeCircleRadius   = 12.0
	LifeCircleSpacing  = 6.0
	hudLineHeight      = 32.0
	levelIndicatorSize = 48.0
)

// HUD рисует жизни, щит, счёт, уровень и активные эффекты.
type HUD struct {
	X, Y float32
}

func NewHUD(x, y float32) *HUD {
	return &HUD{X: x, Y: y}
}

// lifeColor выбирает цвет j-й ячейки жизней.
func lifeColor(j, lives, shieldCharges int) color.Color {
	switch {
	case j < lives:
		return config.DangerColor
	case j < lives+shieldCharges:
		return config.ShieldColor
	}
	return color.Black
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// formatEffects склеивает эффекты в строку вида "shield 4.2s".
func formatEffects(snap app.Snapshot) string {
	parts := make([]string, 0, len(snap.Effects))
	for _, e := range snap.Effects {
		parts = append(parts, fmt.Sprintf("%s %.1fs", e.Name, e.Remaining))
	}
	return strings.Join(parts, "  ")
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	h.drawLives(screen, snap)

	x := float64(h.X)
	y := float64(h.Y) + 2*(LifeCircleRadius*2+LifeCircleSpacing) + hudLineHeight
	DrawText(screen, fmt.Sprintf("Score: %d", snap.Score), x, y, config.TextLightColor)
	y += hudLineHeight
	DrawText(screen, fmt.Sprintf("Time: %.0f", snap.TimeRemaining), x, y, config.TextLightColor)
	if fx := formatEffects(snap); fx != "" {
		y += hudLineHeight
		DrawText(screen, fx, x, y, config.ShieldColor)
	}

	h.drawLevel(screen, snap.Level, snap.Levels)
}

func (h *HUD) drawLives(screen *ebiten.Image, snap app.Snapshot) {
	cells := max(snap.MaxLives, snap.Lives+snap.ShieldCharges)
	step := float32(LifeCircleRadius*2 + LifeCircleSpacing)
	for j := 0; j < cells; j++ {
		row, col := j/LivesCols, j%LivesCols
		cx := h.X + float32(col)*step + LifeCircleRadius
		cy := h.Y + float32(row)*step + LifeCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LifeCircleRadius, lifeColor(j, snap.Lives, snap.ShieldCharges), true)
		vector.StrokeCircle(screen, cx, cy, LifeCircleRadius, 1, color.White, true)
	}
	label := strconv.Itoa(snap.Lives) + "/" + strconv.Itoa(snap.MaxLives)
	DrawText(screen, label, float64(h.X)+float64(LivesCols)*float64(step)+8, float64(h.Y)+LifeCircleRadius+config.TextOffsetY*TextScale, config.TextLightColor)
}

// drawLevel пишет номер уровня римскими цифрами в правом верхнем углу.
func (h *HUD) drawLevel(screen *ebiten.Image, level, levels int) {
	label := toRoman(level)
	if label == "" {
		return
	}
	clr := color.Color(config.PlayingColor)
	if level == levels {
		clr = config.DangerColor // последний уровень
	}
	cx := float64(config.ScreenWidth) / 2
	DrawTextCentered(screen, label, cx, levelIndicatorSize, clr)
}
