// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arcade-shooter/internal/config"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float32
	Text       string
	Enabled    bool
	Color      color.Color
	HoverColor color.Color
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float32, label string) *Button {
	return &Button{
		X:          x,
		Y:          y,
		W:          w,
		H:          h,
		Text:       label,
		Enabled:    true,
		Color:      config.ButtonColor,
		HoverColor: config.PlayingColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку. Выключенная кнопка не нажимается.
func (b *Button) Contains(x, y int) bool {
	if !b.Enabled {
		return false
	}
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx < b.X+b.W && fy >= b.Y && fy < b.Y+b.H
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, hovered bool) {
	bg := b.Color
	switch {
	case !b.Enabled:
		bg = config.DisabledColor
	case hovered:
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, config.StrokeWidth, color.White, true)

	cx := float64(b.X + b.W/2)
	baseline := float64(b.Y+b.H/2) + config.TextOffsetY*TextScale
	DrawTextCentered(screen, b.Text, cx, baseline, config.TextLightColor)
}
