// internal/ui/text.go
package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-arcade-shooter/internal/config"
)

// TextScale увеличивает растровый шрифт 7x13 под экран 1920x1080.
const TextScale = 2

// DrawText рисует строку; y задаёт базовую линию.
func DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(TextScale, TextScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, s, basicfont.Face7x13, op)
}

// DrawTextCentered centres s horizontally on cx.
func DrawTextCentered(screen *ebiten.Image, s string, cx, y float64, clr color.Color) {
	DrawText(screen, s, cx-TextWidth(s)/2, y, clr)
}

// TextWidth is the on-screen width of s. The face is monospaced.
func TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s) * config.TextCharWidth * TextScale)
}
