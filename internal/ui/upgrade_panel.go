// internal/ui/upgrade_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-arcade-shooter/internal/app"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
)

// PanelAction is what a click on the upgrade panel asks for.
type PanelAction int

const (
	ActionNone PanelAction = iota
	ActionBuy
	ActionReset
	ActionContinue
)

const (
	panelWidth   = 900
	panelRowH    = 64
	panelPadding = 24
	buyButtonW   = 160
	buyButtonH   = 44
)

// UpgradePanel показывает магазин улучшений между уровнями.
type UpgradePanel struct {
	lib   *defs.Library
	X, Y  float32
	W, H  float32
	keys  []defs.UpgradeKey
	buy   map[defs.UpgradeKey]*Button
	reset *Button
	next  *Button
}

func NewUpgradePanel(lib *defs.Library) *UpgradePanel {
	keys := lib.UpgradeKeys
	h := float32(panelPadding*3 + len(keys)*panelRowH + buyButtonH*2)
	p := &UpgradePanel{
		lib:  lib,
		W:    panelWidth,
		H:    h,
		X:    (config.ScreenWidth - panelWidth) / 2,
		Y:    (config.ScreenHeight - h) / 2,
		keys: keys,
		buy:  make(map[defs.UpgradeKey]*Button, len(keys)),
	}
	for i, key := range keys {
		y := p.rowY(i) + (panelRowH-buyButtonH)/2
		p.buy[key] = NewButton(p.X+p.W-panelPadding-buyButtonW, y, buyButtonW, buyButtonH, "Buy")
	}
	bottom := p.Y + p.H - panelPadding - buyButtonH
	p.reset = NewButton(p.X+panelPadding, bottom, 220, buyButtonH, "Reset")
	p.next = NewButton(p.X+p.W-panelPadding-220, bottom, 220, buyButtonH, "Continue")
	return p
}

func (p *UpgradePanel) rowY(i int) float32 {
	return p.Y + panelPadding*2 + buyButtonH + float32(i*panelRowH)
}

// Refresh enables only the upgrades the player can afford.
func (p *UpgradePanel) Refresh(available int) {
	for _, key := range p.keys {
		def, _ := p.lib.Upgrade(key)
		p.buy[key].Enabled = def.Cost <= available
	}
}

// HitTest maps a click to an action. The key is set for ActionBuy only.
func (p *UpgradePanel) HitTest(x, y int) (PanelAction, defs.UpgradeKey) {
	for _, key := range p.keys {
		if p.buy[key].Contains(x, y) {
			return ActionBuy, key
		}
	}
	if p.reset.Contains(x, y) {
		return ActionReset, ""
	}
	if p.next.Contains(x, y) {
		return ActionContinue, ""
	}
	return ActionNone, ""
}

func (p *UpgradePanel) Draw(screen *ebiten.Image, snap app.Snapshot, mx, my int) {
	vector.DrawFilledRect(screen, p.X, p.Y, p.W, p.H, config.PanelColor, true)
	vector.StrokeRect(screen, p.X, p.Y, p.W, p.H, config.StrokeWidth, config.PlayingColor, true)

	title := fmt.Sprintf("Level %d complete  -  points: %d", snap.Level, snap.Available)
	DrawText(screen, title, float64(p.X+panelPadding), float64(p.Y+panelPadding+buyButtonH/2), config.TextLightColor)

	for i, key := range p.keys {
		def, _ := p.lib.Upgrade(key)
		y := float64(p.rowY(i) + panelRowH/2)
		line := fmt.Sprintf("%d. %-18s lvl %d  cost %d", i+1, def.Name, snap.Upgrades[key], def.Cost)
		DrawText(screen, line, float64(p.X+panelPadding), y, config.TextLightColor)
		btn := p.buy[key]
		btn.Draw(screen, btn.Contains(mx, my))
	}
	p.reset.Draw(screen, p.reset.Contains(mx, my))
	p.next.Draw(screen, p.next.Contains(mx, my))
}
