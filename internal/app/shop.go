// internal/app/shop.go
package app

import (
	"fmt"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/system"
)

func (g *Game) requireIntermission() error {
	if g.Phase() != component.PhaseIntermission {
		return fmt.Errorf("%w: phase is %s", system.ErrNotInIntermission, g.Phase())
	}
	return nil
}

// AvailablePoints returns the score not yet spent on upgrades.
func (g *Game) AvailablePoints() int { return g.Shop.Available(g.Score) }

// BuyUpgrade purchases one level of key. Only allowed between levels.
func (g *Game) BuyUpgrade(key defs.UpgradeKey) error {
	if err := g.requireIntermission(); err != nil {
		return err
	}
	return g.Shop.Buy(&g.Player, key, g.Score)
}

// ResetUpgrades refunds every purchase and returns the refunded amount.
func (g *Game) ResetUpgrades() (int, error) {
	if err := g.requireIntermission(); err != nil {
		return 0, err
	}
	return g.Shop.Reset(&g.Player), nil
}

// Continue starts the next level, clearing everything left on the field.
func (g *Game) Continue() error {
	if err := g.requireIntermission(); err != nil {
		return err
	}
	g.clearField()
	return g.ProgressionSystem.Continue(g.Now())
}

func (g *Game) clearField() {
	g.World.ClearEntities()
	g.Player.Projectiles = g.Player.Projectiles[:0]
	g.EnemyGenerator.Reset()
	g.PowerUpGenerator.Reset()
	g.aim = nil
}
