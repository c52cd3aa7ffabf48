// internal/system/upgrade.go
package system

import (
	"errors"
	"fmt"
	"log/slog"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrUnknownUpgrade     = errors.New("unknown upgrade")
	ErrNotInIntermission  = errors.New("upgrades can only be bought between levels")
)

// ApplyUpgrade applies one level of a permanent upgrade and bumps its level.
func ApplyUpgrade(lib *defs.Library, p *component.Player, key defs.UpgradeKey) error {
	def, ok := lib.Upgrade(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, key)
	}
	applyEffect(lib, p, def.Effect)
	p.Upgrades[key]++
	return nil
}

func applyEffect(lib *defs.Library, p *component.Player, e defs.UpgradeEffect) {
	p.Speed += e.Speed
	if e.Lives != 0 {
		p.MaxLives = min(p.MaxLives+e.Lives, p.LivesCap)
		p.Lives = min(p.Lives+e.Lives, p.MaxLives)
	}
	if e.ShotDelay != 0 {
		p.BaseShotDelay = max(p.BaseShotDelay+e.ShotDelay, config.MinShotDelay)
		if !p.FastShot {
			p.ShotDelay = p.BaseShotDelay
		}
	}
	p.ProjectileSpeedBonus += e.ProjectileSpeed
	if e.AttackType != "" {
		p.Attack = lib.Attack(e.AttackType).ID
	}
}

// RebuildStats resets the player's upgradeable stats to the character base and
// re-applies every recorded upgrade level. Current lives are kept within range.
func RebuildStats(lib *defs.Library, p *component.Player) {
	base := lib.Character(p.Character)
	lives := p.Lives

	p.Speed = base.Speed
	p.MaxLives = base.Lives
	p.LivesCap = base.LivesCap
	p.BaseShotDelay = base.ShotDelay
	p.ProjectileSpeedBonus = 0
	p.Attack = defs.AttackNormal
	for _, key := range lib.UpgradeKeys {
		def := lib.Upgrades[key]
		for i := 0; i < p.Upgrades[key]; i++ {
			e := def.Effect
			e.Lives = 0 // жизни восстанавливаем ниже, без лечения
			applyEffect(lib, p, e)
			p.MaxLives = min(p.MaxLives+def.Effect.Lives, p.LivesCap)
		}
	}
	p.ShotDelay = p.BaseShotDelay
	if p.FastShot {
		p.ShotDelay = config.FastShotDelay
	}
	p.Lives = lives
	p.ClampLives()
}

// Shop sells upgrades for score points. Points are never deducted from the
// score itself; Spent tracks what has been paid.
type Shop struct {
	lib    *defs.Library
	logger *slog.Logger
	Spent  int
}

func NewShop(lib *defs.Library, logger *slog.Logger) *Shop {
	return &Shop{lib: lib, logger: logger.With("component", "shop")}
}

// Available returns the points left to spend.
func (s *Shop) Available(score int) int {
	return max(0, score-s.Spent)
}

// Buy charges the upgrade cost and applies it.
func (s *Shop) Buy(p *component.Player, key defs.UpgradeKey, score int) error {
	def, ok := s.lib.Upgrade(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, key)
	}
	if avail := s.Available(score); def.Cost > avail {
		return fmt.Errorf("%w: %q costs %d, have %d", ErrInsufficientPoints, key, def.Cost, avail)
	}
	if err := ApplyUpgrade(s.lib, p, key); err != nil {
		return err
	}
	s.Spent += def.Cost
	s.logger.Info("upgrade bought", "key", key, "level", p.Upgrades[key], "cost", def.Cost, "spent", s.Spent)
	return nil
}

// Reset zeroes every upgrade level, refunds all spent points and rebuilds the
// player's stats. It returns the refunded amount.
func (s *Shop) Reset(p *component.Player) int {
	refund := s.Spent
	s.Spent = 0
	for key := range p.Upgrades {
		delete(p.Upgrades, key)
	}
	RebuildStats(s.lib, p)
	s.logger.Info("upgrades reset", "refund", refund)
	return refund
}
