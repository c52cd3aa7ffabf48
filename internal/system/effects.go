// internal/system/effects.go
package system

import (
	"log/slog"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
)

// EffectSystem управляет временными эффектами бонусов игрока.
type EffectSystem struct {
	lib    *defs.Library
	logger *slog.Logger
}

func NewEffectSystem(lib *defs.Library, logger *slog.Logger) *EffectSystem {
	return &EffectSystem{lib: lib, logger: logger.With("component", "effects")}
}

// ApplyPowerUp activates a pickup at simulation time now.
// Repeated timed pickups refresh the expiry rather than stacking it.
func (s *EffectSystem) ApplyPowerUp(p *component.Player, kind defs.PowerUpType, now float64) {
	def := s.lib.PowerUp(kind)
	switch def.ID {
	case defs.PowerUpHealth:
		if p.Lives < p.MaxLives {
			p.Lives++
		}
	case defs.PowerUpFastShot:
		p.FastShot = true
		p.ShotDelay = config.FastShotDelay
		p.FastShotUntil = now + def.Duration
	case defs.PowerUpShield:
		p.ShieldCharges++
		p.HasShield = true
		p.ShieldUntil = now + def.Duration
	}
	s.logger.Debug("power-up applied",
		"type", def.ID,
		"lives", p.Lives,
		"shield_charges", p.ShieldCharges,
		"shot_delay", p.ShotDelay)
}

// Update снимает истёкшие эффекты.
func (s *EffectSystem) Update(p *component.Player, now float64) {
	if p.FastShot && now >= p.FastShotUntil {
		p.FastShot = false
		p.ShotDelay = p.BaseShotDelay
		s.logger.Debug("fast shot expired", "shot_delay", p.ShotDelay)
	}
	if p.HasShield && now >= p.ShieldUntil {
		p.HasShield = false
		p.ShieldCharges = 0
		s.logger.Debug("shield expired")
	}
}

// ActiveEffects lists running timed effects with their remaining time.
func (s *EffectSystem) ActiveEffects(p *component.Player, now float64) []component.ActiveEffect {
	var out []component.ActiveEffect
	if p.FastShot {
		out = append(out, component.ActiveEffect{Name: string(defs.PowerUpFastShot), Remaining: max(0, p.FastShotUntil-now)})
	}
	if p.HasShield {
		out = append(out, component.ActiveEffect{Name: string(defs.PowerUpShield), Remaining: max(0, p.ShieldUntil-now)})
	}
	return out
}
