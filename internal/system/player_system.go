// internal/system/player_system.go
package system

import (
	"log/slog"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/types"
)

// PlayerSystem отвечает за стрельбу игрока.
type PlayerSystem struct {
	lib        *defs.Library
	ids        IDSource
	dispatcher *event.Dispatcher
	logger     *slog.Logger
}

func NewPlayerSystem(lib *defs.Library, ids IDSource, dispatcher *event.Dispatcher, logger *slog.Logger) *PlayerSystem {
	return &PlayerSystem{lib: lib, ids: ids, dispatcher: dispatcher, logger: logger.With("component", "player")}
}

// Shoot fires the player's current attack at (tx, ty) if the cooldown allows.
// It reports whether a shot was fired.
func (s *PlayerSystem) Shoot(p *component.Player, now, tx, ty float64) bool {
	if !p.CanShoot(now) {
		return false
	}
	attack := s.lib.Attack(p.Attack)
	ox, oy := p.X+p.Size/2, p.Y
	speed := attack.Speed + p.ProjectileSpeedBonus

	n := attack.Projectiles()
	for k := 0; k < n; k++ {
		pr := component.NewProjectile(s.ids.NewEntity(), types.SidePlayer, ox, oy, tx, ty,
			speed, attack.ProjectileSize, attack.Damage, attack.Piercing)
		pr.Attack = attack.ID
		// веер симметричен относительно направления на цель
		if offset := float64(k) - float64(n-1)/2; offset != 0 {
			pr.Rotate(offset * attack.AngleSpread)
		}
		p.Projectiles = append(p.Projectiles, pr)
	}
	p.LastShot = now

	s.logger.Debug("player shot", "attack", attack.ID, "projectiles", n, "target_x", tx, "target_y", ty)
	s.dispatcher.Dispatch(event.Event{Type: event.ShotFired})
	return true
}
