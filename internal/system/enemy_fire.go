package system

import (
	"log/slog"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/types"
)

// EnemyFireSystem lets shooting enemies fire at the player's centre.
type EnemyFireSystem struct {
	ids    IDSource
	logger *slog.Logger
}

func NewEnemyFireSystem(ids IDSource, logger *slog.Logger) *EnemyFireSystem {
	return &EnemyFireSystem{ids: ids, logger: logger.With("component", "enemy_fire")}
}

func (s *EnemyFireSystem) Update(now float64, w *entity.World, p *component.Player) {
	target := p.Center()
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.CanShoot || now-e.LastShot <= e.ShootDelay {
			continue
		}
		e.LastShot = now
		ox, oy := e.X+e.Size/2, e.Y+e.Size
		pr := component.NewProjectile(s.ids.NewEntity(), types.SideEnemy, ox, oy, target.X, target.Y,
			config.EnemyProjSpeed, config.EnemyProjectile, config.EnemyProjDamage, false)
		w.EnemyProjectiles = append(w.EnemyProjectiles, pr)
		s.logger.Debug("enemy shot", "enemy", e.ID, "type", e.Type)
	}
}
