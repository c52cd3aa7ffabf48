// internal/system/movement.go
package system

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/utils"
)

// MovementSystem двигает врагов, бонусы и игрока. Скорости заданы в пикселях за тик.
type MovementSystem struct {
	FieldWidth float64
}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{FieldWidth: config.ScreenWidth}
}

// MovePlayer applies the horizontal move intent and keeps the player on screen.
func (s *MovementSystem) MovePlayer(p *component.Player) {
	p.X = utils.Clamp(p.X+float64(p.MoveIntent)*p.Speed, 0, s.FieldWidth-p.Size)
}

// MoveEnemies advances every enemy along its pattern and decays hit flashes.
func (s *MovementSystem) MoveEnemies(w *entity.World, dt float64) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		e.Y += e.Speed
		if e.Movement == defs.MoveZigzag {
			e.X += e.ZigzagDir * e.Speed * e.ZigzagFactor
			if e.X <= 0 || e.X >= s.FieldWidth-e.Size {
				e.ZigzagDir = -e.ZigzagDir
				e.X = utils.Clamp(e.X, 0, s.FieldWidth-e.Size)
			}
		}
		e.Flash.Tick(dt)
	}
}

func (s *MovementSystem) MovePowerUps(w *entity.World) {
	for i := range w.PowerUps {
		w.PowerUps[i].Y += w.PowerUps[i].Speed
	}
}
