// internal/entity/ecs.go
package entity

import (
	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/types"
)

// World владеет всеми сущностями уровня, кроме игрока.
// Коллекции хранятся по значению; ссылки между сущностями только по ID.
type World struct {
	GameTime         float64 // время симуляции, идёт только в фазе Playing
	NextID           types.EntityID
	Enemies          []component.Enemy
	EnemyProjectiles []component.Projectile
	PowerUps         []component.PowerUp
}

func NewWorld() *World {
	return &World{NextID: 1}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// ClearEntities removes everything spawned during a level.
func (w *World) ClearEntities() {
	w.Enemies = w.Enemies[:0]
	w.EnemyProjectiles = w.EnemyProjectiles[:0]
	w.PowerUps = w.PowerUps[:0]
}

// Clone returns a deep copy of the world.
func (w *World) Clone() *World {
	c := &World{
		GameTime:         w.GameTime,
		NextID:           w.NextID,
		Enemies:          append([]component.Enemy(nil), w.Enemies...),
		PowerUps:         append([]component.PowerUp(nil), w.PowerUps...),
		EnemyProjectiles: make([]component.Projectile, len(w.EnemyProjectiles)),
	}
	for i, p := range w.EnemyProjectiles {
		c.EnemyProjectiles[i] = p.Clone()
	}
	return c
}

// FindEnemy returns the index of the enemy with the given id, or -1.
func (w *World) FindEnemy(id types.EntityID) int {
	for i := range w.Enemies {
		if w.Enemies[i].ID == id {
			return i
		}
	}
	return -1
}
