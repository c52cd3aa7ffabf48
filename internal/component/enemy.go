package component

import (
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID           types.EntityID
	Type         defs.EnemyType
	Rarity       defs.Rarity
	X, Y         float64 // левый верхний угол
	Size         float64
	Speed        float64
	Health       Health
	ScoreValue   int
	Movement     defs.MovementPattern
	ZigzagFactor float64
	ZigzagDir    float64 // +1 вправо, -1 влево
	CanShoot     bool
	ShootDelay   float64
	LastShot     float64 // время последнего выстрела в симуляции
	Flash        DamageFlash
}

// NewEnemy builds an enemy from its type and rarity definitions.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, rarity defs.RarityDefinition, scoreBase int, x, y, now float64) Enemy {
	return Enemy{
		ID:           id,
		Type:         def.ID,
		Rarity:       rarity.ID,
		X:            x,
		Y:            y,
		Size:         def.Size,
		Speed:        def.Speed * rarity.SpeedMultiplier,
		Health:       NewHealth(int(float64(def.Health) * rarity.HealthMultiplier)),
		ScoreValue:   rarity.ScoreValue(scoreBase),
		Movement:     def.Movement,
		ZigzagFactor: def.ZigzagFactor,
		ZigzagDir:    1,
		CanShoot:     def.CanShoot,
		ShootDelay:   def.ShootDelay,
		LastShot:     now,
	}
}

func (e *Enemy) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Size, H: e.Size}
}

func (e *Enemy) Center() Position {
	return e.Bounds().Center()
}
