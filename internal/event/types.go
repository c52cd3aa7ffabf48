// internal/event/types.go
package event

import (
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/types"
)

const (
	ShotFired        EventType = "ShotFired"        // Игрок выстрелил
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен
	PlayerDamaged    EventType = "PlayerDamaged"    // Игрок получил урон (в т.ч. поглощённый щитом)
	PowerUpCollected EventType = "PowerUpCollected" // Бонус подобран
	LevelStarted     EventType = "LevelStarted"
	LevelCompleted   EventType = "LevelCompleted" // Таймер уровня истёк
	GameOver         EventType = "GameOver"
	GameCompleted    EventType = "GameCompleted"
)

// All lists every event type, for listeners that want everything.
var All = []EventType{ShotFired, EnemyKilled, PlayerDamaged, PowerUpCollected, LevelStarted, LevelCompleted, GameOver, GameCompleted}

type EnemyKilledData struct {
	ID     types.EntityID
	Type   defs.EnemyType
	Rarity defs.Rarity
	Score  int
}

type PlayerDamagedData struct {
	Absorbed bool // щит поглотил удар
	Lives    int
}

type PowerUpData struct {
	Type defs.PowerUpType
}

type LevelData struct {
	Level int
	Score int
}
