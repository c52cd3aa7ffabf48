package persistence

import (
	"time"

	"go-arcade-shooter/internal/defs"
)

// Snapshot is the saved form of a run. Timers are stored as remaining
// seconds so a loaded run resumes on a fresh simulation clock.
type Snapshot struct {
	Version      int                     `json:"version"`
	RunID        string                  `json:"run_id"`
	SavedAt      time.Time               `json:"saved_at"`
	Character    defs.CharacterID        `json:"character"`
	Level        int                     `json:"level"`
	LevelElapsed float64                 `json:"level_elapsed"`
	Score        int                     `json:"score"`
	Spent        int                     `json:"spent"`
	Defeated     int                     `json:"defeated"`
	Upgrades     map[defs.UpgradeKey]int `json:"upgrades"`
	Player       PlayerState             `json:"player"`
	Enemies      []EnemyState            `json:"enemies"`
	PowerUps     []PowerUpState          `json:"power_ups"`
	Spawns       SpawnState              `json:"spawns"`
}

// SpawnState holds the level time of the last enemy and power-up spawn.
type SpawnState struct {
	LastEnemy   float64 `json:"last_enemy"`
	LastPowerUp float64 `json:"last_power_up"`
}

type PlayerState struct {
	X                    float64         `json:"x"`
	Y                    float64         `json:"y"`
	Lives                int             `json:"lives"`
	MaxLives             int             `json:"max_lives"`
	ShieldCharges        int             `json:"shield_charges"`
	Speed                float64         `json:"speed"`
	ProjectileSpeedBonus float64         `json:"projectile_speed_bonus"`
	BaseShotDelay        float64         `json:"base_shot_delay"`
	ShotDelay            float64         `json:"shot_delay"`
	Attack               defs.AttackType `json:"attack"`
	FastShotRemaining    float64         `json:"fast_shot_remaining"`
	ShieldRemaining      float64         `json:"shield_remaining"`
}

type EnemyState struct {
	Type         defs.EnemyType `json:"type"`
	Rarity       defs.Rarity    `json:"rarity"`
	X            float64        `json:"x"`
	Y            float64        `json:"y"`
	Health       int            `json:"health"`
	ZigzagDir    float64        `json:"zigzag_dir"`
	ShotCooldown float64        `json:"shot_cooldown"`
}

type PowerUpState struct {
	Type defs.PowerUpType `json:"type"`
	X    float64          `json:"x"`
	Y    float64          `json:"y"`
}
