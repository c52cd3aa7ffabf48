// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID           EnemyType       `json:"id"`
	Name         string          `json:"name"`
	Health       int             `json:"health"`
	Speed        float64         `json:"speed"`
	Size         float64         `json:"size"`
	Movement     MovementPattern `json:"movement_pattern"`
	ZigzagFactor float64         `json:"zigzag_factor,omitempty"`
	CanShoot     bool            `json:"can_shoot,omitempty"`
	ShootDelay   float64         `json:"shoot_delay,omitempty"`
	Visuals      Visuals         `json:"visuals"`
}
