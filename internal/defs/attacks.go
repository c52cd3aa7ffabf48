// internal/defs/attacks.go
package defs

// AttackDefinition describes the projectiles produced by one player shot.
type AttackDefinition struct {
	ID             AttackType `json:"id"`
	ProjectileSize float64    `json:"projectile_size"`
	Speed          float64    `json:"projectile_speed"`
	Damage         int        `json:"damage"`
	Piercing       bool       `json:"piercing"`
	Count          int        `json:"num_projectiles,omitempty"` // 0 means a single projectile
	AngleSpread    float64    `json:"angle_spread,omitempty"`    // radians between neighbouring projectiles
	Visuals        Visuals    `json:"visuals"`
}

// Projectiles returns the number of projectiles fired per shot.
func (a AttackDefinition) Projectiles() int {
	if a.Count < 1 {
		return 1
	}
	return a.Count
}

// CharacterDefinition holds the base stats of a playable archetype.
type CharacterDefinition struct {
	ID          CharacterID `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Speed       float64     `json:"speed"`
	Lives       int         `json:"lives"`
	LivesCap    int         `json:"lives_cap"`
	ShotDelay   float64     `json:"shot_delay"`
	Visuals     Visuals     `json:"visuals"`
}

// PowerUpDefinition describes a pickup.
type PowerUpDefinition struct {
	ID       PowerUpType `json:"id"`
	Name     string      `json:"name"`
	Duration float64     `json:"duration,omitempty"`
	Visuals  Visuals     `json:"visuals"`
}
