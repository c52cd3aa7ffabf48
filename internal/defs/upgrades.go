// internal/defs/upgrades.go
package defs

// UpgradeEffect lists the additive changes applied by one upgrade level.
// Zero fields are ignored.
type UpgradeEffect struct {
	Speed           float64    `json:"speed,omitempty"`
	Lives           int        `json:"lives,omitempty"`
	ShotDelay       float64    `json:"shot_delay,omitempty"`
	ProjectileSpeed float64    `json:"projectile_speed,omitempty"`
	AttackType      AttackType `json:"attack_type,omitempty"`
}

// UpgradeDefinition is one entry of the upgrade shop.
type UpgradeDefinition struct {
	Key         UpgradeKey    `json:"key"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Cost        int           `json:"cost"`
	Effect      UpgradeEffect `json:"effect"`
}
