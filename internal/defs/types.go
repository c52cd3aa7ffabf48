// internal/defs/types.go
package defs

import "image/color"

// EnemyType identifies an enemy definition.
type EnemyType string

const (
	EnemyBasic  EnemyType = "Basic"
	EnemyTough  EnemyType = "Tough"
	EnemyFast   EnemyType = "Fast"
	EnemyGunner EnemyType = "Gunner"
)

// Rarity is the tier applied on top of an enemy type's base stats.
type Rarity string

const (
	RarityNormal    Rarity = "NORMAL"
	RarityRare      Rarity = "RARE"
	RarityElite     Rarity = "ELITE"
	RarityLegendary Rarity = "LEGENDARY"
)

// AttackType defines how the player's shots behave.
type AttackType string

const (
	AttackNormal   AttackType = "normal"
	AttackSpread   AttackType = "spread_shot"
	AttackPiercing AttackType = "piercing_shot"
)

// PowerUpType is the kind of pickup dropped by enemies.
type PowerUpType string

const (
	PowerUpHealth   PowerUpType = "health"
	PowerUpFastShot PowerUpType = "fast_shot"
	PowerUpShield   PowerUpType = "shield"
)

// PowerUpTypes is the fixed drop pool, in draw order.
var PowerUpTypes = []PowerUpType{PowerUpHealth, PowerUpFastShot, PowerUpShield}

// MovementPattern describes how an enemy descends.
type MovementPattern string

const (
	MoveStraight MovementPattern = "straight"
	MoveZigzag   MovementPattern = "zigzag"
)

// UpgradeKey identifies a permanent upgrade.
type UpgradeKey string

const (
	UpgradePlayerSpeed     UpgradeKey = "player_speed"
	UpgradePlayerLives     UpgradeKey = "player_lives"
	UpgradeShotDelay       UpgradeKey = "shot_delay_reduction"
	UpgradeProjectileSpeed UpgradeKey = "projectile_speed_increase"
	UpgradeSpreadShot      UpgradeKey = "attack_spread_shot"
	UpgradePiercingShot    UpgradeKey = "attack_piercing_shot"
)

// CharacterID identifies a playable archetype.
type CharacterID string

const (
	CharacterKava   CharacterID = "Kava"
	CharacterSara   CharacterID = "Sara"
	CharacterGuiral CharacterID = "Guiral"
)

// Visuals contains parameters for drawing an entity as a plain shape.
type Visuals struct {
	Color color.RGBA `json:"color"`
}
