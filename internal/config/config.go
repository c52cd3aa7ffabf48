// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1920
	ScreenHeight = 1080
	MaxDeltaTime = 0.1 // секунд, защита от скачков при лагах

	PlayerSize   = 128.0
	PowerUpSize  = 30.0
	PowerUpSpeed = 2.0

	SpawnInterval    = 2.0 // секунд между врагами
	MinSpawnInterval = 0.5
	BaseEnemyCount   = 4
	ScoreBase        = 10 // очки за NORMAL врага

	DropChance         = 0.2
	PowerUpInterval    = 10.0
	FastShotDuration   = 5.0
	FastShotDelay      = 0.1
	ShieldDuration     = 10.0
	PiercingHitCap     = 2
	MinShotDelay       = 0.05
	EnemyProjectile    = 10.0 // размер снаряда врага
	EnemyProjSpeed     = 3.0
	EnemyProjDamage    = 1
	ContactDamage      = 1
	MaxDifficultyShift = 30 // ограничение степени двойки в формуле сложности

	FirstLevelDuration = 30.0
	LevelDurationStep  = 5.0
	MaxLevelDuration   = 60.0

	SaveSlots       = 3
	SnapshotVersion = 1
	SpectateHz      = 10

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PlayingColor    = color.RGBA{70, 130, 180, 220}
	DangerColor     = color.RGBA{220, 60, 60, 220}
	ShieldColor     = color.RGBA{80, 180, 255, 160}
	PanelColor      = color.RGBA{30, 30, 45, 230}
	ButtonColor     = color.RGBA{70, 100, 120, 220}
	DisabledColor   = color.RGBA{90, 90, 90, 220}
	EnemyShotColor  = color.RGBA{255, 80, 40, 255}
	StrokeWidth     = 2.0
	RarityColors    = map[string]color.RGBA{
		"NORMAL":    {200, 200, 200, 255},
		"RARE":      {60, 140, 255, 255},
		"ELITE":     {180, 50, 230, 255},
		"LEGENDARY": {255, 215, 0, 255},
	}
)
