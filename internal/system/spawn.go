// internal/system/spawn.go
package system

import (
	"log/slog"
	"math"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/interfaces"
	"go-arcade-shooter/internal/types"
	"go-arcade-shooter/internal/utils"
)

// IDSource выдаёт уникальные идентификаторы сущностей.
type IDSource interface {
	NewEntity() types.EntityID
}

// EnemyGenerator spawns at most one enemy per interval of level time.
type EnemyGenerator struct {
	lib    *defs.Library
	rng    interfaces.RNG
	ids    IDSource
	logger *slog.Logger

	FieldWidth  float64
	Interval    float64 // базовый интервал
	MinInterval float64
	BaseCount   int
	Adaptive    bool // интервал зависит от сложности

	lastSpawn  float64
	difficulty float64
}

func NewEnemyGenerator(lib *defs.Library, rng interfaces.RNG, ids IDSource, logger *slog.Logger) *EnemyGenerator {
	return &EnemyGenerator{
		lib:         lib,
		rng:         rng,
		ids:         ids,
		logger:      logger.With("component", "spawn"),
		FieldWidth:  config.ScreenWidth,
		Interval:    config.SpawnInterval,
		MinInterval: config.MinSpawnInterval,
		BaseCount:   config.BaseEnemyCount,
		difficulty:  config.BaseEnemyCount,
	}
}

// Difficulty returns base_count * 2^floor(score/5) + 2*floor(elapsed/60).
func Difficulty(baseCount, score int, elapsed float64) float64 {
	shift := score / 5
	if shift > config.MaxDifficultyShift {
		shift = config.MaxDifficultyShift
	}
	if shift < 0 {
		shift = 0
	}
	return math.Ldexp(float64(baseCount), shift) + 2*math.Floor(elapsed/60)
}

// CurrentInterval is the spawn interval in effect for the last computed difficulty.
func (g *EnemyGenerator) CurrentInterval() float64 {
	if !g.Adaptive || g.difficulty <= 0 {
		return g.Interval
	}
	return utils.Clamp(g.Interval*float64(g.BaseCount)/g.difficulty, g.MinInterval, g.Interval)
}

func (g *EnemyGenerator) Difficulty() float64 { return g.difficulty }

// Reset restarts the spawn timer for a new level.
func (g *EnemyGenerator) Reset() {
	g.lastSpawn = 0
}

// LastSpawn is the level time of the last spawn.
func (g *EnemyGenerator) LastSpawn() float64 { return g.lastSpawn }

// SetLastSpawn restores the spawn timer, e.g. after loading a save.
func (g *EnemyGenerator) SetLastSpawn(elapsed float64) { g.lastSpawn = max(0, elapsed) }

// Generate returns zero or one new enemy. elapsed is the level time.
func (g *EnemyGenerator) Generate(score int, elapsed float64) []component.Enemy {
	g.difficulty = Difficulty(g.BaseCount, score, elapsed)
	if elapsed-g.lastSpawn < g.CurrentInterval() {
		return nil
	}
	g.lastSpawn = elapsed

	if len(g.lib.EnemyTypes) == 0 {
		return nil
	}
	def := g.lib.Enemy(g.lib.EnemyTypes[g.rng.Intn(len(g.lib.EnemyTypes))])
	rarity := g.lib.Rarity(g.lib.RarityTable.Pick(g.rng.Float64()))
	x := g.rng.Float64() * math.Max(0, g.FieldWidth-def.Size)

	enemy := component.NewEnemy(g.ids.NewEntity(), def, rarity, config.ScoreBase, x, 0, 0)
	g.logger.Debug("enemy spawned",
		"id", enemy.ID,
		"type", enemy.Type,
		"rarity", enemy.Rarity,
		"x", x,
		"difficulty", g.difficulty,
		"interval", g.CurrentInterval())
	return []component.Enemy{enemy}
}

// PowerUpGenerator drops a random power-up from above the field at a fixed cadence.
type PowerUpGenerator struct {
	rng        interfaces.RNG
	ids        IDSource
	logger     *slog.Logger
	FieldWidth float64
	Interval   float64
	lastSpawn  float64
}

func NewPowerUpGenerator(rng interfaces.RNG, ids IDSource, logger *slog.Logger) *PowerUpGenerator {
	return &PowerUpGenerator{
		rng:        rng,
		ids:        ids,
		logger:     logger.With("component", "spawn"),
		FieldWidth: config.ScreenWidth,
		Interval:   config.PowerUpInterval,
	}
}

func (g *PowerUpGenerator) Reset() { g.lastSpawn = 0 }

func (g *PowerUpGenerator) LastSpawn() float64 { return g.lastSpawn }

func (g *PowerUpGenerator) SetLastSpawn(elapsed float64) { g.lastSpawn = max(0, elapsed) }

func (g *PowerUpGenerator) Generate(elapsed float64) []component.PowerUp {
	if elapsed-g.lastSpawn < g.Interval {
		return nil
	}
	g.lastSpawn = elapsed

	kind := defs.PowerUpTypes[g.rng.Intn(len(defs.PowerUpTypes))]
	x := config.PowerUpSize/2 + g.rng.Float64()*(g.FieldWidth-config.PowerUpSize)
	p := NewPowerUp(g.ids.NewEntity(), kind, x, -config.PowerUpSize/2)
	g.logger.Debug("power-up spawned", "id", p.ID, "type", kind, "x", x)
	return []component.PowerUp{p}
}

// NewPowerUp creates a descending power-up centred on (x, y).
func NewPowerUp(id types.EntityID, kind defs.PowerUpType, x, y float64) component.PowerUp {
	return component.PowerUp{
		ID:    id,
		Type:  kind,
		X:     x,
		Y:     y,
		Speed: config.PowerUpSpeed,
		Size:  config.PowerUpSize,
	}
}
