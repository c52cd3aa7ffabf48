// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
)

//go:embed data/*.json
var embedded embed.FS

// ErrInvalidTable is returned when a definition table fails validation.
var ErrInvalidTable = errors.New("invalid definition table")

// Library holds every static definition table, keyed by its ID.
// Lookups with unknown keys fall back to a documented default and log a warning.
type Library struct {
	Enemies      map[EnemyType]EnemyDefinition
	EnemyTypes   []EnemyType // порядок из файла, для равномерного выбора
	Rarities     map[Rarity]RarityDefinition
	RarityTable  RarityTable
	Attacks      map[AttackType]AttackDefinition
	Upgrades     map[UpgradeKey]UpgradeDefinition
	UpgradeKeys  []UpgradeKey
	Characters   map[CharacterID]CharacterDefinition
	CharacterIDs []CharacterID
	PowerUps     map[PowerUpType]PowerUpDefinition
	Levels       []LevelDefinition

	logger *slog.Logger
}

// Default loads the tables embedded into the binary.
func Default(logger *slog.Logger) (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return Load(sub, logger)
}

// Load reads and validates all definition files from fsys.
func Load(fsys fs.FS, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	lib := &Library{logger: logger.With("component", "defs")}

	var enemyDefs []EnemyDefinition
	if err := readTable(fsys, "enemies.json", &enemyDefs); err != nil {
		return nil, err
	}
	var rarityDefs []RarityDefinition
	if err := readTable(fsys, "rarities.json", &rarityDefs); err != nil {
		return nil, err
	}
	var attackDefs []AttackDefinition
	if err := readTable(fsys, "attacks.json", &attackDefs); err != nil {
		return nil, err
	}
	var upgradeDefs []UpgradeDefinition
	if err := readTable(fsys, "upgrades.json", &upgradeDefs); err != nil {
		return nil, err
	}
	var characterDefs []CharacterDefinition
	if err := readTable(fsys, "characters.json", &characterDefs); err != nil {
		return nil, err
	}
	var powerUpDefs []PowerUpDefinition
	if err := readTable(fsys, "powerups.json", &powerUpDefs); err != nil {
		return nil, err
	}
	if err := readTable(fsys, "levels.json", &lib.Levels); err != nil {
		return nil, err
	}

	lib.Enemies = make(map[EnemyType]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		lib.Enemies[def.ID] = def
		lib.EnemyTypes = append(lib.EnemyTypes, def.ID)
	}
	lib.Rarities = make(map[Rarity]RarityDefinition, len(rarityDefs))
	for _, def := range rarityDefs {
		lib.Rarities[def.ID] = def
	}
	lib.RarityTable = NewRarityTable(rarityDefs)
	lib.Attacks = make(map[AttackType]AttackDefinition, len(attackDefs))
	for _, def := range attackDefs {
		lib.Attacks[def.ID] = def
	}
	lib.Upgrades = make(map[UpgradeKey]UpgradeDefinition, len(upgradeDefs))
	for _, def := range upgradeDefs {
		lib.Upgrades[def.Key] = def
		lib.UpgradeKeys = append(lib.UpgradeKeys, def.Key)
	}
	lib.Characters = make(map[CharacterID]CharacterDefinition, len(characterDefs))
	for _, def := range characterDefs {
		lib.Characters[def.ID] = def
		lib.CharacterIDs = append(lib.CharacterIDs, def.ID)
	}
	lib.PowerUps = make(map[PowerUpType]PowerUpDefinition, len(powerUpDefs))
	for _, def := range powerUpDefs {
		lib.PowerUps[def.ID] = def
	}

	if err := lib.Validate(rarityDefs); err != nil {
		return nil, err
	}

	lib.logger.Info("definitions loaded",
		"enemies", len(lib.Enemies),
		"rarities", len(lib.Rarities),
		"attacks", len(lib.Attacks),
		"upgrades", len(lib.Upgrades),
		"characters", len(lib.Characters),
		"levels", len(lib.Levels))
	return lib, nil
}

func readTable(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// Validate checks the cross-table invariants the simulation relies on.
func (l *Library) Validate(rarityDefs []RarityDefinition) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidTable, fmt.Sprintf(format, args...))
	}

	for _, id := range []EnemyType{EnemyBasic} {
		if _, ok := l.Enemies[id]; !ok {
			return invalid("enemies: missing fallback type %q", id)
		}
	}
	for id, def := range l.Enemies {
		if def.Health < 1 || def.Speed <= 0 || def.Size <= 0 {
			return invalid("enemies: %q needs positive health, speed and size", id)
		}
		if def.Movement != MoveStraight && def.Movement != MoveZigzag {
			return invalid("enemies: %q has unknown movement pattern %q", id, def.Movement)
		}
		if def.CanShoot && def.ShootDelay <= 0 {
			return invalid("enemies: %q shoots but has no shoot_delay", id)
		}
	}

	sum := 0.0
	for _, def := range rarityDefs {
		if def.Weight < 0 {
			return invalid("rarities: %q has negative weight", def.ID)
		}
		if def.HealthMultiplier <= 0 || def.SpeedMultiplier <= 0 || def.ScoreMultiplier <= 0 {
			return invalid("rarities: %q needs positive multipliers", def.ID)
		}
		sum += def.Weight
	}
	if math.Abs(sum-1) > 1e-6 {
		return invalid("rarities: weights sum to %.4f, want 1", sum)
	}
	if _, ok := l.Rarities[RarityNormal]; !ok {
		return invalid("rarities: missing %q", RarityNormal)
	}

	for _, id := range []AttackType{AttackNormal, AttackSpread, AttackPiercing} {
		def, ok := l.Attacks[id]
		if !ok {
			return invalid("attacks: missing %q", id)
		}
		if def.Speed <= 0 || def.ProjectileSize <= 0 || def.Damage < 1 {
			return invalid("attacks: %q needs positive speed, size and damage", id)
		}
	}

	for key, def := range l.Upgrades {
		if def.Cost <= 0 {
			return invalid("upgrades: %q needs a positive cost", key)
		}
		if at := def.Effect.AttackType; at != "" {
			if _, ok := l.Attacks[at]; !ok {
				return invalid("upgrades: %q grants unknown attack %q", key, at)
			}
		}
	}

	if _, ok := l.Characters[CharacterKava]; !ok {
		return invalid("characters: missing fallback %q", CharacterKava)
	}
	for id, def := range l.Characters {
		if def.Speed <= 0 || def.ShotDelay <= 0 {
			return invalid("characters: %q needs positive speed and shot_delay", id)
		}
		if def.Lives < 1 || def.Lives > def.LivesCap {
			return invalid("characters: %q needs 1 <= lives <= lives_cap", id)
		}
	}

	for _, id := range PowerUpTypes {
		if _, ok := l.PowerUps[id]; !ok {
			return invalid("powerups: missing %q", id)
		}
	}

	if len(l.Levels) == 0 {
		return invalid("levels: table is empty")
	}
	for i, lvl := range l.Levels {
		if lvl.Number != i+1 {
			return invalid("levels: entry %d has number %d", i, lvl.Number)
		}
	}
	return nil
}

// Enemy returns the definition for id, falling back to Basic.
func (l *Library) Enemy(id EnemyType) EnemyDefinition {
	if def, ok := l.Enemies[id]; ok {
		return def
	}
	l.logger.Warn("unknown enemy type, using fallback", "type", id, "fallback", EnemyBasic)
	return l.Enemies[EnemyBasic]
}

// Rarity returns the definition for id, falling back to NORMAL.
func (l *Library) Rarity(id Rarity) RarityDefinition {
	if def, ok := l.Rarities[id]; ok {
		return def
	}
	l.logger.Warn("unknown rarity, using fallback", "rarity", id, "fallback", RarityNormal)
	return l.Rarities[RarityNormal]
}

// Attack returns the definition for id, falling back to normal.
func (l *Library) Attack(id AttackType) AttackDefinition {
	if def, ok := l.Attacks[id]; ok {
		return def
	}
	l.logger.Warn("unknown attack type, using fallback", "attack", id, "fallback", AttackNormal)
	return l.Attacks[AttackNormal]
}

// Upgrade returns the definition for key. Unknown keys are reported with ok=false.
func (l *Library) Upgrade(key UpgradeKey) (UpgradeDefinition, bool) {
	def, ok := l.Upgrades[key]
	if !ok {
		l.logger.Warn("unknown upgrade key, ignoring", "key", key)
	}
	return def, ok
}

// Character returns the definition for id, falling back to Kava.
func (l *Library) Character(id CharacterID) CharacterDefinition {
	if def, ok := l.Characters[id]; ok {
		return def
	}
	l.logger.Warn("unknown character, using fallback", "character", id, "fallback", CharacterKava)
	return l.Characters[CharacterKava]
}

// PowerUp returns the definition for id, falling back to health.
func (l *Library) PowerUp(id PowerUpType) PowerUpDefinition {
	if def, ok := l.PowerUps[id]; ok {
		return def
	}
	l.logger.Warn("unknown power-up, using fallback", "powerup", id, "fallback", PowerUpHealth)
	return l.PowerUps[PowerUpHealth]
}

// LevelCount returns the number of levels in the campaign.
func (l *Library) LevelCount() int { return len(l.Levels) }
