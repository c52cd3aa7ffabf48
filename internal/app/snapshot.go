// internal/app/snapshot.go
package app

import (
	"maps"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
)

// Snapshot is a read-only copy of everything the front-ends draw.
type Snapshot struct {
	RunID         string                   `json:"run_id"`
	Phase         component.GamePhase      `json:"phase"`
	Level         int                      `json:"level"`
	Levels        int                      `json:"levels"`
	TimeRemaining float64                  `json:"time_remaining"`
	Score         int                      `json:"score"`
	Available     int                      `json:"available_points"`
	Defeated      int                      `json:"defeated"`
	Lives         int                      `json:"lives"`
	MaxLives      int                      `json:"max_lives"`
	ShieldCharges int                      `json:"shield_charges"`
	Effects       []component.ActiveEffect `json:"effects"`
	Difficulty    float64                  `json:"difficulty"`
	SpawnInterval float64                  `json:"spawn_interval"`
	Upgrades      map[defs.UpgradeKey]int  `json:"upgrades"`

	Player           PlayerView       `json:"player"`
	Enemies          []EnemyView      `json:"enemies"`
	Projectiles      []ProjectileView `json:"projectiles"`
	EnemyProjectiles []ProjectileView `json:"enemy_projectiles"`
	PowerUps         []PowerUpView    `json:"power_ups"`
}

type PlayerView struct {
	Character defs.CharacterID `json:"character"`
	Attack    defs.AttackType  `json:"attack"`
	X         float64          `json:"x"`
	Y         float64          `json:"y"`
	Size      float64          `json:"size"`
	Speed     float64          `json:"speed"`
	ShotDelay float64          `json:"shot_delay"`
	HasShield bool             `json:"has_shield"`
}

type EnemyView struct {
	ID        uint64         `json:"id"`
	Type      defs.EnemyType `json:"type"`
	Rarity    defs.Rarity    `json:"rarity"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Size      float64        `json:"size"`
	Health    int            `json:"health"`
	MaxHealth int            `json:"max_health"`
	Flash     bool           `json:"flash"`
}

type ProjectileView struct {
	X      float64         `json:"x"`
	Y      float64         `json:"y"`
	Size   float64         `json:"size"`
	Attack defs.AttackType `json:"attack,omitempty"`
}

type PowerUpView struct {
	Type defs.PowerUpType `json:"type"`
	X    float64          `json:"x"`
	Y    float64          `json:"y"`
	Size float64          `json:"size"`
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	now := g.Now()
	p := &g.Player
	s := Snapshot{
		RunID:         g.RunID,
		Phase:         g.Phase(),
		Level:         g.ProgressionSystem.Level,
		Levels:        g.Lib.LevelCount(),
		TimeRemaining: g.ProgressionSystem.Remaining(now),
		Score:         g.Score,
		Available:     g.AvailablePoints(),
		Defeated:      g.Defeated,
		Lives:         p.Lives,
		MaxLives:      p.MaxLives,
		ShieldCharges: p.ShieldCharges,
		Effects:       g.EffectSystem.ActiveEffects(p, now),
		Difficulty:    g.EnemyGenerator.Difficulty(),
		SpawnInterval: g.EnemyGenerator.CurrentInterval(),
		Upgrades:      maps.Clone(p.Upgrades),
		Player: PlayerView{
			Character: p.Character,
			Attack:    p.Attack,
			X:         p.X,
			Y:         p.Y,
			Size:      p.Size,
			Speed:     p.Speed,
			ShotDelay: p.ShotDelay,
			HasShield: p.HasShield,
		},
		Enemies:          make([]EnemyView, 0, len(g.World.Enemies)),
		Projectiles:      make([]ProjectileView, 0, len(p.Projectiles)),
		EnemyProjectiles: make([]ProjectileView, 0, len(g.World.EnemyProjectiles)),
		PowerUps:         make([]PowerUpView, 0, len(g.World.PowerUps)),
	}
	for _, e := range g.World.Enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			ID:        uint64(e.ID),
			Type:      e.Type,
			Rarity:    e.Rarity,
			X:         e.X,
			Y:         e.Y,
			Size:      e.Size,
			Health:    e.Health.Current,
			MaxHealth: e.Health.Max,
			Flash:     e.Flash.Active(),
		})
	}
	for _, pr := range p.Projectiles {
		s.Projectiles = append(s.Projectiles, ProjectileView{X: pr.X, Y: pr.Y, Size: pr.Size, Attack: pr.Attack})
	}
	for _, pr := range g.World.EnemyProjectiles {
		s.EnemyProjectiles = append(s.EnemyProjectiles, ProjectileView{X: pr.X, Y: pr.Y, Size: pr.Size})
	}
	for _, pu := range g.World.PowerUps {
		s.PowerUps = append(s.PowerUps, PowerUpView{Type: pu.Type, X: pu.X, Y: pu.Y, Size: pu.Size})
	}
	return s
}
