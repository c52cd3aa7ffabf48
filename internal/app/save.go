// internal/app/save.go
package app

import (
	"time"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/persistence"
	"go-arcade-shooter/internal/system"
	"go-arcade-shooter/internal/utils"
)

// Save writes the run into slot. It reports false when there is no store or
// the write failed.
func (g *Game) Save(slot int) bool {
	if g.store == nil {
		g.logger.Warn("save requested without a store", "slot", slot)
		return false
	}
	if g.Phase().Terminal() {
		g.logger.Warn("refusing to save a finished run", "slot", slot)
		return false
	}
	return g.store.SaveState(slot, g.persistentState())
}

func (g *Game) persistentState() persistence.Snapshot {
	now := g.Now()
	p := &g.Player
	snap := persistence.Snapshot{
		Version:      config.SnapshotVersion,
		RunID:        g.RunID,
		SavedAt:      time.Now().UTC(),
		Character:    p.Character,
		Level:        g.ProgressionSystem.Level,
		LevelElapsed: g.ProgressionSystem.Elapsed(now),
		Score:        g.Score,
		Spent:        g.Shop.Spent,
		Defeated:     g.Defeated,
		Upgrades:     make(map[defs.UpgradeKey]int, len(p.Upgrades)),
		Player: persistence.PlayerState{
			X:                    p.X,
			Y:                    p.Y,
			Lives:                p.Lives,
			MaxLives:             p.MaxLives,
			ShieldCharges:        p.ShieldCharges,
			Speed:                p.Speed,
			ProjectileSpeedBonus: p.ProjectileSpeedBonus,
			BaseShotDelay:        p.BaseShotDelay,
			ShotDelay:            p.ShotDelay,
			Attack:               p.Attack,
		},
		Enemies:  make([]persistence.EnemyState, 0, len(g.World.Enemies)),
		PowerUps: make([]persistence.PowerUpState, 0, len(g.World.PowerUps)),
		Spawns: persistence.SpawnState{
			LastEnemy:   g.EnemyGenerator.LastSpawn(),
			LastPowerUp: g.PowerUpGenerator.LastSpawn(),
		},
	}
	for k, v := range p.Upgrades {
		snap.Upgrades[k] = v
	}
	if p.FastShot {
		snap.Player.FastShotRemaining = max(0, p.FastShotUntil-now)
	}
	if p.HasShield {
		snap.Player.ShieldRemaining = max(0, p.ShieldUntil-now)
	}
	for _, e := range g.World.Enemies {
		snap.Enemies = append(snap.Enemies, persistence.EnemyState{
			Type:         e.Type,
			Rarity:       e.Rarity,
			X:            e.X,
			Y:            e.Y,
			Health:       e.Health.Current,
			ZigzagDir:    e.ZigzagDir,
			ShotCooldown: max(0, e.ShootDelay-(now-e.LastShot)),
		})
	}
	for _, pu := range g.World.PowerUps {
		snap.PowerUps = append(snap.PowerUps, persistence.PowerUpState{Type: pu.Type, X: pu.X, Y: pu.Y})
	}
	return snap
}

// Load replaces the current run with the one stored in slot. A missing or
// unreadable slot leaves the game untouched and reports false.
func (g *Game) Load(slot int) bool {
	if g.store == nil {
		return false
	}
	snap, ok := g.store.LoadState(slot)
	if !ok {
		return false
	}
	if snap.Version != config.SnapshotVersion || snap.Level < 1 || snap.Level > g.Lib.LevelCount() {
		g.logger.Error("incompatible save", "slot", slot, "version", snap.Version, "level", snap.Level)
		return false
	}
	g.restore(snap)
	g.logger.Info("run restored", "slot", slot, "run_id", g.RunID, "level", snap.Level, "score", snap.Score)
	return true
}

func (g *Game) restore(snap persistence.Snapshot) {
	now := g.Now()
	character := g.Lib.Character(snap.Character)

	p := newPlayer(character)
	for k, v := range snap.Upgrades {
		if _, ok := g.Lib.Upgrades[k]; ok && v > 0 {
			p.Upgrades[k] = v
		}
	}
	ps := snap.Player
	p.X = utils.Clamp(ps.X, 0, config.ScreenWidth-p.Size)
	p.Speed = ps.Speed
	p.MaxLives = ps.MaxLives
	p.Lives = ps.Lives
	p.ShieldCharges = ps.ShieldCharges
	p.ProjectileSpeedBonus = ps.ProjectileSpeedBonus
	p.BaseShotDelay = max(ps.BaseShotDelay, config.MinShotDelay)
	p.ShotDelay = p.BaseShotDelay
	p.Attack = g.Lib.Attack(ps.Attack).ID
	if ps.FastShotRemaining > 0 {
		p.FastShot = true
		p.FastShotUntil = now + ps.FastShotRemaining
		p.ShotDelay = config.FastShotDelay
	}
	if ps.ShieldRemaining > 0 && ps.ShieldCharges > 0 {
		p.HasShield = true
		p.ShieldUntil = now + ps.ShieldRemaining
	} else {
		p.ShieldCharges = 0
	}
	p.ClampLives()
	g.Player = p

	g.clearField()
	for _, es := range snap.Enemies {
		def := g.Lib.Enemy(es.Type)
		e := component.NewEnemy(g.World.NewEntity(), def, g.Lib.Rarity(es.Rarity), config.ScoreBase, es.X, es.Y, now)
		e.Health.Current = utils.ClampInt(es.Health, 1, e.Health.Max)
		if es.ZigzagDir < 0 {
			e.ZigzagDir = -1
		}
		e.LastShot = now - max(0, e.ShootDelay-es.ShotCooldown)
		g.World.Enemies = append(g.World.Enemies, e)
	}
	for _, pu := range snap.PowerUps {
		g.World.PowerUps = append(g.World.PowerUps,
			system.NewPowerUp(g.World.NewEntity(), g.Lib.PowerUp(pu.Type).ID, pu.X, pu.Y))
	}

	elapsed := max(0, snap.LevelElapsed)
	g.EnemyGenerator.SetLastSpawn(min(snap.Spawns.LastEnemy, elapsed))
	g.PowerUpGenerator.SetLastSpawn(min(snap.Spawns.LastPowerUp, elapsed))

	g.Score = max(0, snap.Score)
	g.Shop.Spent = utils.ClampInt(snap.Spent, 0, g.Score)
	g.Defeated = max(0, snap.Defeated)
	if snap.RunID != "" {
		g.RunID = snap.RunID
	}
	g.ProgressionSystem.StartLevel(snap.Level, now-elapsed)
}

// SlotStatus reports which save slots are occupied.
func (g *Game) SlotStatus() map[int]bool {
	if g.store == nil {
		return map[int]bool{}
	}
	return g.store.SlotStatus()
}
