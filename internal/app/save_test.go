package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/interfaces/mocks"
	"go-arcade-shooter/internal/persistence"
	"go-arcade-shooter/internal/system"
	"go-arcade-shooter/internal/utils"
)

func newFileStore(t *testing.T) *persistence.FileStore {
	t.Helper()
	store, err := persistence.NewFileStore(t.TempDir(), config.SaveSlots, discard)
	require.NoError(t, err)
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newFileStore(t)
	lib := testLibrary(t)
	clock := utils.NewManualClock(0)
	src := NewGame(lib, Options{Character: defs.CharacterSara, Clock: clock, Store: store})
	step(src, clock, 10)

	src.ProgressionSystem.StartLevel(3, src.Now()-5)
	src.Score = 250
	src.Shop.Spent = 100
	src.Defeated = 7
	require.NoError(t, system.ApplyUpgrade(lib, &src.Player, defs.UpgradePlayerLives))
	src.Player.Lives = 2
	src.Player.X = 400
	src.EffectSystem.ApplyPowerUp(&src.Player, defs.PowerUpShield, src.Now())

	tough := component.NewEnemy(src.World.NewEntity(), lib.Enemy(defs.EnemyTough), lib.Rarity(defs.RarityRare),
		config.ScoreBase, 300, 200, src.Now())
	tough.Health.Current = 4
	src.World.Enemies = append(src.World.Enemies, tough)
	src.World.PowerUps = append(src.World.PowerUps,
		system.NewPowerUp(src.World.NewEntity(), defs.PowerUpFastShot, 500, 300))

	require.True(t, src.Save(1))
	assert.Equal(t, map[int]bool{1: true, 2: false, 3: false}, src.SlotStatus())

	dst, _ := newTestGame(t, nil, store)
	require.True(t, dst.Load(1))

	assert.Equal(t, component.PhasePlaying, dst.Phase())
	assert.Equal(t, src.RunID, dst.RunID)
	assert.Equal(t, 3, dst.ProgressionSystem.Level)
	assert.InDelta(t, 5, dst.ProgressionSystem.Elapsed(dst.Now()), 1e-9)
	assert.Equal(t, 250, dst.Score)
	assert.Equal(t, 150, dst.AvailablePoints())
	assert.Equal(t, 7, dst.Defeated)

	p := dst.Player
	assert.Equal(t, defs.CharacterSara, p.Character)
	assert.Equal(t, 2, p.Lives)
	assert.Equal(t, 3, p.MaxLives)
	assert.Equal(t, 1, p.Upgrades[defs.UpgradePlayerLives])
	assert.InDelta(t, 400, p.X, 1e-9)
	assert.Equal(t, 1, p.ShieldCharges)
	assert.True(t, p.HasShield)
	assert.InDelta(t, config.ShieldDuration, p.ShieldUntil-dst.Now(), 1e-9)

	require.Len(t, dst.World.Enemies, 1)
	e := dst.World.Enemies[0]
	assert.Equal(t, defs.EnemyTough, e.Type)
	assert.Equal(t, defs.RarityRare, e.Rarity)
	assert.Equal(t, 4, e.Health.Current)
	assert.Equal(t, 6, e.Health.Max)
	assert.Equal(t, 20, e.ScoreValue)
	assert.InDelta(t, 300, e.X, 1e-9)
	assert.InDelta(t, 200, e.Y, 1e-9)

	require.Len(t, dst.World.PowerUps, 1)
	assert.Equal(t, defs.PowerUpFastShot, dst.World.PowerUps[0].Type)
	assert.InDelta(t, 500, dst.World.PowerUps[0].X, 1e-9)
}

func TestLoadEmptySlotKeepsRun(t *testing.T) {
	g, clock := newTestGame(t, nil, newFileStore(t))
	step(g, clock, 3)
	g.Score = 30
	runID := g.RunID

	assert.False(t, g.Load(2))
	assert.False(t, g.Load(7))
	assert.Equal(t, 30, g.Score)
	assert.Equal(t, runID, g.RunID)
}

func TestSaveRefusedForFinishedRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPersistence(ctrl)

	for _, phase := range []component.GamePhase{component.PhaseGameOver, component.PhaseCompleted} {
		g, _ := newTestGame(t, nil, store)
		g.ProgressionSystem.Phase = phase
		assert.False(t, g.Save(1), phase.String())
	}
}

func TestSaveLoadKeepsSpawnTimers(t *testing.T) {
	g, clock := newTestGame(t, nil, newFileStore(t))
	g.ProgressionSystem.StartLevel(1, g.Now()-15)
	g.EnemyGenerator.SetLastSpawn(14.5)
	g.PowerUpGenerator.SetLastSpawn(10)

	for i := 0; i < 5; i++ {
		require.True(t, g.Save(1))
		require.True(t, g.Load(1))
		step(g, clock, 1)

		assert.Empty(t, g.World.Enemies, "cycle %d", i)
		assert.Empty(t, g.World.PowerUps, "cycle %d", i)
	}
	assert.InDelta(t, 15.25, g.ProgressionSystem.Elapsed(g.Now()), 1e-9)
	assert.InDelta(t, 14.5, g.EnemyGenerator.LastSpawn(), 1e-9)
	assert.InDelta(t, 10, g.PowerUpGenerator.LastSpawn(), 1e-9)
}

func TestSaveWritesCurrentState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPersistence(ctrl)

	var saved persistence.Snapshot
	store.EXPECT().SaveState(2, gomock.Any()).DoAndReturn(func(_ int, snap persistence.Snapshot) bool {
		saved = snap
		return true
	})

	g, clock := newTestGame(t, nil, store)
	step(g, clock, 2)
	g.Score = 70
	g.EffectSystem.ApplyPowerUp(&g.Player, defs.PowerUpFastShot, g.Now())

	require.True(t, g.Save(2))
	assert.Equal(t, config.SnapshotVersion, saved.Version)
	assert.Equal(t, g.RunID, saved.RunID)
	assert.Equal(t, defs.CharacterKava, saved.Character)
	assert.Equal(t, 70, saved.Score)
	assert.Equal(t, 1, saved.Level)
	assert.InDelta(t, config.FastShotDuration, saved.Player.FastShotRemaining, 1e-9)
	assert.Zero(t, saved.Player.ShieldRemaining)
}

func TestLoadRejectsIncompatibleSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPersistence(ctrl)
	store.EXPECT().LoadState(1).Return(persistence.Snapshot{Version: config.SnapshotVersion + 1, Level: 1}, true)
	store.EXPECT().LoadState(2).Return(persistence.Snapshot{Version: config.SnapshotVersion, Level: 99}, true)

	g, _ := newTestGame(t, nil, store)
	g.Score = 5
	assert.False(t, g.Load(1))
	assert.False(t, g.Load(2))
	assert.Equal(t, 5, g.Score)
	assert.Equal(t, 1, g.ProgressionSystem.Level)
}

func TestSaveWithoutStore(t *testing.T) {
	g, _ := newTestGame(t, nil, nil)
	assert.False(t, g.Save(1))
	assert.False(t, g.Load(1))
	assert.Empty(t, g.SlotStatus())
}
