package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/interfaces/mocks"
	"go-arcade-shooter/internal/utils"
)

func TestEnemyGeneratorCadence(t *testing.T) {
	lib := testLibrary(t)
	g := NewEnemyGenerator(lib, utils.NewPRNGService(7), entity.NewWorld(), discard)

	assert.Empty(t, g.Generate(0, 1.99), "before the interval nothing spawns")
	assert.Len(t, g.Generate(0, 2.0), 1, "at the interval exactly one spawns")
	assert.Empty(t, g.Generate(0, 2.0), "second call in the same tick must not double-spawn")
	assert.Empty(t, g.Generate(0, 3.9))
	assert.Len(t, g.Generate(0, 4.5), 1)

	g.Reset()
	assert.Empty(t, g.Generate(0, 1))
	assert.Len(t, g.Generate(0, 2), 1)
}

func TestEnemyGeneratorBuildsFromDefinitions(t *testing.T) {
	lib := testLibrary(t)
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRNG(ctrl)

	gomock.InOrder(
		rng.EXPECT().Intn(len(lib.EnemyTypes)).Return(1), // Tough
		rng.EXPECT().Float64().Return(0.95),              // ELITE
		rng.EXPECT().Float64().Return(0.5),               // x
	)

	g := NewEnemyGenerator(lib, rng, entity.NewWorld(), discard)
	spawned := g.Generate(0, 2)
	require.Len(t, spawned, 1)

	e := spawned[0]
	assert.Equal(t, defs.EnemyTough, e.Type)
	assert.Equal(t, defs.RarityElite, e.Rarity)
	assert.Equal(t, 9, e.Health.Max)
	assert.InDelta(t, 1.8, e.Speed, 1e-9)
	assert.Equal(t, 35, e.ScoreValue)
	assert.InDelta(t, 0.5*(config.ScreenWidth-128), e.X, 1e-9)
	assert.Equal(t, 0.0, e.Y)
	assert.NotZero(t, e.ID)
}

func TestEnemyGeneratorKeepsEnemiesInsideField(t *testing.T) {
	lib := testLibrary(t)
	g := NewEnemyGenerator(lib, utils.NewPRNGService(99), entity.NewWorld(), discard)
	for i := 1; i <= 200; i++ {
		for _, e := range g.Generate(0, float64(i)*2) {
			assert.GreaterOrEqual(t, e.X, 0.0)
			assert.LessOrEqual(t, e.X+e.Size, float64(config.ScreenWidth))
		}
	}
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, 4.0, Difficulty(4, 0, 0))
	assert.Equal(t, 4.0, Difficulty(4, 4, 59))
	assert.Equal(t, 8.0, Difficulty(4, 5, 0))
	assert.Equal(t, 16.0, Difficulty(4, 10, 0))
	assert.Equal(t, 8.0, Difficulty(4, 0, 120))
	assert.False(t, Difficulty(4, 1_000_000, 0) > 1e12, "exponent is capped")
}

func TestAdaptiveInterval(t *testing.T) {
	lib := testLibrary(t)
	g := NewEnemyGenerator(lib, utils.NewPRNGService(1), entity.NewWorld(), discard)
	assert.Equal(t, config.SpawnInterval, g.CurrentInterval())

	g.Adaptive = true
	g.Generate(5, 0) // D = 8
	assert.InDelta(t, 1.0, g.CurrentInterval(), 1e-9)
	assert.Equal(t, 8.0, g.Difficulty())

	g.Generate(100, 0)
	assert.Equal(t, config.MinSpawnInterval, g.CurrentInterval())

	g.Adaptive = false
	assert.Equal(t, config.SpawnInterval, g.CurrentInterval())
}

func TestPowerUpGeneratorCadence(t *testing.T) {
	g := NewPowerUpGenerator(utils.NewPRNGService(3), entity.NewWorld(), discard)

	assert.Empty(t, g.Generate(9.9))
	spawned := g.Generate(10)
	require.Len(t, spawned, 1)
	p := spawned[0]
	assert.Contains(t, defs.PowerUpTypes, p.Type)
	assert.Less(t, p.Y, 0.0, "periodic power-ups start above the field")
	assert.GreaterOrEqual(t, p.Bounds().X, 0.0)
	assert.LessOrEqual(t, p.Bounds().Right(), float64(config.ScreenWidth))
	assert.Empty(t, g.Generate(15))
	assert.Len(t, g.Generate(20), 1)
}

func TestPowerUpGeneratorRestoredTimer(t *testing.T) {
	g := NewPowerUpGenerator(utils.NewPRNGService(3), entity.NewWorld(), discard)
	g.SetLastSpawn(12)

	assert.Equal(t, 12.0, g.LastSpawn())
	assert.Empty(t, g.Generate(21.9))
	assert.Len(t, g.Generate(22), 1)

	g.SetLastSpawn(-4)
	assert.Zero(t, g.LastSpawn())
}
