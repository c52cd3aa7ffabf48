package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/types"
)

func TestMovePlayerStaysOnField(t *testing.T) {
	lib := testLibrary(t)
	m := NewMovementSystem()
	p := testPlayer(lib, defs.CharacterKava)

	p.MoveIntent = -1
	p.X = 2
	m.MovePlayer(&p)
	assert.Equal(t, 0.0, p.X)

	p.MoveIntent = 1
	p.X = config.ScreenWidth - p.Size - 1
	m.MovePlayer(&p)
	assert.Equal(t, config.ScreenWidth-p.Size, p.X)

	p.X = 500
	m.MovePlayer(&p)
	assert.Equal(t, 505.0, p.X)
}

func TestZigzagFlipsAtEdges(t *testing.T) {
	m := NewMovementSystem()
	w := entity.NewWorld()
	e := testEnemy(1, config.ScreenWidth-96-1, 0, 1)
	e.Movement = defs.MoveZigzag
	e.ZigzagFactor = 1
	w.Enemies = []component.Enemy{e}

	m.MoveEnemies(w, 0.016)
	got := w.Enemies[0]
	assert.Equal(t, -1.0, got.ZigzagDir)
	assert.Equal(t, config.ScreenWidth-96.0, got.X)
	assert.Equal(t, 2.0, got.Y)

	m.MoveEnemies(w, 0.016)
	assert.Equal(t, config.ScreenWidth-98.0, w.Enemies[0].X)
}

func TestStraightEnemiesAndPowerUpsDescend(t *testing.T) {
	m := NewMovementSystem()
	w := entity.NewWorld()
	w.Enemies = []component.Enemy{testEnemy(1, 10, 10, 1)}
	w.PowerUps = []component.PowerUp{NewPowerUp(2, defs.PowerUpHealth, 50, 50)}

	m.MoveEnemies(w, 0.016)
	m.MovePowerUps(w)

	assert.Equal(t, 10.0, w.Enemies[0].X)
	assert.Equal(t, 12.0, w.Enemies[0].Y)
	assert.Equal(t, 52.0, w.PowerUps[0].Y)
}

func TestEnemyFireRespectsDelayAndAims(t *testing.T) {
	lib := testLibrary(t)
	w := entity.NewWorld()
	fire := NewEnemyFireSystem(w, discard)
	p := testPlayer(lib, defs.CharacterKava)

	gunner := testEnemy(w.NewEntity(), p.X+16, 100, 2)
	gunner.CanShoot = true
	gunner.ShootDelay = 2
	gunner.LastShot = 0
	w.Enemies = []component.Enemy{gunner, testEnemy(w.NewEntity(), 10, 10, 1)}

	fire.Update(2, w, &p)
	assert.Empty(t, w.EnemyProjectiles, "delay is strict")

	fire.Update(2.01, w, &p)
	require.Len(t, w.EnemyProjectiles, 1)
	shot := w.EnemyProjectiles[0]
	assert.Equal(t, types.SideEnemy, shot.Side)
	assert.Equal(t, config.EnemyProjSpeed, shot.Speed)
	assert.Equal(t, config.EnemyProjectile, shot.Size)
	assert.InDelta(t, 0, shot.DirX, 1e-9, "gunner is centred over the player")
	assert.InDelta(t, 1, shot.DirY, 1e-9)

	fire.Update(3, w, &p)
	assert.Len(t, w.EnemyProjectiles, 1)
}

func TestPlayerShootingCooldownAndSpread(t *testing.T) {
	lib := testLibrary(t)
	w := entity.NewWorld()
	d, rec := newRecordingDispatcher()
	ps := NewPlayerSystem(lib, w, d, discard)
	p := testPlayer(lib, defs.CharacterKava)
	c := p.Center()

	assert.True(t, ps.Shoot(&p, 0, c.X, 0))
	assert.False(t, ps.Shoot(&p, 0.6, c.X, 0), "cooldown is strict")
	assert.True(t, ps.Shoot(&p, 0.61, c.X, 0))
	assert.Len(t, p.Projectiles, 2)
	assert.Equal(t, 2, rec.count(event.ShotFired))

	p.Projectiles = nil
	p.Attack = defs.AttackSpread
	p.ProjectileSpeedBonus = 2
	require.True(t, ps.Shoot(&p, 5, c.X, 0))
	require.Len(t, p.Projectiles, 3)
	assert.InDelta(t, -p.Projectiles[0].DirX, p.Projectiles[2].DirX, 1e-9, "fan is symmetric")
	assert.InDelta(t, 0, p.Projectiles[1].DirX, 1e-9)
	for _, pr := range p.Projectiles {
		assert.Equal(t, 10.0, pr.Speed)
		assert.Equal(t, types.SidePlayer, pr.Side)
		assert.Equal(t, p.Y, pr.OriginY)
	}
}
