package defs

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedMapFS(t *testing.T) fstest.MapFS {
	t.Helper()
	sub, err := fs.Sub(embedded, "data")
	require.NoError(t, err)
	out := fstest.MapFS{}
	entries, err := fs.ReadDir(sub, ".")
	require.NoError(t, err)
	for _, e := range entries {
		data, err := fs.ReadFile(sub, e.Name())
		require.NoError(t, err)
		out[e.Name()] = &fstest.MapFile{Data: data}
	}
	return out
}

func TestDefaultLibraryLoads(t *testing.T) {
	lib, err := Default(nil)
	require.NoError(t, err)

	assert.Equal(t, []EnemyType{EnemyBasic, EnemyTough, EnemyFast, EnemyGunner}, lib.EnemyTypes)
	assert.Equal(t, 8, lib.LevelCount())
	assert.Len(t, lib.Upgrades, 6)
	assert.Equal(t, []CharacterID{CharacterKava, CharacterSara, CharacterGuiral}, lib.CharacterIDs)

	kava := lib.Character(CharacterKava)
	assert.Equal(t, 5.0, kava.Speed)
	assert.Equal(t, 4, kava.Lives)
	assert.Equal(t, 0.6, kava.ShotDelay)

	spread := lib.Attack(AttackSpread)
	assert.Equal(t, 3, spread.Projectiles())
	assert.Equal(t, 1, lib.Attack(AttackNormal).Projectiles())
	assert.True(t, lib.Attack(AttackPiercing).Piercing)
	assert.Equal(t, 2, lib.Attack(AttackPiercing).Damage)
}

func TestRarityScoreValues(t *testing.T) {
	lib, err := Default(nil)
	require.NoError(t, err)

	want := map[Rarity]int{RarityNormal: 10, RarityRare: 20, RarityElite: 35, RarityLegendary: 55}
	for id, score := range want {
		assert.Equal(t, score, lib.Rarity(id).ScoreValue(10), id)
	}
}

func TestRarityTablePick(t *testing.T) {
	lib, err := Default(nil)
	require.NoError(t, err)

	tests := []struct {
		r    float64
		want Rarity
	}{
		{0, RarityNormal},
		{0.6999, RarityNormal},
		{0.70, RarityRare},
		{0.8999, RarityRare},
		{0.90, RarityElite},
		{0.9799, RarityElite},
		{0.98, RarityLegendary},
		{0.99999, RarityLegendary},
		{1.5, RarityLegendary},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, lib.RarityTable.Pick(tt.r), "r=%v", tt.r)
	}
	assert.Equal(t, RarityNormal, RarityTable{}.Pick(0.5))
}

func TestUnknownKeysFallBack(t *testing.T) {
	lib, err := Default(nil)
	require.NoError(t, err)

	assert.Equal(t, EnemyBasic, lib.Enemy("Dragon").ID)
	assert.Equal(t, RarityNormal, lib.Rarity("MYTHIC").ID)
	assert.Equal(t, AttackNormal, lib.Attack("laser").ID)
	assert.Equal(t, CharacterKava, lib.Character("Nobody").ID)
	assert.Equal(t, PowerUpHealth, lib.PowerUp("bomb").ID)
	_, ok := lib.Upgrade("teleport")
	assert.False(t, ok)
}

func TestLoadRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"weights do not sum to one", "rarities.json", `[{"id":"NORMAL","health_multiplier":1,"speed_multiplier":1,"score_multiplier":1,"weight":0.5}]`},
		{"missing fallback enemy", "enemies.json", `[{"id":"Tough","health":3,"speed":1.5,"size":128,"movement_pattern":"straight"}]`},
		{"zero enemy health", "enemies.json", `[{"id":"Basic","health":0,"speed":2,"size":96,"movement_pattern":"straight"}]`},
		{"unknown movement", "enemies.json", `[{"id":"Basic","health":1,"speed":2,"size":96,"movement_pattern":"spiral"}]`},
		{"free upgrade", "upgrades.json", `[{"key":"player_speed","cost":0,"effect":{"speed":1}}]`},
		{"lives above cap", "characters.json", `[{"id":"Kava","speed":5,"lives":7,"lives_cap":6,"shot_delay":0.6}]`},
		{"missing power-up", "powerups.json", `[{"id":"health"}]`},
		{"gap in levels", "levels.json", `[{"number":1},{"number":3}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := embeddedMapFS(t)
			fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.data)}

			_, err := Load(fsys, nil)
			assert.ErrorIs(t, err, ErrInvalidTable)
		})
	}
}

func TestLoadReportsMissingAndMalformedFiles(t *testing.T) {
	fsys := embeddedMapFS(t)
	delete(fsys, "attacks.json")
	_, err := Load(fsys, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidTable)

	fsys = embeddedMapFS(t)
	fsys["levels.json"] = &fstest.MapFile{Data: []byte("{")}
	_, err = Load(fsys, nil)
	assert.ErrorContains(t, err, "levels.json")
}
