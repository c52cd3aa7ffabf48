package system

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/types"
)

var discard = slog.New(slog.DiscardHandler)

func testLibrary(t testing.TB) *defs.Library {
	t.Helper()
	lib, err := defs.Default(discard)
	require.NoError(t, err)
	return lib
}

func testPlayer(lib *defs.Library, id defs.CharacterID) component.Player {
	return component.NewPlayer(lib.Character(id), 128, 896, 824)
}

func testEnemy(id types.EntityID, x, y float64, health int) component.Enemy {
	return component.Enemy{
		ID:         id,
		Type:       defs.EnemyBasic,
		Rarity:     defs.RarityNormal,
		X:          x,
		Y:          y,
		Size:       96,
		Speed:      2,
		Health:     component.NewHealth(health),
		ScoreValue: 10,
		Movement:   defs.MoveStraight,
		ZigzagDir:  1,
	}
}

// upward shot whose centre lands on (x, y) after one Advance.
func testShot(id types.EntityID, x, y float64, damage int, piercing bool) component.Projectile {
	return component.NewProjectile(id, types.SidePlayer, x, y+10, x, y-100, 10, 32, damage, piercing)
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newRecordingDispatcher() (*event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, event.All...)
	return d, r
}

func newDispatcherNoop() *event.Dispatcher { return event.NewDispatcher() }
