package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	rec := ListenerFunc(func(e Event) { got = append(got, e.Type) })

	d.SubscribeAll(rec, EnemyKilled, GameOver)
	d.Dispatch(Event{Type: ShotFired})
	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{Score: 10}})
	d.Dispatch(Event{Type: GameOver})

	assert.Equal(t, []EventType{EnemyKilled, GameOver}, got)
}

func TestDispatchPreservesSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Subscribe(LevelCompleted, ListenerFunc(func(Event) { order = append(order, 1) }))
	d.Subscribe(LevelCompleted, ListenerFunc(func(Event) { order = append(order, 2) }))

	d.Dispatch(Event{Type: LevelCompleted, Data: LevelData{Level: 1}})
	assert.Equal(t, []int{1, 2}, order)
}
