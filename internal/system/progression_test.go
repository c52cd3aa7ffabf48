package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/event"
)

func TestLevelDurations(t *testing.T) {
	lib := testLibrary(t)
	want := []float64{30, 40, 45, 50, 55, 60, 60, 60}
	for i, d := range want {
		assert.Equal(t, d, LevelDuration(lib, i+1), "level %d", i+1)
	}
	assert.Equal(t, 60.0, LevelDuration(lib, 20))
}

func TestLevelFlowThroughIntermission(t *testing.T) {
	lib := testLibrary(t)
	d, rec := newRecordingDispatcher()
	s := NewProgressionSystem(lib, d, discard)

	s.Update(29.9, 3, 0)
	assert.Equal(t, component.PhasePlaying, s.Phase)
	assert.InDelta(t, 0.1, s.Remaining(29.9), 1e-9)

	s.Update(30, 3, 40)
	assert.Equal(t, component.PhaseIntermission, s.Phase)
	assert.Equal(t, 1, rec.count(event.LevelCompleted))

	s.Update(100, 3, 40)
	assert.Equal(t, component.PhaseIntermission, s.Phase, "intermission waits for Continue")

	require.NoError(t, s.Continue(30))
	assert.Equal(t, 2, s.Level)
	assert.Equal(t, component.PhasePlaying, s.Phase)
	assert.Equal(t, 40.0, s.Remaining(30))
}

func TestContinueOutsideIntermission(t *testing.T) {
	s := NewProgressionSystem(testLibrary(t), event.NewDispatcher(), discard)
	assert.ErrorIs(t, s.Continue(0), ErrNotInIntermission)
	assert.Equal(t, 1, s.Level)
}

func TestGameOverWinsOverLevelEnd(t *testing.T) {
	d, rec := newRecordingDispatcher()
	s := NewProgressionSystem(testLibrary(t), d, discard)

	s.Update(30, 0, 10)
	assert.Equal(t, component.PhaseGameOver, s.Phase)
	assert.Equal(t, 1, rec.count(event.GameOver))
	assert.Zero(t, rec.count(event.LevelCompleted))

	s.Update(31, 0, 10)
	assert.Equal(t, 1, rec.count(event.GameOver), "terminal phase is sticky")
}

func TestLastLevelCompletesGame(t *testing.T) {
	lib := testLibrary(t)
	d, rec := newRecordingDispatcher()
	s := NewProgressionSystem(lib, d, discard)
	s.StartLevel(lib.LevelCount(), 100)

	s.Update(159.9, 1, 0)
	assert.Equal(t, component.PhasePlaying, s.Phase)
	s.Update(160, 1, 0)
	assert.Equal(t, component.PhaseCompleted, s.Phase)
	assert.True(t, s.Phase.Terminal())
	assert.Equal(t, 1, rec.count(event.GameCompleted))
}

func TestTogglePause(t *testing.T) {
	s := NewProgressionSystem(testLibrary(t), event.NewDispatcher(), discard)

	s.TogglePause()
	assert.Equal(t, component.PhasePaused, s.Phase)
	s.Update(1000, 0, 0)
	assert.Equal(t, component.PhasePaused, s.Phase, "paused game does not progress")
	s.TogglePause()
	assert.Equal(t, component.PhasePlaying, s.Phase)

	s.Phase = component.PhaseIntermission
	s.TogglePause()
	assert.Equal(t, component.PhaseIntermission, s.Phase)
}
