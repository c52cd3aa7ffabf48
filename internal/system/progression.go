// internal/system/progression.go
package system

import (
	"fmt"
	"log/slog"
	"math"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/event"
)

// LevelDuration returns how long level n lasts: min(30 + 5n, 60), level 1 is 30.
func LevelDuration(lib *defs.Library, n int) float64 {
	if n >= 1 && n <= len(lib.Levels) && lib.Levels[n-1].Duration > 0 {
		return lib.Levels[n-1].Duration
	}
	if n <= 1 {
		return config.FirstLevelDuration
	}
	return math.Min(config.FirstLevelDuration+config.LevelDurationStep*float64(n), config.MaxLevelDuration)
}

// ProgressionSystem ведёт уровень, таймер уровня и фазу игры.
type ProgressionSystem struct {
	lib        *defs.Library
	dispatcher *event.Dispatcher
	logger     *slog.Logger

	Phase      component.GamePhase
	Level      int
	LevelStart float64 // время симуляции начала уровня
	paused     component.GamePhase
}

func NewProgressionSystem(lib *defs.Library, dispatcher *event.Dispatcher, logger *slog.Logger) *ProgressionSystem {
	return &ProgressionSystem{
		lib:        lib,
		dispatcher: dispatcher,
		logger:     logger.With("component", "progression"),
		Phase:      component.PhasePlaying,
		Level:      1,
	}
}

func (s *ProgressionSystem) Duration() float64 { return LevelDuration(s.lib, s.Level) }

func (s *ProgressionSystem) Elapsed(now float64) float64 { return now - s.LevelStart }

func (s *ProgressionSystem) Remaining(now float64) float64 {
	return max(0, s.Duration()-s.Elapsed(now))
}

// Update decides phase transitions after a tick has been resolved.
// Game over takes priority over level completion in the same tick.
func (s *ProgressionSystem) Update(now float64, lives int, score int) {
	if s.Phase != component.PhasePlaying {
		return
	}
	if lives <= 0 {
		s.Phase = component.PhaseGameOver
		s.logger.Info("game over", "level", s.Level, "score", score)
		s.dispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.LevelData{Level: s.Level, Score: score}})
		return
	}
	if s.Elapsed(now) < s.Duration() {
		return
	}
	if s.Level >= s.lib.LevelCount() {
		s.Phase = component.PhaseCompleted
		s.logger.Info("all levels completed", "score", score)
		s.dispatcher.Dispatch(event.Event{Type: event.GameCompleted, Data: event.LevelData{Level: s.Level, Score: score}})
		return
	}
	s.Phase = component.PhaseIntermission
	s.logger.Info("level completed", "level", s.Level, "score", score)
	s.dispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{Level: s.Level, Score: score}})
}

// Continue leaves the intermission and starts the next level at time now.
func (s *ProgressionSystem) Continue(now float64) error {
	if s.Phase != component.PhaseIntermission {
		return fmt.Errorf("%w: phase is %s", ErrNotInIntermission, s.Phase)
	}
	s.StartLevel(s.Level+1, now)
	return nil
}

// StartLevel jumps to level n. Used by Continue and when loading a save.
func (s *ProgressionSystem) StartLevel(n int, start float64) {
	s.Level = n
	s.LevelStart = start
	s.Phase = component.PhasePlaying
	s.logger.Info("level started", "level", n, "duration", s.Duration())
	s.dispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: event.LevelData{Level: n}})
}

// TogglePause switches between Playing and Paused. Other phases are left alone.
func (s *ProgressionSystem) TogglePause() {
	switch s.Phase {
	case component.PhasePlaying:
		s.paused = s.Phase
		s.Phase = component.PhasePaused
	case component.PhasePaused:
		s.Phase = s.paused
	}
}
