package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrInvalidSlot is returned for slot numbers outside [1, slots].
var ErrInvalidSlot = errors.New("invalid save slot")

// FileStore keeps one JSON file per slot: <dir>/save_slot_N.json.
type FileStore struct {
	dir    string
	slots  int
	logger *slog.Logger
}

func NewFileStore(dir string, slots int, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FileStore{dir: dir, slots: slots, logger: logger.With("component", "persistence")}, nil
}

func (s *FileStore) path(slot int) string {
	return filepath.Join(s.dir, fmt.Sprintf("save_slot_%d.json", slot))
}

func (s *FileStore) checkSlot(slot int) error {
	if slot < 1 || slot > s.slots {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	return nil
}

// Write stores snap in slot, replacing the file atomically.
func (s *FileStore) Write(slot int, snap Snapshot) error {
	if err := s.checkSlot(slot); err != nil {
		return err
	}
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, "save_slot_*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // после успешного Rename файла уже нет

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(slot)); err != nil {
		return fmt.Errorf("failed to replace slot %d: %w", slot, err)
	}
	return nil
}

// Read loads the snapshot stored in slot.
func (s *FileStore) Read(slot int) (Snapshot, error) {
	var snap Snapshot
	if err := s.checkSlot(slot); err != nil {
		return snap, err
	}
	data, err := os.ReadFile(s.path(slot))
	if err != nil {
		return snap, fmt.Errorf("failed to read slot %d: %w", slot, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("failed to unmarshal slot %d: %w", slot, err)
	}
	return snap, nil
}

// SaveState implements interfaces.Persistence.
func (s *FileStore) SaveState(slot int, snap Snapshot) bool {
	if err := s.Write(slot, snap); err != nil {
		s.logger.Error("save failed", "slot", slot, "error", err)
		return false
	}
	s.logger.Info("game saved", "slot", slot, "level", snap.Level, "score", snap.Score)
	return true
}

// LoadState implements interfaces.Persistence.
func (s *FileStore) LoadState(slot int) (Snapshot, bool) {
	snap, err := s.Read(slot)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Warn("no saved game in slot", "slot", slot)
		return Snapshot{}, false
	case err != nil:
		s.logger.Error("load failed", "slot", slot, "error", err)
		return Snapshot{}, false
	}
	s.logger.Info("game loaded", "slot", slot, "level", snap.Level)
	return snap, true
}

// SlotStatus reports which slots hold a save file.
func (s *FileStore) SlotStatus() map[int]bool {
	status := make(map[int]bool, s.slots)
	for i := 1; i <= s.slots; i++ {
		_, err := os.Stat(s.path(i))
		status[i] = err == nil
	}
	s.logger.Debug("slot status", "slots", status)
	return status
}
