package component

// GamePhase это фаза игры
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseIntermission
	PhasePaused
	PhaseCompleted
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseIntermission:
		return "intermission"
	case PhasePaused:
		return "paused"
	case PhaseCompleted:
		return "completed"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Terminal reports whether the run has ended.
func (p GamePhase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseGameOver
}

// MarshalText encodes the phase by name in JSON snapshots.
func (p GamePhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
