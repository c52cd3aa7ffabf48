package interfaces

import "go-arcade-shooter/internal/persistence"

//go:generate go tool mockgen -destination=./mocks/game_mock.go -package=mocks . RNG,AudioPlayer,Persistence

// Clock отдаёт монотонное время в секундах.
type Clock interface {
	Now() float64
}

// RNG это источник случайных чисел для генерации врагов и выпадения бонусов.
type RNG interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// AudioPlayer проигрывает звуки. Вызовы не блокируют и не возвращают ошибок.
type AudioPlayer interface {
	PlaySound(name string)
	PlayMusic(path string)
}

// Persistence хранит сохранения по слотам.
type Persistence interface {
	SaveState(slot int, snap persistence.Snapshot) bool
	LoadState(slot int) (persistence.Snapshot, bool)
	SlotStatus() map[int]bool
}
