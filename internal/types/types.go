// internal/types/types.go
package types

// EntityID это идентификатор сущности в мире.
// Ноль никогда не выдаётся и означает "нет сущности".
type EntityID uint64

// Side определяет, кому принадлежит снаряд.
type Side uint8

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "player"
}
