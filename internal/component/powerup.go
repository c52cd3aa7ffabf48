// internal/component/powerup.go
package component

import (
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/types"
)

// PowerUp is a descending pickup. X, Y is its centre.
type PowerUp struct {
	ID    types.EntityID
	Type  defs.PowerUpType
	X, Y  float64
	Speed float64
	Size  float64
}

func (p *PowerUp) Bounds() Rect {
	return CenteredRect(p.X, p.Y, p.Size)
}
