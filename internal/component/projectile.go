// internal/component/projectile.go
package component

import (
	"math"

	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/types"
)

// Projectile представляет летящий снаряд. X, Y - центр.
type Projectile struct {
	ID               types.EntityID
	Side             types.Side
	Attack           defs.AttackType
	OriginX, OriginY float64
	X, Y             float64
	DirX, DirY       float64 // единичный вектор, фиксируется при создании
	Speed            float64
	Size             float64
	Damage           int
	Piercing         bool
	Hits             int
	HitIDs           []types.EntityID
}

// NewProjectile aims a projectile from (ox, oy) at (tx, ty).
// A zero-length aim fires straight ahead for the owner's side.
func NewProjectile(id types.EntityID, side types.Side, ox, oy, tx, ty, speed, size float64, damage int, piercing bool) Projectile {
	dx, dy := tx-ox, ty-oy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dx, dy, dist = 0, -1, 1
		if side == types.SideEnemy {
			dy = 1
		}
	}
	return Projectile{
		ID:       id,
		Side:     side,
		OriginX:  ox,
		OriginY:  oy,
		X:        ox,
		Y:        oy,
		DirX:     dx / dist,
		DirY:     dy / dist,
		Speed:    speed,
		Size:     size,
		Damage:   damage,
		Piercing: piercing,
	}
}

// Rotate turns the direction by angle radians.
func (p *Projectile) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	p.DirX, p.DirY = p.DirX*cos-p.DirY*sin, p.DirX*sin+p.DirY*cos
}

// Advance moves the projectile one tick along its direction.
func (p *Projectile) Advance() {
	p.X += p.DirX * p.Speed
	p.Y += p.DirY * p.Speed
}

func (p *Projectile) Bounds() Rect {
	return CenteredRect(p.X, p.Y, p.Size)
}

// AlreadyHit reports whether this projectile already damaged the enemy.
func (p *Projectile) AlreadyHit(id types.EntityID) bool {
	for _, hit := range p.HitIDs {
		if hit == id {
			return true
		}
	}
	return false
}

// RecordHit registers a hit and reports whether the projectile is spent.
func (p *Projectile) RecordHit(id types.EntityID, pierceCap int) bool {
	p.HitIDs = append(p.HitIDs, id)
	if !p.Piercing {
		return true
	}
	p.Hits++
	return p.Hits >= pierceCap
}

// Clone returns a copy that does not share the hit list.
func (p Projectile) Clone() Projectile {
	if p.HitIDs != nil {
		p.HitIDs = append([]types.EntityID(nil), p.HitIDs...)
	}
	return p
}
