// internal/component/player.go
package component

import (
	"math"

	"go-arcade-shooter/internal/defs"
)

// Player хранит всё состояние персонажа игрока.
type Player struct {
	Character defs.CharacterID
	X, Y      float64 // левый верхний угол
	Size      float64
	Speed     float64
	Lives     int
	MaxLives  int
	LivesCap  int // предел MaxLives для архетипа

	// Щит: отдельный пул зарядов, HasShield только отражает его наличие.
	ShieldCharges int
	HasShield     bool
	ShieldUntil   float64

	FastShot      bool
	FastShotUntil float64

	BaseShotDelay        float64 // значение персонажа с учётом улучшений
	ShotDelay            float64 // текущее значение, может быть снижено fast_shot
	LastShot             float64
	Attack               defs.AttackType
	ProjectileSpeedBonus float64
	MoveIntent           int // -1, 0, +1

	Upgrades    map[defs.UpgradeKey]int
	Projectiles []Projectile
}

// NewPlayer places a fresh character at (x, y).
func NewPlayer(def defs.CharacterDefinition, size, x, y float64) Player {
	return Player{
		Character:     def.ID,
		X:             x,
		Y:             y,
		Size:          size,
		Speed:         def.Speed,
		Lives:         def.Lives,
		MaxLives:      def.Lives,
		LivesCap:      def.LivesCap,
		BaseShotDelay: def.ShotDelay,
		ShotDelay:     def.ShotDelay,
		LastShot:      math.Inf(-1),
		Attack:        defs.AttackNormal,
		Upgrades:      make(map[defs.UpgradeKey]int),
	}
}

func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

func (p *Player) Center() Position {
	return p.Bounds().Center()
}

// ClampLives enforces 0 <= Lives <= MaxLives <= LivesCap.
func (p *Player) ClampLives() {
	if p.LivesCap > 0 && p.MaxLives > p.LivesCap {
		p.MaxLives = p.LivesCap
	}
	if p.MaxLives < 0 {
		p.MaxLives = 0
	}
	if p.Lives > p.MaxLives {
		p.Lives = p.MaxLives
	}
	if p.Lives < 0 {
		p.Lives = 0
	}
	if p.ShieldCharges < 0 {
		p.ShieldCharges = 0
	}
}

// CanShoot reports whether the cooldown has elapsed at time now.
func (p *Player) CanShoot(now float64) bool {
	return now-p.LastShot > p.ShotDelay
}

// Clone returns a deep copy.
func (p Player) Clone() Player {
	upgrades := make(map[defs.UpgradeKey]int, len(p.Upgrades))
	for k, v := range p.Upgrades {
		upgrades[k] = v
	}
	p.Upgrades = upgrades
	projectiles := make([]Projectile, len(p.Projectiles))
	for i, pr := range p.Projectiles {
		projectiles[i] = pr.Clone()
	}
	p.Projectiles = projectiles
	return p
}
