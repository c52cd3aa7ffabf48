// internal/system/damage.go
package system

import "go-arcade-shooter/internal/component"

// ApplyDamage наносит урон игроку. Один заряд щита поглощает весь удар
// целиком; иначе теряются жизни, но не ниже нуля. Возвращает true, если удар
// поглощён щитом.
func ApplyDamage(p *component.Player, amount int) bool {
	if amount <= 0 {
		return false
	}
	if p.ShieldCharges > 0 {
		p.ShieldCharges--
		if p.ShieldCharges == 0 {
			p.HasShield = false
		}
		return true
	}
	p.Lives -= amount
	if p.Lives < 0 {
		p.Lives = 0
	}
	return false
}
