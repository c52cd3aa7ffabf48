package system

import (
	"log/slog"

	"go-arcade-shooter/internal/component"
	"go-arcade-shooter/internal/config"
	"go-arcade-shooter/internal/defs"
	"go-arcade-shooter/internal/entity"
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/interfaces"
)

// Effects summarises what one resolution pass changed.
type Effects struct {
	ScoreDelta      int
	EnemiesDefeated int
	PowerUpsSpawned int
	PlayerHits      int // включая удары, поглощённые щитом
	Collected       []defs.PowerUpType
}

// CombatSystem разрешает столкновения и урон за один тик.
type CombatSystem struct {
	rng        interfaces.RNG
	ids        IDSource
	effects    *EffectSystem
	dispatcher *event.Dispatcher
	logger     *slog.Logger

	Field      component.Rect
	DropChance float64
	PierceCap  int
}

func NewCombatSystem(rng interfaces.RNG, ids IDSource, effects *EffectSystem, dispatcher *event.Dispatcher, logger *slog.Logger) *CombatSystem {
	return &CombatSystem{
		rng:        rng,
		ids:        ids,
		effects:    effects,
		dispatcher: dispatcher,
		logger:     logger.With("component", "combat"),
		Field:      component.Rect{W: config.ScreenWidth, H: config.ScreenHeight},
		DropChance: config.DropChance,
		PierceCap:  config.PiercingHitCap,
	}
}

// Resolve runs the fixed per-tick pipeline: move projectiles, player shots
// against enemies, enemy shots against the player, body contact, culling and
// pickups. Removals are marked first and filtered once at the end of each step;
// power-ups dropped this tick are appended last and cannot be picked up until
// the next one.
func (s *CombatSystem) Resolve(now float64, w *entity.World, p *component.Player) Effects {
	var fx Effects

	for i := range p.Projectiles {
		p.Projectiles[i].Advance()
	}
	for i := range w.EnemyProjectiles {
		w.EnemyProjectiles[i].Advance()
	}

	deadEnemies := make([]bool, len(w.Enemies))
	drops := s.resolvePlayerShots(w, p, deadEnemies, &fx)
	s.resolveEnemyShots(w, p, &fx)
	s.resolveContacts(w, p, deadEnemies, &fx)

	w.Enemies = filter(w.Enemies, func(i int, e *component.Enemy) bool {
		return !deadEnemies[i] && e.Y <= s.Field.Bottom()
	})
	p.Projectiles = filter(p.Projectiles, func(_ int, pr *component.Projectile) bool {
		return pr.Bounds().Intersects(s.Field)
	})
	w.EnemyProjectiles = filter(w.EnemyProjectiles, func(_ int, pr *component.Projectile) bool {
		return pr.Bounds().Intersects(s.Field)
	})
	w.PowerUps = filter(w.PowerUps, func(_ int, pu *component.PowerUp) bool {
		return pu.Bounds().Y <= s.Field.Bottom()
	})

	s.resolvePickups(now, w, p, &fx)

	w.PowerUps = append(w.PowerUps, drops...)
	fx.PowerUpsSpawned = len(drops)
	return fx
}

func (s *CombatSystem) resolvePlayerShots(w *entity.World, p *component.Player, dead []bool, fx *Effects) []component.PowerUp {
	var drops []component.PowerUp
	spent := make([]bool, len(p.Projectiles))

	for i := range p.Projectiles {
		pr := &p.Projectiles[i]
		box := pr.Bounds()
		for j := range w.Enemies {
			e := &w.Enemies[j]
			if dead[j] || !e.Health.Alive() || pr.AlreadyHit(e.ID) || !box.Intersects(e.Bounds()) {
				continue
			}
			e.Flash.Start(0.1)
			if e.Health.Damage(pr.Damage) {
				dead[j] = true
				fx.EnemiesDefeated++
				fx.ScoreDelta += e.ScoreValue
				s.logger.Debug("enemy defeated", "id", e.ID, "type", e.Type, "rarity", e.Rarity, "score", e.ScoreValue)
				s.dispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
					ID: e.ID, Type: e.Type, Rarity: e.Rarity, Score: e.ScoreValue,
				}})
				if s.rng.Float64() < s.DropChance {
					kind := defs.PowerUpTypes[s.rng.Intn(len(defs.PowerUpTypes))]
					c := e.Center()
					drops = append(drops, NewPowerUp(s.ids.NewEntity(), kind, c.X, c.Y))
				}
			}
			if pr.RecordHit(e.ID, s.PierceCap) {
				spent[i] = true
				break
			}
		}
	}

	p.Projectiles = filter(p.Projectiles, func(i int, _ *component.Projectile) bool { return !spent[i] })
	return drops
}

func (s *CombatSystem) resolveEnemyShots(w *entity.World, p *component.Player, fx *Effects) {
	box := p.Bounds()
	w.EnemyProjectiles = filter(w.EnemyProjectiles, func(_ int, pr *component.Projectile) bool {
		if !pr.Bounds().Intersects(box) {
			return true
		}
		s.damagePlayer(p, pr.Damage, fx)
		return false
	})
}

func (s *CombatSystem) resolveContacts(w *entity.World, p *component.Player, dead []bool, fx *Effects) {
	box := p.Bounds()
	for j := range w.Enemies {
		if dead[j] || !box.Intersects(w.Enemies[j].Bounds()) {
			continue
		}
		dead[j] = true
		s.damagePlayer(p, config.ContactDamage, fx)
	}
}

func (s *CombatSystem) damagePlayer(p *component.Player, amount int, fx *Effects) {
	absorbed := ApplyDamage(p, amount)
	fx.PlayerHits++
	s.logger.Debug("player hit", "absorbed", absorbed, "lives", p.Lives, "shield_charges", p.ShieldCharges)
	s.dispatcher.Dispatch(event.Event{Type: event.PlayerDamaged, Data: event.PlayerDamagedData{Absorbed: absorbed, Lives: p.Lives}})
}

func (s *CombatSystem) resolvePickups(now float64, w *entity.World, p *component.Player, fx *Effects) {
	box := p.Bounds()
	w.PowerUps = filter(w.PowerUps, func(_ int, pu *component.PowerUp) bool {
		if !pu.Bounds().Intersects(box) {
			return true
		}
		s.effects.ApplyPowerUp(p, pu.Type, now)
		fx.Collected = append(fx.Collected, pu.Type)
		s.dispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: event.PowerUpData{Type: pu.Type}})
		return false
	})
}

// filter keeps the elements for which keep returns true, reusing the backing array.
func filter[T any](items []T, keep func(i int, item *T) bool) []T {
	out := items[:0]
	for i := range items {
		if keep(i, &items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
