package audio

import (
	"go-arcade-shooter/internal/event"
	"go-arcade-shooter/internal/interfaces"
)

// Listener translates simulation events into sound effects.
type Listener struct {
	player interfaces.AudioPlayer
}

func NewListener(player interfaces.AudioPlayer) *Listener {
	return &Listener{player: player}
}

// Subscribe registers the listener for every event it can voice.
func (l *Listener) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(l, event.ShotFired, event.EnemyKilled, event.PlayerDamaged,
		event.PowerUpCollected, event.LevelCompleted, event.GameOver)
}

func (l *Listener) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		l.player.PlaySound(SoundShoot)
	case event.EnemyKilled:
		l.player.PlaySound(SoundExplosion)
	case event.PlayerDamaged:
		l.player.PlaySound(SoundHit)
	case event.PowerUpCollected:
		l.player.PlaySound(SoundPowerUp)
	case event.LevelCompleted:
		l.player.PlaySound(SoundLevelUp)
	case event.GameOver:
		l.player.PlaySound(SoundGameOver)
	}
}
