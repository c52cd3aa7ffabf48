// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект ещё активен
	Duration float64 // Общая продолжительность эффекта
}

// Start (re)starts the flash.
func (f *DamageFlash) Start(duration float64) {
	f.Timer = duration
	f.Duration = duration
}

// Tick decays the flash by dt.
func (f *DamageFlash) Tick(dt float64) {
	if f.Timer > 0 {
		f.Timer -= dt
		if f.Timer < 0 {
			f.Timer = 0
		}
	}
}

func (f DamageFlash) Active() bool { return f.Timer > 0 }
