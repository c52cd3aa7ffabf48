package component

// Health хранит здоровье врага
type Health struct {
	Current int
	Max     int
}

// NewHealth returns full health of at least 1.
func NewHealth(max int) Health {
	if max < 1 {
		max = 1
	}
	return Health{Current: max, Max: max}
}

// Damage subtracts amount and clamps at zero. It reports whether the
// entity died from this hit.
func (h *Health) Damage(amount int) bool {
	if h.Current <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current == 0
}

func (h Health) Alive() bool { return h.Current > 0 }
