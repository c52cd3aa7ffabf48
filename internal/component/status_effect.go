// internal/component/status_effect.go
package component

// ActiveEffect is a running timed power-up, as shown on the HUD.
type ActiveEffect struct {
	Name      string  `json:"name"`
	Remaining float64 `json:"remaining"` // seconds of simulation time
}
