// internal/defs/levels.go
package defs

// LevelDefinition describes one level of the campaign.
// A zero Duration means the duration is derived from the level number.
type LevelDefinition struct {
	Number   int     `json:"number"`
	Duration float64 `json:"duration,omitempty"`
}
