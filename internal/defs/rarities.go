// internal/defs/rarities.go
package defs

import "math"

// RarityDefinition is a multiplier bundle plus its spawn weight.
type RarityDefinition struct {
	ID               Rarity  `json:"id"`
	HealthMultiplier float64 `json:"health_multiplier"`
	SpeedMultiplier  float64 `json:"speed_multiplier"`
	ScoreMultiplier  float64 `json:"score_multiplier"`
	Weight           float64 `json:"weight"`
}

// ScoreValue is the score granted for defeating an enemy of this rarity.
func (r RarityDefinition) ScoreValue(base int) int {
	return int(math.Round(float64(base) * r.ScoreMultiplier))
}

// WeightedEntry is one row of a cumulative weight table.
type WeightedEntry struct {
	Rarity     Rarity
	Cumulative float64
}

// RarityTable maps a uniform draw in [0,1) onto a rarity.
type RarityTable struct {
	Entries []WeightedEntry
}

// NewRarityTable builds the cumulative table in definition order.
func NewRarityTable(defs []RarityDefinition) RarityTable {
	t := RarityTable{Entries: make([]WeightedEntry, 0, len(defs))}
	acc := 0.0
	for _, d := range defs {
		acc += d.Weight
		t.Entries = append(t.Entries, WeightedEntry{Rarity: d.ID, Cumulative: acc})
	}
	return t
}

// Pick returns the rarity whose cumulative bucket contains r.
func (t RarityTable) Pick(r float64) Rarity {
	if len(t.Entries) == 0 {
		return RarityNormal
	}
	for _, e := range t.Entries {
		if r < e.Cumulative {
			return e.Rarity
		}
	}
	// r попал в хвост из-за погрешности суммы весов
	return t.Entries[len(t.Entries)-1].Rarity
}
