package stats

import (
	"math"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// MaterialsComplete reports whether every material requirement is met. An
// item without materials is never materials-complete.
func MaterialsComplete(item domain.CosmeticItem, state domain.CosmeticState) bool {
	if len(item.Materials) == 0 {
		return false
	}
	for _, m := range item.Materials {
		if state.Materials[m.Name] < m.Quantity {
			return false
		}
	}
	return true
}

// IsCosmeticCollected is true when the flag is set or all materials are in hand.
func IsCosmeticCollected(item domain.CosmeticItem, state domain.CosmeticState) bool {
	return state.Collected || MaterialsComplete(item, state)
}

// MaterialProgress returns the rounded average completion of an item's
// materials. ok is false for items without materials, which show no progress.
func MaterialProgress(item domain.CosmeticItem, state domain.CosmeticState) (percent int, ok bool) {
	if len(item.Materials) == 0 {
		return 0, false
	}
	share := 100 / float64(len(item.Materials))
	total := 0.0
	for _, m := range item.Materials {
		if m.Quantity <= 0 {
			continue
		}
		ratio := math.Min(float64(state.Materials[m.Name])/float64(m.Quantity), 1)
		total += ratio * share
	}
	return int(math.Round(total)), true
}

// CosmeticTotals summarizes a set of cosmetics.
type CosmeticTotals struct {
	Total     int     `json:"total"`
	Collected int     `json:"collected"`
	Renown    float64 `json:"renown"`
	MaxRenown float64 `json:"maxRenown"`
}

// ComputeCosmeticTotals sums collection and renown over items. Missing state
// counts as not started.
func ComputeCosmeticTotals(items []domain.CosmeticItem, states domain.CosmeticStates) CosmeticTotals {
	t := CosmeticTotals{Total: len(items)}
	for _, it := range items {
		t.MaxRenown += it.Renown
		if IsCosmeticCollected(it, states[it.ID]) {
			t.Collected++
			t.Renown += it.Renown
		}
	}
	return t
}
