package domain

import "time"

// CosmeticState is the persisted progress of one cosmetic.
type CosmeticState struct {
	Collected        bool           `json:"collected"`
	CollectedCount   int            `json:"collectedCount,omitempty"`
	Materials        map[string]int `json:"materials,omitempty"`
	FirstCollectedAt *time.Time     `json:"firstCollectedAt,omitempty"`
	LastCollectedAt  *time.Time     `json:"lastCollectedAt,omitempty"`
}

// TrophyState holds independent per-tier flags; any subset may be set.
type TrophyState struct {
	Base      bool `json:"base"`
	Golden    bool `json:"golden"`
	Enchanted bool `json:"enchanted"`
}

// Has reports whether the tier flag is set.
func (s TrophyState) Has(t Tier) bool {
	switch t {
	case TierBase:
		return s.Base
	case TierGolden:
		return s.Golden
	case TierEnchanted:
		return s.Enchanted
	}
	return false
}

// With returns a copy with the tier flag set to v.
func (s TrophyState) With(t Tier, v bool) TrophyState {
	switch t {
	case TierBase:
		s.Base = v
	case TierGolden:
		s.Golden = v
	case TierEnchanted:
		s.Enchanted = v
	}
	return s
}

// Count returns how many tier flags are set.
func (s TrophyState) Count() int {
	n := 0
	for _, t := range AllTiers {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Any reports whether at least one tier is set.
func (s TrophyState) Any() bool {
	return s.Count() > 0
}

// CosmeticStates maps cosmetic id to state. A missing id means not started.
type CosmeticStates map[string]CosmeticState

// TrophyStates maps trophy id to state. A missing id means not started.
type TrophyStates map[string]TrophyState

// CollectedRecord is one entry of the collected-toggle history.
type CollectedRecord struct {
	Collected        bool       `json:"collected"`
	CollectedCount   int        `json:"collectedCount"`
	FirstCollectedAt *time.Time `json:"firstCollectedAt,omitempty"`
	LastCollectedAt  *time.Time `json:"lastCollectedAt,omitempty"`
}

// CollectedLog maps item id to its toggle history. Unchecking removes the id.
type CollectedLog map[string]CollectedRecord
