package domain

import "time"

// SharedMonumentKey addresses the pooled counter shared by all monument trophies.
const SharedMonumentKey = "__shared_monument__"

// Counter bounds.
const (
	MaxIncrementMagnitude = 1000
	MaxCounterValue       = 999999
)

// Milestone records how a tier was obtained. Count is set only for collected.
type Milestone struct {
	Tier   Tier      `json:"tier"`
	Method Method    `json:"method"`
	Count  *int      `json:"count"`
	Date   time.Time `json:"date"`
}

// Counter is the grind counter of one item or of a shared key.
type Counter struct {
	Count       int         `json:"count"`
	LastUpdated *time.Time  `json:"lastUpdated"`
	Milestones  []Milestone `json:"milestones"`
}

// Milestone returns the milestone recorded for tier, if any.
func (c Counter) Milestone(tier Tier) (Milestone, bool) {
	for _, m := range c.Milestones {
		if m.Tier == tier {
			return m, true
		}
	}
	return Milestone{}, false
}

// Counters maps counter key to counter.
type Counters map[string]Counter

// DropRecord is one collected-method milestone count.
type DropRecord struct {
	ItemID string `json:"itemId"`
	Tier   Tier   `json:"tier"`
	Count  int    `json:"count"`
}

// GlobalStats accumulates acquisition statistics across all items.
type GlobalStats struct {
	TotalGambled   int          `json:"totalGambled"`
	TotalPurchased int          `json:"totalPurchased"`
	LuckiestDrop   *DropRecord  `json:"luckiestDrop"`
	AverageDrops   []DropRecord `json:"averageDrops"`
}

// GlobalStatsView is GlobalStats plus the derived mean drop count.
type GlobalStatsView struct {
	GlobalStats
	AverageCount int `json:"averageCount"`
}

// CounterDescriptor tells the UI what a trophy's counter measures.
type CounterDescriptor struct {
	Type   string `json:"type" yaml:"type"`
	Label  string `json:"label" yaml:"label"`
	Shared bool   `json:"shared,omitempty" yaml:"shared,omitempty"`
}
