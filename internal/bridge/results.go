package bridge

import (
	"time"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/stats"
)

// Result is the common envelope of every operation
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ToggleResult carries the collected record; nil after an uncheck
type ToggleResult struct {
	Result
	State *domain.CollectedRecord `json:"state,omitempty"`
}

// TrophyStateResult carries a trophy's tier flags
type TrophyStateResult struct {
	Result
	State *domain.TrophyState `json:"state,omitempty"`
}

// CosmeticStateResult carries a cosmetic's state
type CosmeticStateResult struct {
	Result
	State *domain.CosmeticState `json:"state,omitempty"`
}

// CounterResult carries one counter
type CounterResult struct {
	Result
	Counter *domain.Counter `json:"counter,omitempty"`
}

// TrophyCounterResult carries the counter behind a trophy and what it counts
type TrophyCounterResult struct {
	Result
	Key        string                    `json:"key,omitempty"`
	Descriptor *domain.CounterDescriptor `json:"descriptor,omitempty"`
	Counter    *domain.Counter           `json:"counter,omitempty"`
}

// GlobalStatsResult carries the acquisition statistics
type GlobalStatsResult struct {
	Result
	Stats *domain.GlobalStatsView `json:"stats,omitempty"`
}

// DataResult carries the item catalog
type DataResult struct {
	Result
	Cosmetics []domain.CosmeticItem `json:"cosmetics"`
	Trophies  []domain.TrophyItem   `json:"trophies"`
	Warnings  []string              `json:"warnings"`
	LoadedAt  time.Time             `json:"loadedAt"`
}

// SummaryResult carries the dashboard
type SummaryResult struct {
	Result
	Dashboard *stats.Dashboard `json:"dashboard,omitempty"`
}

// TrophyListResult carries a filtered trophy list and its totals
type TrophyListResult struct {
	Result
	Items  []domain.TrophyItem `json:"items"`
	Totals *stats.TrophyTotals `json:"totals,omitempty"`
}

// CosmeticListResult carries a filtered cosmetic list and its totals
type CosmeticListResult struct {
	Result
	Items  []domain.CosmeticItem `json:"items"`
	Totals *stats.CosmeticTotals `json:"totals,omitempty"`
}

// TargetsResult carries the active target list
type TargetsResult struct {
	Result
	Targets []domain.ActiveTarget `json:"targets"`
}
