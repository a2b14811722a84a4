package stats

import (
	"math"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// Dashboard is the overall progress summary.
type Dashboard struct {
	TrophyPercent   int                 `json:"trophyPercent"`
	CosmeticPercent int                 `json:"cosmeticPercent"`
	TotalRenown     float64             `json:"totalRenown"`
	MaxRenown       float64             `json:"maxRenown"`
	Trophies        TrophyTotals        `json:"trophies"`
	Cosmetics       CosmeticTotals      `json:"cosmetics"`
	TrophyGroups    []CategoryBreakdown `json:"trophyGroups"`
	CosmeticGroups  []CategoryBreakdown `json:"cosmeticGroups"`
}

// Percent is round(part/total*100), or 0 for an empty total.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Summarize computes the dashboard from item definitions and progress state.
func Summarize(
	cosmetics []domain.CosmeticItem,
	trophies []domain.TrophyItem,
	cosmeticStates domain.CosmeticStates,
	trophyStates domain.TrophyStates,
) Dashboard {
	ct := ComputeCosmeticTotals(cosmetics, cosmeticStates)
	tt := ComputeTrophyTotals(trophies, trophyStates)
	return Dashboard{
		TrophyPercent:   Percent(tt.Collected, tt.Total),
		CosmeticPercent: Percent(ct.Collected, ct.Total),
		TotalRenown:     ct.Renown + float64(tt.Renown),
		MaxRenown:       ct.MaxRenown + float64(tt.MaxRenown),
		Trophies:        tt,
		Cosmetics:       ct,
		TrophyGroups:    TrophyBreakdown(trophies, trophyStates),
		CosmeticGroups:  CosmeticBreakdown(cosmetics, cosmeticStates),
	}
}
