package stats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// TierCount is the collected/available pair for one tier.
type TierCount struct {
	Collected int `json:"collected"`
	Available int `json:"available"`
}

// TrophyTotals summarizes a set of trophies.
type TrophyTotals struct {
	Total       int                       `json:"total"`
	Collected   int                       `json:"collected"`
	Tiers       map[domain.Tier]TierCount `json:"tiers"`
	Renown      int                       `json:"renown"`
	MaxRenown   int                       `json:"maxRenown"`
	SilverSpent int64                     `json:"silverSpent"`
	StatBonuses map[string]float64        `json:"statBonuses"`
}

// creditedTiers returns the tiers whose flag is set and which the trophy
// actually offers.
func creditedTiers(item domain.TrophyItem, state domain.TrophyState) []domain.Tier {
	var tiers []domain.Tier
	for _, tier := range domain.AllTiers {
		if state.Has(tier) && item.HasTier(tier) {
			tiers = append(tiers, tier)
		}
	}
	return tiers
}

// TrophyRenown is the renown credited for one trophy. Each tier pays its
// fixed amount on its own flag, whatever the other tiers hold.
func TrophyRenown(item domain.TrophyItem, state domain.TrophyState) int {
	renown := 0
	for _, tier := range creditedTiers(item, state) {
		renown += domain.TierRenown(tier)
	}
	return renown
}

// TrophyMaxRenown is the renown of a trophy with every offered tier collected.
func TrophyMaxRenown(item domain.TrophyItem) int {
	renown := 0
	for _, tier := range domain.AllTiers {
		if item.HasTier(tier) {
			renown += domain.TierRenown(tier)
		}
	}
	return renown
}

// IsTrophyCollected is true when any offered tier is collected.
func IsTrophyCollected(item domain.TrophyItem, state domain.TrophyState) bool {
	return len(creditedTiers(item, state)) > 0
}

// NewStatTotals returns a zeroed entry for every known stat.
func NewStatTotals() map[string]float64 {
	totals := make(map[string]float64, len(domain.StatNames))
	for _, s := range domain.StatNames {
		totals[s] = 0
	}
	return totals
}

// AddStatBonus adds a bonus such as "4%" to totals. Unknown stats and
// values without a leading number are ignored.
func AddStatBonus(totals map[string]float64, stat, value string) {
	if _, known := totals[stat]; !known {
		return
	}
	n, ok := ParseBonusValue(value)
	if !ok {
		return
	}
	totals[stat] += n
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseBonusValue reads the leading number of a bonus string after dropping
// the first percent sign ("4%" -> 4, "2.5% haste" -> 2.5).
func ParseBonusValue(value string) (float64, bool) {
	s := strings.TrimSpace(strings.Replace(value, "%", "", 1))
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ComputeTrophyTotals derives tier counts, renown, silver and stat bonuses.
// A tier counts toward a trophy's numbers only when the trophy offers it.
func ComputeTrophyTotals(items []domain.TrophyItem, states domain.TrophyStates) TrophyTotals {
	t := TrophyTotals{
		Total:       len(items),
		Tiers:       make(map[domain.Tier]TierCount, len(domain.AllTiers)),
		StatBonuses: NewStatTotals(),
	}
	for _, tier := range domain.AllTiers {
		t.Tiers[tier] = TierCount{}
	}

	for _, it := range items {
		for _, tier := range domain.AllTiers {
			if it.HasTier(tier) {
				c := t.Tiers[tier]
				c.Available++
				t.Tiers[tier] = c
			}
		}
		t.MaxRenown += TrophyMaxRenown(it)

		credited := creditedTiers(it, states[it.ID])
		if len(credited) > 0 {
			t.Collected++
		}
		for _, tier := range credited {
			c := t.Tiers[tier]
			c.Collected++
			t.Tiers[tier] = c

			t.Renown += domain.TierRenown(tier)
			if tier != domain.TierBase {
				t.SilverSpent += domain.SilverPerUpgrade
			}
			for _, b := range it.Bonuses {
				AddStatBonus(t.StatBonuses, b.Stat, b.Value)
			}
		}
	}
	return t
}
