package stats

import (
	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// CategoryBreakdown is the collection summary of one level1 category.
type CategoryBreakdown struct {
	Category       string  `json:"category"`
	Collected      int     `json:"collected"`
	Total          int     `json:"total"`
	RenownEarned   float64 `json:"renownEarned"`
	RenownPossible float64 `json:"renownPossible"`
	Complete       bool    `json:"complete"`
}

// breakdownBuilder keeps groups in first-seen order.
type breakdownBuilder struct {
	order  []string
	groups map[string]*CategoryBreakdown
}

func newBreakdownBuilder() *breakdownBuilder {
	return &breakdownBuilder{groups: map[string]*CategoryBreakdown{}}
}

func (b *breakdownBuilder) add(category string, collected bool, earned, possible float64) {
	if category == "" {
		category = UncategorizedLabel
	}
	g, ok := b.groups[category]
	if !ok {
		g = &CategoryBreakdown{Category: category}
		b.groups[category] = g
		b.order = append(b.order, category)
	}
	g.Total++
	g.RenownPossible += possible
	if collected {
		g.Collected++
		g.RenownEarned += earned
	}
}

func (b *breakdownBuilder) build() []CategoryBreakdown {
	out := make([]CategoryBreakdown, 0, len(b.order))
	for _, name := range b.order {
		g := *b.groups[name]
		g.Complete = g.Collected == g.Total
		out = append(out, g)
	}
	return out
}

// CosmeticBreakdown groups cosmetics by category.level1.
func CosmeticBreakdown(items []domain.CosmeticItem, states domain.CosmeticStates) []CategoryBreakdown {
	b := newBreakdownBuilder()
	for _, it := range items {
		b.add(it.Category.Level1, IsCosmeticCollected(it, states[it.ID]), it.Renown, it.Renown)
	}
	return b.build()
}

// TrophyBreakdown groups trophies by category.level1, falling back to the
// trophy type for trophies without a category.
func TrophyBreakdown(items []domain.TrophyItem, states domain.TrophyStates) []CategoryBreakdown {
	b := newBreakdownBuilder()
	for _, it := range items {
		category := it.Category.Level1
		if category == "" {
			category = it.Type
		}
		state := states[it.ID]
		b.add(category, IsTrophyCollected(it, state), float64(TrophyRenown(it, state)), float64(TrophyMaxRenown(it)))
	}
	return b.build()
}
