package stats

import (
	"sort"
	"strings"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// TrophyFilter selects trophies for display. Empty fields match everything.
type TrophyFilter struct {
	Type     string // exact trophy type
	Search   string // case-insensitive substring of the name
	Tier     string // tier label that must be collected
	Status   string // one of the Status* constants
	Category string // level1 category, applied to creature trophies only
}

// FilterTrophies returns the trophies matching f, in input order.
func FilterTrophies(items []domain.TrophyItem, states domain.TrophyStates, f TrophyFilter) []domain.TrophyItem {
	search := strings.ToLower(f.Search)
	out := []domain.TrophyItem{}
	for _, it := range items {
		state, tracked := states[it.ID]
		if f.Type != "" && it.Type != f.Type {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		if f.Tier != "" {
			tier, ok := domain.ParseTier(f.Tier)
			if !ok || !state.Has(tier) {
				continue
			}
		}
		if f.Status != "" && !matchesStatus(state, tracked, f.Status) {
			continue
		}
		if f.Category != "" && it.Type == domain.TrophyTypeCreature && it.Category.Level1 != f.Category {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesStatus(state domain.TrophyState, tracked bool, status string) bool {
	n := state.Count()
	switch status {
	case StatusAllTiers:
		return n == len(domain.AllTiers)
	case StatusPartial:
		return tracked && n > 0 && n < len(domain.AllTiers)
	case StatusBaseOnly:
		return state.Base && !state.Golden && !state.Enchanted
	case StatusNone:
		return n == 0
	}
	return true
}

// CosmeticFilter selects cosmetics for display. Empty fields match everything.
type CosmeticFilter struct {
	Level1   string
	Level2   string
	Search   string
	Location string
}

// FilterCosmetics returns the cosmetics matching f, in input order.
func FilterCosmetics(items []domain.CosmeticItem, f CosmeticFilter) []domain.CosmeticItem {
	search := strings.ToLower(f.Search)
	out := []domain.CosmeticItem{}
	for _, it := range items {
		if f.Level1 != "" && it.Category.Level1 != f.Level1 {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		if f.Level2 != "" && it.Category.Level2 != f.Level2 {
			continue
		}
		if f.Location != "" && it.Location != f.Location {
			continue
		}
		out = append(out, it)
	}
	return out
}

// CategoryOptions lists the sorted level1 categories of items and, for each,
// its sorted level2 subcategories.
func CategoryOptions(items []domain.CosmeticItem) (level1 []string, level2 map[string][]string) {
	sets := map[string]map[string]bool{}
	for _, it := range items {
		l1 := it.Category.Level1
		if l1 == "" {
			continue
		}
		if sets[l1] == nil {
			sets[l1] = map[string]bool{}
		}
		if it.Category.Level2 != "" {
			sets[l1][it.Category.Level2] = true
		}
	}

	level1 = make([]string, 0, len(sets))
	level2 = make(map[string][]string, len(sets))
	for l1, subs := range sets {
		level1 = append(level1, l1)
		list := make([]string, 0, len(subs))
		for s := range subs {
			list = append(list, s)
		}
		sort.Strings(list)
		level2[l1] = list
	}
	sort.Strings(level1)
	return level1, level2
}
