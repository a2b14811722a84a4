package domain

// Trophy types as used in item data.
const (
	TrophyTypeCreature = "Creature Trophies"
	TrophyTypeOcean    = "Ocean Trophies"
	TrophyTypeCarnival = "Carnival Trophies"
	TrophyTypeMonument = "Monuments"
)

// Category is the hierarchical grouping of an item.
type Category struct {
	Level1 string `json:"level1"`
	Level2 string `json:"level2,omitempty"`
}

// Material is one crafting requirement of a cosmetic.
type Material struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// StatBonus is a trophy bonus such as {Precision, "4%"}.
type StatBonus struct {
	Stat  string `json:"stat"`
	Value string `json:"value"`
}

// CosmeticItem is a normalized cosmetic definition.
type CosmeticItem struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     Category   `json:"category"`
	CategoryPath string     `json:"categoryPath"`
	Location     string     `json:"location,omitempty"`
	Renown       float64    `json:"renown"`
	Materials    []Material `json:"materials"`
}

// TrophyItem is a normalized trophy definition.
type TrophyItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Category Category    `json:"category"`
	Tiers    []string    `json:"tiers"`
	Bonuses  []StatBonus `json:"bonuses"`
	Creature string      `json:"creature"`
}

// HasTier reports whether the trophy lists the tier in its definition.
func (t TrophyItem) HasTier(tier Tier) bool {
	label := tier.Label()
	for _, have := range t.Tiers {
		if have == label {
			return true
		}
	}
	return false
}

// ActiveTarget is an item pinned to the overlay.
type ActiveTarget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// MaxActiveTargets bounds the pinned target list.
const MaxActiveTargets = 5
