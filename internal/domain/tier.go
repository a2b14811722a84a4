package domain

import "strings"

// Tier is one of the three independent collection stages of a trophy.
type Tier string

const (
	TierBase      Tier = "base"
	TierGolden    Tier = "golden"
	TierEnchanted Tier = "enchanted"
)

// Tier labels as they appear in item definitions.
const (
	TierLabelBase      = "Base"
	TierLabelGolden    = "Golden"
	TierLabelEnchanted = "Enchanted"
)

// AllTiers lists tiers in collection order.
var AllTiers = []Tier{TierBase, TierGolden, TierEnchanted}

// DefaultTierLabels is used for trophies whose definition omits tiers.
var DefaultTierLabels = []string{TierLabelBase, TierLabelGolden, TierLabelEnchanted}

// Label returns the display form used in item definitions ("Base").
func (t Tier) Label() string {
	switch t {
	case TierBase:
		return TierLabelBase
	case TierGolden:
		return TierLabelGolden
	case TierEnchanted:
		return TierLabelEnchanted
	}
	return string(t)
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierBase, TierGolden, TierEnchanted:
		return true
	}
	return false
}

// ParseTier accepts either the state key ("golden") or the label ("Golden").
func ParseTier(s string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Method records how a tier was obtained.
type Method string

const (
	MethodCollected Method = "collected"
	MethodPurchased Method = "purchased"
	MethodGambled   Method = "gambled"
)

// Valid reports whether m is a known acquisition method.
func (m Method) Valid() bool {
	switch m {
	case MethodCollected, MethodPurchased, MethodGambled:
		return true
	}
	return false
}

// ItemType selects which collection a boundary request addresses.
type ItemType string

const (
	ItemTypeCosmetic ItemType = "cosmetic"
	ItemTypeTrophy   ItemType = "trophy"
)

// Valid reports whether it is a known item type.
func (it ItemType) Valid() bool {
	return it == ItemTypeCosmetic || it == ItemTypeTrophy
}
