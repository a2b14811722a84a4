package domain

// Stat names a trophy bonus can contribute to. Anything else is ignored.
var StatNames = []string{
	"Spell Power",
	"Weapon Power",
	"Spell Defense",
	"Weapon Defense",
	"Healing Power",
	"Max Health",
	"Max Mana",
	"Mana Regeneration",
	"Health Regeneration",
	"Precision",
	"Impact",
	"Haste",
	"Dexterity",
	"Intelligence",
	"Might",
	"Vitality",
	"Wisdom",
	"Fishing Damage",
	"Ship Cannon Damage",
	"Drop Rate (Ocean)",
	"Gathering EXP",
	"Crafting EXP",
}

// IsKnownStat reports whether name is one of StatNames.
func IsKnownStat(name string) bool {
	for _, s := range StatNames {
		if s == name {
			return true
		}
	}
	return false
}

// Renown awarded per trophy tier flag. Each applies on its own flag alone.
const (
	RenownBase      = 10
	RenownGolden    = 260
	RenownEnchanted = 510
)

// SilverPerUpgrade is the silver cost of a golden or enchanted upgrade.
const SilverPerUpgrade = 5_000_000

// TierRenown returns the renown credited for a set tier flag.
func TierRenown(t Tier) int {
	switch t {
	case TierBase:
		return RenownBase
	case TierGolden:
		return RenownGolden
	case TierEnchanted:
		return RenownEnchanted
	}
	return 0
}
