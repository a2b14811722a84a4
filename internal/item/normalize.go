package item

import (
	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/naming"
)

// NormalizeCosmetics converts raw cosmetic records into canonical items.
func NormalizeCosmetics(raw []domain.RawItem) []domain.CosmeticItem {
	items := make([]domain.CosmeticItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, NormalizeCosmetic(r))
	}
	return items
}

// NormalizeTrophies converts raw trophy records into canonical items.
func NormalizeTrophies(raw []domain.RawItem) []domain.TrophyItem {
	items := make([]domain.TrophyItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, NormalizeTrophy(r))
	}
	return items
}

// NormalizeCosmetic normalizes one raw cosmetic. Every list field is non-nil.
func NormalizeCosmetic(r domain.RawItem) domain.CosmeticItem {
	name := textOf(r["name"])
	return domain.CosmeticItem{
		ID:           itemID(r, name),
		Name:         name,
		Category:     categoryOf(r["category"]),
		CategoryPath: stringOf(r["categoryPath"]),
		Location:     stringOf(r["location"]),
		Renown:       nonNegative(r["renown"]),
		Materials:    materialsOf(r["materials"]),
	}
}

// NormalizeTrophy normalizes one raw trophy. Every list field is non-nil.
func NormalizeTrophy(r domain.RawItem) domain.TrophyItem {
	name := textOf(r["name"])

	trophyType := stringOf(r["type"])
	if trophyType == "" {
		trophyType = domain.TrophyTypeCreature
	}

	return domain.TrophyItem{
		ID:       itemID(r, name),
		Name:     name,
		Type:     trophyType,
		Category: categoryOf(r["category"]),
		Tiers:    tiersOf(r["tiers"]),
		Bonuses:  bonusesOf(r["bonuses"], r["bonus"]),
		Creature: stringOf(r["creature"]),
	}
}

func itemID(r domain.RawItem, name string) string {
	if id := textOf(r["id"]); id != "" {
		return id
	}
	return naming.DeriveID(name)
}

// categoryOf accepts {level1, level2} or a bare string naming level1.
func categoryOf(v any) domain.Category {
	if s, ok := v.(string); ok {
		return domain.Category{Level1: s}
	}
	obj, ok := objectOf(v)
	if !ok {
		return domain.Category{}
	}
	return domain.Category{
		Level1: stringOf(obj["level1"]),
		Level2: stringOf(obj["level2"]),
	}
}

// materialsOf keeps well-formed {name, quantity} entries only.
func materialsOf(v any) []domain.Material {
	materials := []domain.Material{}
	list, ok := listOf(v)
	if !ok {
		return materials
	}
	for _, entry := range list {
		obj, ok := objectOf(entry)
		if !ok {
			continue
		}
		name := stringOf(obj["name"])
		if name == "" {
			continue
		}
		materials = append(materials, domain.Material{
			Name:     name,
			Quantity: quantityOf(obj["quantity"]),
		})
	}
	return materials
}

// tiersOf keeps known tier labels in their canonical spelling. A missing
// or non-list value means every tier.
func tiersOf(v any) []string {
	list, ok := listOf(v)
	if !ok {
		return append([]string(nil), domain.DefaultTierLabels...)
	}
	tiers := []string{}
	seen := make(map[domain.Tier]bool, len(domain.AllTiers))
	for _, entry := range list {
		tier, ok := domain.ParseTier(stringOf(entry))
		if !ok || seen[tier] {
			continue
		}
		seen[tier] = true
		tiers = append(tiers, tier.Label())
	}
	return tiers
}

// bonusesOf prefers the bonuses list; a legacy single bonus object is used
// only when the list is absent.
func bonusesOf(list, legacy any) []domain.StatBonus {
	bonuses := []domain.StatBonus{}

	if entries, ok := listOf(list); ok {
		for _, entry := range entries {
			obj, ok := objectOf(entry)
			if !ok {
				continue
			}
			bonuses = append(bonuses, domain.StatBonus{
				Stat:  textOf(obj["stat"]),
				Value: textOf(obj["value"]),
			})
		}
		return bonuses
	}

	obj, ok := objectOf(legacy)
	if !ok {
		return bonuses
	}
	stat := textOf(obj["stat"])
	if stat == "" {
		stat = DefaultBonusStat
	}
	return append(bonuses, domain.StatBonus{Stat: stat, Value: textOf(obj["value"])})
}
