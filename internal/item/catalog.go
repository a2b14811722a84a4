package item

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/logger"
	"github.com/osse101/RavenCompanion_Go/internal/naming"
	"github.com/osse101/RavenCompanion_Go/internal/validation"
)

// Data is an immutable snapshot of the loaded item definitions.
type Data struct {
	Cosmetics []domain.CosmeticItem `json:"cosmetics"`
	Trophies  []domain.TrophyItem   `json:"trophies"`
	Warnings  []string              `json:"warnings"`
	LoadedAt  time.Time             `json:"loadedAt"`
}

// Catalog holds the item definitions for the session. Reload replaces them
// wholesale; snapshots handed out earlier are never modified.
type Catalog struct {
	mu        sync.RWMutex
	loader    Loader
	cosmetics string
	trophies  string
	resolver  naming.Resolver

	data          *Data
	cosmeticIndex map[string]domain.CosmeticItem
	trophyIndex   map[string]domain.TrophyItem
}

// NewCatalog creates an empty catalog reading the given data files
func NewCatalog(loader Loader, cosmeticsPath, trophiesPath string, resolver naming.Resolver) *Catalog {
	if resolver == nil {
		resolver = naming.NewResolver()
	}
	return &Catalog{
		loader:        loader,
		cosmetics:     cosmeticsPath,
		trophies:      trophiesPath,
		resolver:      resolver,
		data:          &Data{Cosmetics: []domain.CosmeticItem{}, Trophies: []domain.TrophyItem{}, Warnings: []string{}},
		cosmeticIndex: map[string]domain.CosmeticItem{},
		trophyIndex:   map[string]domain.TrophyItem{},
	}
}

// Reload reads, validates and normalizes both data files and swaps them in.
func (c *Catalog) Reload(ctx context.Context) *Data {
	log := logger.FromContext(ctx)
	warnings := []string{}

	cosmeticsRaw := c.loader.Load(ctx, validation.ResourceCosmetics, c.cosmetics, &warnings)
	cosmeticsRes := validation.ValidateItems(validation.ResourceCosmetics, cosmeticsRaw, CosmeticRequiredFields, &warnings)

	trophiesRaw := c.loader.Load(ctx, validation.ResourceTrophies, c.trophies, &warnings)
	trophiesRes := validation.ValidateItems(validation.ResourceTrophies, trophiesRaw, TrophyRequiredFields, &warnings)

	cosmetics := dedupe(validation.ResourceCosmetics, NormalizeCosmetics(cosmeticsRes.Items),
		func(i domain.CosmeticItem) string { return i.ID }, &warnings)
	trophies := dedupe(validation.ResourceTrophies, NormalizeTrophies(trophiesRes.Items),
		func(i domain.TrophyItem) string { return i.ID }, &warnings)

	data := &Data{
		Cosmetics: cosmetics,
		Trophies:  trophies,
		Warnings:  warnings,
		LoadedAt:  time.Now(),
	}

	cosmeticIndex := make(map[string]domain.CosmeticItem, len(cosmetics))
	for _, it := range cosmetics {
		cosmeticIndex[it.ID] = it
	}
	trophyIndex := make(map[string]domain.TrophyItem, len(trophies))
	for _, it := range trophies {
		trophyIndex[it.ID] = it
	}

	c.mu.Lock()
	c.data = data
	c.cosmeticIndex = cosmeticIndex
	c.trophyIndex = trophyIndex
	c.resolver.Reset()
	for _, it := range cosmetics {
		c.resolver.RegisterItem(it.ID, it.Name)
	}
	for _, it := range trophies {
		c.resolver.RegisterItem(it.ID, it.Name)
	}
	c.mu.Unlock()

	for _, w := range warnings {
		log.Warn(LogMsgCatalogWarning, "warning", w)
	}
	log.Info(LogMsgCatalogLoaded, "cosmetics", len(cosmetics), "trophies", len(trophies), "warnings", len(warnings))

	return data
}

// Snapshot returns the current data. Callers must not modify it.
func (c *Catalog) Snapshot() *Data {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

// Cosmetic looks up a cosmetic by id
func (c *Catalog) Cosmetic(id string) (domain.CosmeticItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.cosmeticIndex[id]
	return it, ok
}

// Trophy looks up a trophy by id
func (c *Catalog) Trophy(id string) (domain.TrophyItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.trophyIndex[id]
	return it, ok
}

// Resolve maps a name or id typed by the user to an item id
func (c *Catalog) Resolve(input string) (string, bool) {
	return c.resolver.Resolve(input)
}

// dedupe drops items with an empty id and later duplicates of an id,
// reporting each kind of drop as one aggregate warning.
func dedupe[T any](name string, items []T, idOf func(T) string, warnings *[]string) []T {
	out := make([]T, 0, len(items))
	seen := make(map[string]bool, len(items))
	missing, duplicate := 0, 0
	for _, it := range items {
		id := idOf(it)
		switch {
		case id == "":
			missing++
		case seen[id]:
			duplicate++
		default:
			seen[id] = true
			out = append(out, it)
		}
	}
	if missing > 0 {
		*warnings = append(*warnings, fmt.Sprintf(WarnFmtMissingIDs, name, missing))
	}
	if duplicate > 0 {
		*warnings = append(*warnings, fmt.Sprintf(WarnFmtDuplicateIDs, name, duplicate))
	}
	return out
}

// Items returns the current cosmetics and trophies
func (c *Catalog) Items() ([]domain.CosmeticItem, []domain.TrophyItem) {
	d := c.Snapshot()
	return d.Cosmetics, d.Trophies
}
