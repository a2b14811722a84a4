package counter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

func TestDefaultDescriptors(t *testing.T) {
	d := DefaultDescriptors()

	tests := []struct {
		name      string
		item      domain.TrophyItem
		wantType  string
		wantLabel string
		wantKey   string
	}{
		{"creature", domain.TrophyItem{ID: "wolf", Type: domain.TrophyTypeCreature}, TypeKills, "Kills", "wolf"},
		{"ocean", domain.TrophyItem{ID: "shark", Type: domain.TrophyTypeOcean}, TypeSeaKills, "Sea Kills", "shark"},
		{"carnival", domain.TrophyItem{ID: "clown", Type: domain.TrophyTypeCarnival}, TypeAttempts, "Attempts", "clown"},
		{"monument shares a counter", domain.TrophyItem{ID: "golem", Type: domain.TrophyTypeMonument}, TypeBossKills, "Boss Kills", domain.SharedMonumentKey},
		{"unknown type falls back", domain.TrophyItem{ID: "odd", Type: "Relics"}, TypeKills, "Kills", "odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := d.Resolve(tt.item)
			assert.Equal(t, tt.wantType, desc.Type)
			assert.Equal(t, tt.wantLabel, desc.Label)
			assert.Equal(t, tt.wantKey, d.CounterKeyFor(tt.item))
		})
	}
}

func TestLoadDescriptors(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		d, err := LoadDescriptors("")
		require.NoError(t, err)
		assert.Equal(t, DefaultDescriptors(), d)
	})

	t.Run("overrides merge over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "counter_types.yaml")
		content := `
categories:
  Carnival Trophies:
    type: tickets
    label: Tickets
items:
  golden_koi:
    type: catches
    label: Catches
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		d, err := LoadDescriptors(path)
		require.NoError(t, err)

		assert.Equal(t, "tickets", d.Resolve(domain.TrophyItem{ID: "clown", Type: domain.TrophyTypeCarnival}).Type)
		// item id wins over the type table
		koi := domain.TrophyItem{ID: "golden_koi", Type: domain.TrophyTypeOcean}
		assert.Equal(t, "Catches", d.Resolve(koi).Label)
		// untouched entries survive
		assert.True(t, d.Resolve(domain.TrophyItem{ID: "golem", Type: domain.TrophyTypeMonument}).Shared)
		assert.Equal(t, TypeKills, d.Default.Type)
	})

	t.Run("shared item override uses shared key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "counter_types.yaml")
		content := "items:\n  titan:\n    type: bossKills\n    label: Boss Kills\n    shared: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		d, err := LoadDescriptors(path)
		require.NoError(t, err)
		assert.Equal(t, domain.SharedMonumentKey, d.CounterKeyFor(domain.TrophyItem{ID: "titan", Type: domain.TrophyTypeCreature}))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDescriptors(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("categories: [unclosed"), 0o600))
		_, err := LoadDescriptors(path)
		assert.Error(t, err)
	})
}
