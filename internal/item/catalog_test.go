package item

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	l := NewLoader()

	t.Run("missing file degrades with warning", func(t *testing.T) {
		var warnings []string
		data := l.Load(ctx, "cosmetics.json", filepath.Join(dir, "nope.json"), &warnings)

		assert.Equal(t, map[string]any{"items": []any{}}, data)
		assert.Equal(t, []string{"cosmetics.json: could not be loaded, using an empty list"}, warnings)
	})

	t.Run("bad JSON degrades with warning", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", `{"items": [`)
		var warnings []string

		data := l.Load(ctx, "trophies.json", path, &warnings)

		assert.Equal(t, map[string]any{"items": []any{}}, data)
		assert.Len(t, warnings, 1)
	})

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, dir, "ok.json", `{"items":[{"name":"x"}]}`)
		var warnings []string

		data := l.Load(ctx, "trophies.json", path, &warnings)

		assert.Empty(t, warnings)
		assert.Len(t, data.(map[string]any)["items"], 1)
	})
}

func TestCatalogReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cosmetics := writeFile(t, dir, "cosmetics.json", `{"items":[
		{"id":"magic_hat","name":"Magic Hat","renown":"5"},
		{"id":"cape","name":"Cape","materials":[{"name":"Silk","quantity":2}]},
		{"id":"cape","name":"Cape Again"}
	]}`)
	trophies := writeFile(t, dir, "trophies.json", `{"items":[
		{"id":"wolf","name":"Dire Wolf","type":"Creature Trophies"},
		{"name":"","type":"Monuments"}
	]}`)

	c := NewCatalog(NewLoader(), cosmetics, trophies, nil)
	assert.Empty(t, c.Snapshot().Cosmetics)

	data := c.Reload(ctx)

	assert.Len(t, data.Cosmetics, 2)
	assert.Len(t, data.Trophies, 1)
	assert.Contains(t, data.Warnings, "cosmetics.json: 1 duplicate ids skipped")
	assert.Contains(t, data.Warnings, "trophies.json: 1 items without a usable id skipped")
	assert.Contains(t, data.Warnings, "trophies.json: 3 missing required fields")

	hat, ok := c.Cosmetic("magic_hat")
	require.True(t, ok)
	assert.Equal(t, float64(5), hat.Renown)

	_, ok = c.Trophy("magic_hat")
	assert.False(t, ok)

	id, ok := c.Resolve("dire wolf")
	assert.True(t, ok)
	assert.Equal(t, "wolf", id)

	t.Run("reload replaces wholesale", func(t *testing.T) {
		old := c.Snapshot()
		writeFile(t, dir, "trophies.json", `{"items":[{"id":"bear","name":"Bear","type":"Creature Trophies"}]}`)

		fresh := c.Reload(ctx)

		assert.Len(t, old.Trophies, 1)
		assert.Equal(t, "wolf", old.Trophies[0].ID)
		require.Len(t, fresh.Trophies, 1)
		assert.Equal(t, "bear", fresh.Trophies[0].ID)
		_, ok := c.Trophy("wolf")
		assert.False(t, ok)
		_, ok = c.Resolve("dire wolf")
		assert.False(t, ok)
	})
}
