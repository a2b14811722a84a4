package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestValidateItems_MissingItemsArray(t *testing.T) {
	tests := []struct {
		name string
		data any
	}{
		{"empty object", map[string]any{}},
		{"nil data", nil},
		{"items is a string", map[string]any{"items": "nope"}},
		{"top level list", []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings []string
			res := ValidateItems("x.json", tt.data, []string{"name"}, &warnings)

			assert.Empty(t, res.Items)
			assert.NotNil(t, res.Items)
			require.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], "missing items array")
			assert.Equal(t, "x.json: missing items array", warnings[0])
		})
	}
}

func TestValidateItems_SchemaCounts(t *testing.T) {
	t.Run("cosmetics schema counts id twice when absent", func(t *testing.T) {
		data := decode(t, `{"items":[{"name":"Magic Hat"},{"id":"cape","name":"Cape"}]}`)
		var warnings []string

		res := ValidateItems(ResourceCosmetics, data, nil, &warnings)

		assert.Len(t, res.Items, 2)
		assert.Equal(t, []string{"cosmetics.json: 2 missing required fields"}, warnings)
	})

	t.Run("trophies schema overrides caller fields", func(t *testing.T) {
		data := decode(t, `{"items":[{"id":"wolf","name":"Wolf","type":7},{"id":"bear","name":"","type":"Creature Trophies"}]}`)
		var warnings []string

		ValidateItems(ResourceTrophies, data, []string{"creature"}, &warnings)

		assert.Equal(t, []string{"trophies.json: 2 missing required fields"}, warnings)
	})

	t.Run("clean data produces no warning", func(t *testing.T) {
		data := decode(t, `{"items":[{"id":"wolf","name":"Wolf","type":"Creature Trophies"}]}`)
		var warnings []string

		res := ValidateItems(ResourceTrophies, data, nil, &warnings)

		assert.Len(t, res.Items, 1)
		assert.Empty(t, warnings)
	})

	t.Run("caller fields check presence only", func(t *testing.T) {
		data := decode(t, `{"items":[{"id":"a","name":5},{"id":"b","name":null},{"name":"c"}]}`)
		var warnings []string

		ValidateItems("other.json", data, []string{"name"}, &warnings)

		assert.Equal(t, []string{"other.json: 2 missing required fields"}, warnings)
	})

	t.Run("many bad items still give one warning", func(t *testing.T) {
		items := make([]any, 50)
		for i := range items {
			items[i] = map[string]any{}
		}
		var warnings []string

		ValidateItems(ResourceCosmetics, map[string]any{"items": items}, nil, &warnings)

		assert.Equal(t, []string{"cosmetics.json: 150 missing required fields"}, warnings)
	})

	t.Run("non-object entries count as empty", func(t *testing.T) {
		data := decode(t, `{"items":["oops"]}`)
		var warnings []string

		res := ValidateItems(ResourceCosmetics, data, nil, &warnings)

		assert.Len(t, res.Items, 1)
		assert.Equal(t, []string{"cosmetics.json: 3 missing required fields"}, warnings)
	})
}

func TestValidateItems_DoesNotMutate(t *testing.T) {
	data := decode(t, `{"items":[{"name":"Magic Hat"}]}`)
	before, err := json.Marshal(data)
	require.NoError(t, err)

	ValidateItems(ResourceCosmetics, data, nil, nil)

	after, err := json.Marshal(data)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestTruthy(t *testing.T) {
	assert.False(t, truthy(nil))
	assert.False(t, truthy(""))
	assert.False(t, truthy(float64(0)))
	assert.False(t, truthy(false))
	assert.True(t, truthy("x"))
	assert.True(t, truthy(float64(3)))
	assert.True(t, truthy(map[string]any{}))
}
