package validation

import (
	"fmt"
	"math"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// Result is the outcome of ValidateItems.
type Result struct {
	Items []domain.RawItem
}

// ValidateItems checks raw decoded data of a named resource and appends at
// most one warning to warnings. It never fails and never modifies data.
//
// Items are returned unchanged even when fields are missing; the count of
// defects is reported in aggregate so a bad file produces one message.
func ValidateItems(name string, data any, requiredFields []string, warnings *[]string) Result {
	list, ok := itemsArray(data)
	if !ok {
		appendWarning(warnings, fmt.Sprintf(WarnMissingItemsArray, name))
		return Result{Items: []domain.RawItem{}}
	}

	schema, hasSchema := itemSchemas[name]
	if !hasSchema {
		for _, field := range requiredFields {
			schema = append(schema, fieldSchema{field: field})
		}
	}

	items := make([]domain.RawItem, 0, len(list))
	missing := 0
	for _, entry := range list {
		item, _ := entry.(map[string]any)
		for _, fs := range schema {
			if fieldMissing(item, fs) {
				missing++
			}
		}
		if !truthy(item["id"]) {
			missing++
		}
		items = append(items, domain.RawItem(item))
	}

	if missing > 0 {
		appendWarning(warnings, fmt.Sprintf(WarnMissingFields, name, missing))
	}
	return Result{Items: items}
}

func itemsArray(data any) ([]any, bool) {
	var obj map[string]any
	switch v := data.(type) {
	case map[string]any:
		obj = v
	case domain.RawItem:
		obj = v
	default:
		return nil, false
	}
	list, ok := obj["items"].([]any)
	return list, ok
}

func fieldMissing(item map[string]any, fs fieldSchema) bool {
	v, present := item[fs.field]
	if !present || v == nil {
		return true
	}
	if s, isString := v.(string); isString && s == "" {
		return true
	}
	return fs.kind != "" && primitiveType(v) != fs.kind
}

// primitiveType names the JSON primitive of a decoded value.
func primitiveType(v any) string {
	switch v.(type) {
	case string:
		return typeString
	case float64, float32, int, int64:
		return typeNumber
	case bool:
		return "boolean"
	}
	return "object"
}

// truthy follows JSON-data truthiness: absent, null, false, 0, NaN and ""
// are all false.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	}
	return true
}

func appendWarning(warnings *[]string, msg string) {
	if warnings != nil {
		*warnings = append(*warnings, msg)
	}
}
