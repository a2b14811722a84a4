package validation

// Data resource names with built-in field schemas
const (
	ResourceCosmetics = "cosmetics.json"
	ResourceTrophies  = "trophies.json"
)

// Embedded JSON schema names
const (
	SchemaCosmetics = "cosmetics.schema.json"
	SchemaTrophies  = "trophies.schema.json"
)

// Primitive type names used by field schemas
const (
	typeString = "string"
	typeNumber = "number"
)

// Warning formats
const (
	WarnMissingItemsArray = "%s: missing items array"
	WarnMissingFields     = "%s: %d missing required fields"
)

// fieldSchema maps a required field to its primitive type
type fieldSchema struct {
	field string
	kind  string
}

// itemSchemas take precedence over caller supplied required fields.
// Fields are checked in the listed order.
var itemSchemas = map[string][]fieldSchema{
	ResourceCosmetics: {
		{field: "id", kind: typeString},
		{field: "name", kind: typeString},
	},
	ResourceTrophies: {
		{field: "id", kind: typeString},
		{field: "name", kind: typeString},
		{field: "type", kind: typeString},
	},
}

// SchemaFor returns the embedded JSON schema for a data resource name.
func SchemaFor(resource string) (string, bool) {
	switch resource {
	case ResourceCosmetics:
		return SchemaCosmetics, true
	case ResourceTrophies:
		return SchemaTrophies, true
	}
	return "", false
}
