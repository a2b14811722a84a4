package item

// ==================== Warnings ====================

// Load warnings, shown to the user alongside validation warnings
const (
	WarnFmtLoadFailed   = "%s: could not be loaded, using an empty list"
	WarnFmtMissingIDs   = "%s: %d items without a usable id skipped"
	WarnFmtDuplicateIDs = "%s: %d duplicate ids skipped"
)

// ==================== Defaults ====================

// DefaultBonusStat names a legacy bonus with no stat
const DefaultBonusStat = "Unknown"

// Required fields passed to the validator; resources with a built-in
// schema ignore them
var (
	CosmeticRequiredFields = []string{"name"}
	TrophyRequiredFields   = []string{"name", "type"}
)

// ==================== Log Messages ====================

const (
	LogMsgDataFileLoadFailed = "Failed to load data file, using fallback"
	LogMsgCatalogLoaded      = "Item catalog loaded"
	LogMsgCatalogWarning     = "Item data warning"
)
