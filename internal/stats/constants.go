package stats

// ==================== Display Labels ====================

// UncategorizedLabel groups items whose category is empty
const UncategorizedLabel = "Uncategorized"

// ==================== Trophy Status Filters ====================

const (
	StatusAllTiers = "all-tiers"
	StatusPartial  = "partial"
	StatusBaseOnly = "base-only"
	StatusNone     = "none"
)

// ==================== Log Messages ====================

const (
	LogMsgSummaryComputed = "Collection summary computed"
)

// ==================== Error Messages ====================

const (
	ErrMsgLoadTrophyStatesFailed   = "failed to load trophy states: %w"
	ErrMsgLoadCosmeticStatesFailed = "failed to load cosmetic states: %w"
)
