package bridge

// Operation names, used as metric labels and in logs
const (
	OpToggleCollected     = "toggle_collected"
	OpSaveTrophyTierState = "save_trophy_tier_state"
	OpSaveCosmeticState   = "save_cosmetic_state"
	OpSetMaterial         = "set_material"
	OpIncrementCounter    = "increment_counter"
	OpSetCounter          = "set_counter"
	OpResetCounter        = "reset_counter"
	OpGetCounter          = "get_counter"
	OpRecordMilestone     = "record_milestone"
	OpRemoveMilestone     = "remove_milestone"
	OpGetGlobalStats      = "get_global_stats"
	OpResetAllCounters    = "reset_all_counters"
	OpResetAllProgress    = "reset_all_progress"
	OpGetData             = "get_data"
	OpReloadData          = "reload_data"
	OpSummary             = "summary"
	OpFilterTrophies      = "filter_trophies"
	OpFilterCosmetics     = "filter_cosmetics"
	OpAddTarget           = "add_target"
	OpRemoveTarget        = "remove_target"
	OpListTargets         = "list_targets"
)

// User-facing error messages
const (
	ErrMsgGenericFailure = "Something went wrong"
	ErrMsgInvalidRequest = "Invalid request"
	ErrMsgNoItemData     = "Item data could not be loaded"
)

// Log messages
const (
	LogMsgOperationFailed    = "Operation failed"
	LogMsgOperationRejected  = "Operation rejected"
	LogMsgOperationCompleted = "Operation completed"
	LogMsgEventPublishFailed = "Event publish failed"
)
