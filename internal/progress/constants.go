package progress

// ==================== Log Messages ====================

const (
	LogMsgCollectedToggled  = "Collected state toggled"
	LogMsgTrophyTierSaved   = "Trophy tier saved"
	LogMsgCosmeticSaved     = "Cosmetic state saved"
	LogMsgMaterialSet       = "Material quantity set"
	LogMsgMaterialsComplete = "All materials gathered, cosmetic marked collected"
	LogMsgProgressReset     = "All progress reset"
)

// ==================== Error Messages ====================

const (
	ErrMsgUnknownCosmetic = "%w: cosmetic %q"
	ErrMsgUnknownMaterial = "%w: material %q of cosmetic %q"
)
