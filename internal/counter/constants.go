package counter

// ==================== Counter Types ====================

const (
	TypeKills     = "kills"
	TypeSeaKills  = "seaKills"
	TypeAttempts  = "attempts"
	TypeBossKills = "bossKills"
)

// ==================== Error Messages ====================

const (
	ErrMsgLoadCountersFailed     = "failed to load counters: %w"
	ErrMsgSaveGlobalStatsFailed  = "failed to save global stats: %w"
	ErrMsgLoadGlobalStatsFailed  = "failed to load global stats: %w"
	ErrMsgReadDescriptorsFailed  = "failed to read counter types %s: %w"
	ErrMsgParseDescriptorsFailed = "failed to parse counter types %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgCounterUpdated    = "Counter updated"
	LogMsgMilestoneRecorded = "Milestone recorded"
	LogMsgMilestoneRemoved  = "Milestone removed"
	LogMsgCountersReset     = "All counters reset"
)
