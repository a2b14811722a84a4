package domain

// Persisted store keys.
const (
	KeyTrophyStates   = "trophy-states"
	KeyCosmeticStates = "cosmetics-state"
	KeyCounters       = "kill-counters"
	KeyGlobalStats    = "global-stats"
	KeyActiveTargets  = "active-targets"
)

// Keys of the collected-toggle history per item type.
const (
	KeyCosmeticCollected = "cosmetic-collected"
	KeyTrophyCollected   = "trophy-collected"
)

// CounterKeys are cleared by a counter reset. Global stats are derived from
// milestones, so they go with them.
var CounterKeys = []string{
	KeyCounters,
	KeyGlobalStats,
}

// ProgressKeys are cleared by a full progress reset.
var ProgressKeys = []string{
	KeyTrophyStates,
	KeyCosmeticStates,
	KeyCosmeticCollected,
	KeyTrophyCollected,
	KeyCounters,
	KeyGlobalStats,
	KeyActiveTargets,
}

// CollectedKey is the store key of the collected-toggle history of an item type.
func CollectedKey(t ItemType) string {
	return string(t) + "-collected"
}
