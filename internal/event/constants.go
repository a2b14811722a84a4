package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Event types
const (
	AlertRaised     Type = "alert.raised"
	DataReloaded    Type = "data.reloaded"
	MilestoneLogged Type = "counter.milestone_recorded"
	ProgressReset   Type = "progress.reset"
)

// AlertTypeReset marks the daily reset notification
const AlertTypeReset = "reset"

// Log message constants
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
	LogMsgEventPublished     = "Event published"
)
