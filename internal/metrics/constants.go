package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Operation metric names
const (
	MetricNameOperationsTotal    = "companion_operations_total"
	MetricNameOperationDuration  = "companion_operation_duration_seconds"
	MetricNameOperationsInFlight = "companion_operations_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "companion_events_published_total"
	MetricNameAlertsSent      = "companion_alerts_sent_total"
)

// Catalog metric names
const (
	MetricNameCatalogItems    = "companion_catalog_items"
	MetricNameCatalogWarnings = "companion_catalog_warnings"
	MetricNameMilestones      = "companion_milestones_recorded_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextOperationsTotal    = "Total number of boundary operations by outcome"
	HelpTextOperationDuration  = "Boundary operation latency in seconds"
	HelpTextOperationsInFlight = "Boundary operations currently running"
	HelpTextEventsPublished    = "Total number of events seen on the bus"
	HelpTextAlertsSent         = "Total number of alerts forwarded to the overlay"
	HelpTextCatalogItems       = "Items in the loaded catalog"
	HelpTextCatalogWarnings    = "Warnings produced by the last catalog load"
	HelpTextMilestones         = "Milestones recorded by acquisition method"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelType      = "type"
	LabelKind      = "kind"
	LabelMethod    = "method"
)

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Kind label values
const (
	KindCosmetic = "cosmetic"
	KindTrophy   = "trophy"
)

// OperationLatencyBuckets are histogram buckets for local store operations
var OperationLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded     = "Metrics recorded"
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgTextfileWritten     = "Metrics textfile written"
)
