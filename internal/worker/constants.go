package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgJobDropped is logged when the queue is full or the pool is stopping
const LogMsgJobDropped = "Worker queue full, job dropped"

// ============================================================================
// Log Messages - Reset Alert
// ============================================================================

const (
	LogMsgResetAlertSent   = "Daily reset alert sent"
	LogMsgResetAlertFailed = "Daily reset alert failed"
)

// ============================================================================
// Reset Alert
// ============================================================================

const (
	// ResetAlertMessage is the toast text shown at the daily reset
	ResetAlertMessage = "Daily reset (6AM PST). Reload data if needed."

	// DateKeyLayout formats the reset-zone calendar date
	DateKeyLayout = "2006-01-02"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
