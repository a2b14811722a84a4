package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// ResetAlertInterval is how often the reset alert checks the clock
	ResetAlertInterval = 60 * time.Second

	// WorkerCount is the number of background workers
	WorkerCount = 1

	// WorkerQueueSize bounds queued background jobs
	WorkerQueueSize = 8

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout = 5 * time.Second
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized = "Logging initialized"
	LogMsgStarting           = "Starting RavenCompanion"
	LogMsgConfigLoaded       = "Configuration loaded"
	LogMsgConfigWarning      = "Configuration warning"
	LogMsgStoreOpened        = "Progress store opened"
	LogMsgCatalogLoaded      = "Item data loaded"
	LogMsgCatalogWarning     = "Item data warning"
	LogMsgBackgroundStarted  = "Background jobs started"
	LogMsgShuttingDown       = "Shutting down"
	LogMsgMetricsWriteFailed = "Failed to write metrics textfile"
	LogMsgStoreCloseFailed   = "Failed to close progress store"
	LogMsgShutdownComplete   = "Shutdown complete"
	LogMsgOldLogRemoveFailed = "Failed to delete old log file"
	LogMsgTimezoneFallback   = "Reset time zone unavailable, using UTC"
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgCreateLogDirFailed = "failed to create logs directory: %w"
	ErrMsgOpenLogFileFailed  = "failed to open log file: %w"
	ErrMsgOpenStoreFailed    = "failed to open progress store: %w"
	ErrMsgUnknownStoreDriver = "unknown store driver %q"
	ErrMsgLoadCounterTypes   = "failed to load counter types: %w"
)
