package repository

// Error messages
const (
	ErrMsgReadKeyFailed  = "failed to read %s: %w"
	ErrMsgWriteKeyFailed = "failed to write %s: %w"
)

// Log messages
const (
	LogMsgKeyCleared = "Progress key cleared"
)
