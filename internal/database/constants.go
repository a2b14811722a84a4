// Package database holds the key-value store implementations behind
// repository.Store.
package database

// Error Messages - Store Operations
const (
	ErrMsgEncodeValueFailed = "failed to encode value for %s: %w"
	ErrMsgDecodeValueFailed = "failed to decode value for %s: %w"
)
