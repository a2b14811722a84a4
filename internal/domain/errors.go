package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidTypeOrID  = "Invalid type or id"
	ErrMsgInvalidTrophy    = "Invalid trophy id or tier"
	ErrMsgInvalidCosmetic  = "Invalid cosmetic id"
	ErrMsgInvalidTier      = "invalid tier"
	ErrMsgInvalidMethod    = "invalid method"
	ErrMsgAmountOutOfRange = "amount must be an integer between -1000 and 1000"
	ErrMsgValueOutOfRange  = "value must be an integer between 0 and 999999"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Target errors
	ErrMsgTargetExists = "target already active"
	ErrMsgTargetLimit  = "maximum of 5 active targets"

	// Store errors
	ErrMsgStoreFailure = "store failure"
)

var (
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidTier      = errors.New(ErrMsgInvalidTier)
	ErrInvalidMethod    = errors.New(ErrMsgInvalidMethod)
	ErrAmountOutOfRange = errors.New(ErrMsgAmountOutOfRange)
	ErrValueOutOfRange  = errors.New(ErrMsgValueOutOfRange)
	ErrItemNotFound     = errors.New(ErrMsgItemNotFound)
	ErrTargetExists     = errors.New(ErrMsgTargetExists)
	ErrTargetLimit      = errors.New(ErrMsgTargetLimit)
	ErrStoreFailure     = errors.New(ErrMsgStoreFailure)
)
