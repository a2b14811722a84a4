package bridge

import (
	"errors"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
	"github.com/osse101/RavenCompanion_Go/internal/metrics"
)

// errCatalogUnavailable is returned when a reload produced no data at all
var errCatalogUnavailable = errors.New(ErrMsgNoItemData)

// validationErrors are the sentinels that mean "rejected, nothing changed"
var validationErrors = []error{
	domain.ErrInvalidInput,
	domain.ErrInvalidTier,
	domain.ErrInvalidMethod,
	domain.ErrAmountOutOfRange,
	domain.ErrValueOutOfRange,
	domain.ErrItemNotFound,
	domain.ErrTargetExists,
	domain.ErrTargetLimit,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// mapErrorToUserMessage converts a service error to the message returned in
// a failed result. invalidMsg, when set, replaces the message of generic
// input errors for the operation.
func mapErrorToUserMessage(err error, invalidMsg string) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, domain.ErrAmountOutOfRange):
		return domain.ErrMsgAmountOutOfRange
	case errors.Is(err, domain.ErrValueOutOfRange):
		return domain.ErrMsgValueOutOfRange
	case errors.Is(err, domain.ErrTargetExists):
		return domain.ErrMsgTargetExists
	case errors.Is(err, domain.ErrTargetLimit):
		return domain.ErrMsgTargetLimit
	case errors.Is(err, domain.ErrItemNotFound):
		return domain.ErrMsgItemNotFound
	case invalidMsg != "" && isValidationError(err):
		return invalidMsg
	case errors.Is(err, domain.ErrInvalidTier):
		return domain.ErrMsgInvalidTier
	case errors.Is(err, domain.ErrInvalidMethod):
		return domain.ErrMsgInvalidMethod
	case errors.Is(err, domain.ErrInvalidInput):
		return ErrMsgInvalidRequest
	}

	// Store and other unexpected failures surface their message so the
	// overlay can show what went wrong with the local file.
	if msg := err.Error(); msg != "" && len(msg) < 200 {
		return msg
	}
	return ErrMsgGenericFailure
}

// outcomeOf classifies an error for the operation metrics
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case isValidationError(err):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
