package bridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the tier, method and item type rules
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
		return domain.Tier(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("method", func(fl validator.FieldLevel) bool {
		return domain.Method(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("itemtype", func(fl validator.FieldLevel) bool {
		return domain.ItemType(fl.Field().String()).Valid()
	})

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// fieldErrors maps struct fields to the domain error their failure means.
// Fields not listed fall back to ErrInvalidInput.
var fieldErrors = map[string]error{
	"Amount": domain.ErrAmountOutOfRange,
	"Value":  domain.ErrValueOutOfRange,
	"Count":  domain.ErrValueOutOfRange,
	"Tier":   domain.ErrInvalidTier,
	"Method": domain.ErrInvalidMethod,
}

// toDomainError converts a validation failure to the domain error of its
// first failing field, keeping the field list in the message.
func toDomainError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	base := domain.ErrInvalidInput
	if mapped, ok := fieldErrors[validationErrors[0].Field()]; ok {
		base = mapped
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, strings.ToLower(e.Field())+" ("+e.Tag()+")")
	}
	return fmt.Errorf("%w: %s", base, strings.Join(fields, ", "))
}
