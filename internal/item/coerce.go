package item

import (
	"math"
	"strconv"
	"strings"

	"github.com/osse101/RavenCompanion_Go/internal/domain"
)

// stringOf returns v when it is a string, otherwise "".
func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

// textOf renders scalars as text; anything else becomes "".
func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}

// numberOf coerces numeric-like input. ok is false when v is not usable.
func numberOf(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case int:
		n = float64(x)
	case bool:
		if x {
			n = 1
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	case nil:
		return 0, true
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// nonNegative coerces v to a number >= 0, defaulting to 0.
func nonNegative(v any) float64 {
	n, ok := numberOf(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// quantityOf coerces v to a whole non-negative quantity no larger than
// domain.MaxCounterValue.
func quantityOf(v any) int {
	return int(math.Round(min(nonNegative(v), domain.MaxCounterValue)))
}

func listOf(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

func objectOf(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
