package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Body is a loosely typed JSON request object. Numbers are kept as json.Number.
type Body map[string]any

// truthy reports whether v would pass a JavaScript boolean test.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return x != 0 && !math.IsNaN(x)
	case int:
		return x != 0
	default:
		return true
	}
}

// stringify renders a scalar body value as text.
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// textOrNull returns v as text when truthy and nil otherwise.
func textOrNull(v any) *string {
	if !truthy(v) {
		return nil
	}
	s := stringify(v)
	return &s
}

// textAsGiven returns v as text unless it is absent or null.
func textAsGiven(v any) *string {
	if v == nil {
		return nil
	}
	s := stringify(v)
	return &s
}

// toNumber converts v to a float64 the way a numeric cast would, reporting
// false for values that are not numbers.
func toNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, !math.IsNaN(x)
	case int:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// numberOrZero coerces v to a number, using 0 for absent, falsy and invalid values.
func numberOrZero(v any) float64 {
	if !truthy(v) {
		return 0
	}
	f, ok := toNumber(v)
	if !ok {
		return 0
	}
	return f
}

// integerOrZero is numberOrZero truncated toward zero.
func integerOrZero(v any) int64 {
	return int64(math.Trunc(numberOrZero(v)))
}

// numberOrNull coerces v to a number, using nil for absent and invalid values.
func numberOrNull(v any) *float64 {
	if v == nil {
		return nil
	}
	f, ok := toNumber(v)
	if !ok {
		return nil
	}
	return &f
}

// boolOr returns v when it is a JSON boolean and def otherwise.
func boolOr(v any, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// notFalse is true for everything except a literal JSON false.
func notFalse(v any) bool {
	b, ok := v.(bool)
	return !ok || b
}

// jsonOrEmptyList serialises v, substituting an empty list when v is falsy.
func jsonOrEmptyList(v any) json.RawMessage {
	if !truthy(v) {
		return json.RawMessage(`[]`)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`[]`)
	}
	return b
}

// deref returns the pointed-to string or "".
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
