package constraint

import (
	"reflect"
	"strings"
	"time"
)

// isNil reports whether the value is absent: an untyped nil or a typed
// nil pointer, map, slice, or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// floatOf coerces any Go numeric type to float64.
func floatOf(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// stringOf returns the value as a string when it is one.
func stringOf(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// timeOf returns the value as a time.Time, dereferencing pointers.
func timeOf(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return *t, true
	default:
		return time.Time{}, false
	}
}

// lengthOf returns the element count of strings, slices, arrays, and
// maps.
func lengthOf(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return len(s), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

// isBlank reports whether a value is missing for the purpose of the
// required constraint: nil, a whitespace-only string, or an empty
// collection.
func isBlank(v any) bool {
	if isNil(v) {
		return true
	}

	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}

	if n, ok := lengthOf(v); ok {
		return n == 0
	}
	return false
}

// truthy interprets checkbox-style acceptance values.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "on", "1":
			return true
		}
		return false
	default:
		if f, ok := floatOf(v); ok {
			return f != 0
		}
		return false
	}
}
