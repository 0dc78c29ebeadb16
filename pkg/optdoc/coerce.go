package optdoc

import (
	"encoding/json"
	"fmt"
	"math"
)

// Coerce converts v into T. Exact type matches always succeed; otherwise
// numbers are converted between Go numeric kinds (integers only when the value
// is integral) and enum types parse primitives through [ValueParser].
func Coerce[T any](v any) (T, bool) {
	if t, ok := v.(T); ok {
		return t, true
	}
	var zero T
	if p, ok := any(&zero).(ValueParser); ok {
		if p.ParseValue(v) {
			return zero, true
		}
		return zero, false
	}
	switch any(zero).(type) {
	case float64:
		if f, ok := ToFloat(v); ok {
			return any(f).(T), true
		}
	case int:
		if n, ok := ToInt(v); ok {
			return any(int(n)).(T), true
		}
	case int64:
		if n, ok := ToInt(v); ok {
			return any(n).(T), true
		}
	}
	return zero, false
}

// ToFloat converts any Go numeric value (or json.Number) to float64.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
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
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ToInt converts an integral numeric value to int64. Floats are accepted only
// when they have no fractional part and fit in an int64.
func ToInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	}
	f, ok := ToFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// ParseIntEnum stores v into dst when it is an integral number accepted by
// valid. Enum types use it to implement [ValueParser].
func ParseIntEnum[T ~int](dst *T, v any, valid func(T) bool) bool {
	n, ok := ToInt(v)
	if !ok {
		return false
	}
	t := T(n)
	if valid != nil && !valid(t) {
		return false
	}
	*dst = t
	return true
}

// ParseStringEnum stores v into dst when it is a string (or fmt.Stringer)
// accepted by valid.
func ParseStringEnum[T ~string](dst *T, v any, valid func(T) bool) bool {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	default:
		return false
	}
	t := T(s)
	if valid != nil && !valid(t) {
		return false
	}
	*dst = t
	return true
}

// AsMap returns v as a string-keyed mapping. map[any]any values (as decoded
// from YAML) are copied with their keys formatted as strings.
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, x := range m {
			if ks, ok := k.(string); ok {
				out[ks] = x
				continue
			}
			out[fmt.Sprint(k)] = x
		}
		return out, true
	default:
		return nil, false
	}
}

// AsSlice returns v as []any when it is a generic sequence.
func AsSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []map[string]any:
		out := make([]any, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}
