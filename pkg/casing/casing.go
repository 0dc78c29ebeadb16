// Package casing converts identifiers between snake_case and camelCase.
//
// Option documents declare their fields in snake_case while the rendering
// surface expects camelCase keys. This package is the single place that
// knows how to translate between the two.
//
// # Conversions
//
//	casing.SnakeToCamel("price_scale_id") // "priceScaleId"
//	casing.CamelToSnake("priceScaleId")   // "price_scale_id"
//
// Runs of capitals are not treated as acronyms: every upper-case letter starts
// a new segment, so "HTTPStatus" becomes "h_t_t_p_status".
//
// # Round Trips
//
// For identifiers without a digit directly after an underscore,
// CamelToSnake(SnakeToCamel(x)) == x. Digits break the round trip in one
// direction:
//
//	SnakeToCamel("option_123_value") // "option123Value"
//	CamelToSnake("option123Value")   // "option123_value"
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Direction selects the conversion applied by [ConvertKeys].
type Direction int

const (
	// ToCamel converts snake_case keys to camelCase.
	ToCamel Direction = iota
	// ToSnake converts camelCase keys to snake_case.
	ToSnake
)

// SnakeToCamel converts a snake_case identifier to camelCase.
//
// Leading, trailing and repeated underscores are dropped before splitting.
// The first segment is lower-cased and every following segment is
// title-cased. When the input starts with an underscore the first segment is
// title-cased as well, producing PascalCase.
func SnakeToCamel(s string) string {
	if s == "" {
		return ""
	}
	leading := strings.HasPrefix(s, "_")

	parts := strings.Split(strings.Trim(s, "_"), "_")
	var b strings.Builder
	b.Grow(len(s))
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		if first && !leading {
			b.WriteString(strings.ToLower(p))
		} else {
			b.WriteString(title(p))
		}
		first = false
	}
	return b.String()
}

// CamelToSnake converts a camelCase identifier to snake_case by inserting an
// underscore before every upper-case letter (except at the start) and
// lower-casing the result.
func CamelToSnake(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// title upper-cases the first rune of s and lower-cases the rest.
func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// ConvertKeys returns a copy of v with every string map key converted in the
// given direction. Maps may be map[string]any or map[any]any (as produced by
// YAML decoders); non-string keys are kept as they are.
//
// When recursive is true, nested maps and maps inside slices are converted
// too. Otherwise only the top-level keys change and nested values are shared
// with the input. The input is never modified.
func ConvertKeys(v any, dir Direction, recursive bool) any {
	conv := SnakeToCamel
	if dir == ToSnake {
		conv = CamelToSnake
	}
	return convert(v, conv, recursive, true)
}

// ConvertMap is a typed convenience wrapper around [ConvertKeys] for the
// common map[string]any case.
func ConvertMap(m map[string]any, dir Direction, recursive bool) map[string]any {
	if m == nil {
		return nil
	}
	out, _ := ConvertKeys(m, dir, recursive).(map[string]any)
	return out
}

func convert(v any, conv func(string) string, recursive, top bool) any {
	if !top && !recursive {
		return v
	}
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[conv(k)] = convert(val, conv, recursive, false)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(x))
		for k, val := range x {
			if ks, ok := k.(string); ok {
				out[conv(ks)] = convert(val, conv, recursive, false)
				continue
			}
			out[k] = convert(val, conv, recursive, false)
		}
		return out
	case []any:
		if top {
			// Slices at the top level hold maps that still need converting.
			out := make([]any, len(x))
			for i, el := range x {
				out[i] = convert(el, conv, recursive, true)
			}
			return out
		}
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = convert(el, conv, recursive, false)
		}
		return out
	default:
		return v
	}
}
