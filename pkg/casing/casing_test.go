package casing

import (
	"reflect"
	"testing"
)

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"price_scale_id", "priceScaleId"},
		{"visible", "visible"},
		{"top_fill_color1", "topFillColor1"},
		{"option_123_value", "option123Value"},
		{"a__b", "aB"},
		{"trailing_", "trailing"},
		{"_private_field", "PrivateField"},
		{"__dunder__", "Dunder"},
		{"LINE_WIDTH", "lineWidth"},
		{"", ""},
		{"___", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SnakeToCamel(tt.in); got != tt.want {
				t.Errorf("SnakeToCamel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"priceScaleId", "price_scale_id"},
		{"visible", "visible"},
		{"PriceScale", "price_scale"},
		{"HTTPStatus", "h_t_t_p_status"},
		{"option123Value", "option123_value"},
		{"topFillColor1", "top_fill_color1"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CamelToSnake(tt.in); got != tt.want {
				t.Errorf("CamelToSnake(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	snake := []string{
		"price_scale_id",
		"last_value_visible",
		"crosshair_marker_background_color",
		"z_index",
		"top_fill_color1",
	}
	for _, s := range snake {
		if got := CamelToSnake(SnakeToCamel(s)); got != s {
			t.Errorf("CamelToSnake(SnakeToCamel(%q)) = %q", s, got)
		}
	}

	camel := []string{"priceScaleId", "lineWidth", "zIndex", "autoSize"}
	for _, c := range camel {
		if got := SnakeToCamel(CamelToSnake(c)); got != c {
			t.Errorf("SnakeToCamel(CamelToSnake(%q)) = %q", c, got)
		}
	}
}

func TestRoundTripDigitException(t *testing.T) {
	camel := SnakeToCamel("option_123_value")
	if camel != "option123Value" {
		t.Fatalf("SnakeToCamel = %q, want option123Value", camel)
	}
	if got := CamelToSnake(camel); got != "option123_value" {
		t.Errorf("CamelToSnake(%q) = %q, want option123_value", camel, got)
	}
}

func TestConvertKeysRecursive(t *testing.T) {
	in := map[string]any{
		"price_scale_id": "right",
		"scale_margins":  map[string]any{"top_margin": 0.1},
		"price_lines": []any{
			map[string]any{"line_width": 2},
			"plain",
		},
	}

	got := ConvertKeys(in, ToCamel, true)
	want := map[string]any{
		"priceScaleId": "right",
		"scaleMargins": map[string]any{"topMargin": 0.1},
		"priceLines": []any{
			map[string]any{"lineWidth": 2},
			"plain",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConvertKeys() = %#v, want %#v", got, want)
	}

	// Input untouched
	if _, ok := in["price_scale_id"]; !ok {
		t.Error("ConvertKeys mutated its input")
	}
	nested := in["scale_margins"].(map[string]any)
	if _, ok := nested["top_margin"]; !ok {
		t.Error("ConvertKeys mutated a nested input map")
	}
}

func TestConvertKeysShallow(t *testing.T) {
	in := map[string]any{
		"scale_margins": map[string]any{"top_margin": 0.1},
	}
	got := ConvertMap(in, ToCamel, false)
	inner, ok := got["scaleMargins"].(map[string]any)
	if !ok {
		t.Fatalf("scaleMargins missing: %#v", got)
	}
	if _, ok := inner["top_margin"]; !ok {
		t.Errorf("shallow conversion touched nested keys: %#v", inner)
	}
}

func TestConvertKeysNonStringKeys(t *testing.T) {
	in := map[any]any{
		"line_width": 1,
		42:           "answer",
		"nested":     map[any]any{"z_index": 5},
	}
	got := ConvertKeys(in, ToCamel, true).(map[any]any)

	if got[42] != "answer" {
		t.Errorf("non-string key not preserved: %#v", got)
	}
	if got["lineWidth"] != 1 {
		t.Errorf("lineWidth = %v, want 1", got["lineWidth"])
	}
	nested := got["nested"].(map[any]any)
	if nested["zIndex"] != 5 {
		t.Errorf("nested zIndex = %v, want 5", nested["zIndex"])
	}
}

func TestConvertKeysToSnake(t *testing.T) {
	in := map[string]any{"priceScaleId": "left", "scaleMargins": map[string]any{"topMargin": 1}}
	got := ConvertMap(in, ToSnake, true)
	want := map[string]any{"price_scale_id": "left", "scale_margins": map[string]any{"top_margin": 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ConvertMap() = %#v, want %#v", got, want)
	}
}

func TestConvertMapNil(t *testing.T) {
	if got := ConvertMap(nil, ToCamel, true); got != nil {
		t.Errorf("ConvertMap(nil) = %#v, want nil", got)
	}
}
