package annotation

import (
	"reflect"
	"testing"

	"github.com/matzehuels/lwcharts/pkg/errors"
)

func TestManagerAsList(t *testing.T) {
	m := NewManager()
	if _, err := m.Add("", New(10, 1.5, "buy")); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if _, err := m.Add("events", New(20, 2, "earnings")); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	m.Layer("empty")
	if err := m.SetVisible("events", false); err != nil {
		t.Fatalf("SetVisible() error: %v", err)
	}

	got, err := m.AsList()
	if err != nil {
		t.Fatalf("AsList() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("AsList() returned %d layers, want 3", len(got))
	}

	first := got[0].(map[string]any)
	want := map[string]any{
		"name":    "default",
		"visible": true,
		"opacity": 1.0,
		"annotations": []any{map[string]any{
			"time": int64(10), "price": 1.5, "text": "buy", "type": "text", "position": "above",
		}},
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("layer[0] = %#v, want %#v", first, want)
	}
	if got[1].(map[string]any)["visible"] != false {
		t.Error("hidden layer should serialize visible=false")
	}
	if anns := got[2].(map[string]any)["annotations"]; !reflect.DeepEqual(anns, []any{}) {
		t.Errorf("empty layer annotations = %#v, want []", anns)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestManagerErrors(t *testing.T) {
	m := NewManager()
	if _, err := m.Add("x", New(1, 1, "")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty text error = %v, want INVALID_INPUT", err)
	}
	bad := New(1, 1, "x")
	bad.Opacity = new(float64)
	*bad.Opacity = 2
	if _, err := m.Add("x", bad); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("opacity error = %v, want INVALID_INPUT", err)
	}
	if _, err := m.Add("x", nil); !errors.Is(err, errors.ErrCodeInvalidType) {
		t.Errorf("nil annotation error = %v, want INVALID_TYPE", err)
	}
	if err := m.SetVisible("missing", true); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("SetVisible(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager()
	m.Layer("a")
	m.Layer("b")
	m.Remove("a")
	m.Remove("nope")

	got, _ := m.AsList()
	if len(got) != 1 || got[0].(map[string]any)["name"] != "b" {
		t.Errorf("AsList() after Remove = %#v", got)
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	got, err := m.AsList()
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("nil AsList() = %#v, %v; want empty list", got, err)
	}
}
