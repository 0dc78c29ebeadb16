package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/document"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/store"
)

func testDoc(t *testing.T, ids ...string) document.Document {
	t.Helper()
	var docs []document.Document
	for _, id := range ids {
		d, err := document.Assemble(document.Input{ChartID: id, Options: map[string]any{"height": 300}})
		if err != nil {
			t.Fatalf("Assemble() error: %v", err)
		}
		docs = append(docs, d)
	}
	doc, err := document.Combine(docs...)
	if err != nil {
		t.Fatalf("Combine() error: %v", err)
	}
	return doc
}

// fakeSurface records frames and replies with a canned event.
type fakeSurface struct {
	frames []Frame
	reply  map[string]any
	err    error
	closed int
}

func (f *fakeSurface) Name() string { return "fake" }

func (f *fakeSurface) Render(ctx context.Context, fr Frame) (map[string]any, error) {
	f.frames = append(f.frames, fr)
	return f.reply, f.err
}

func (f *fakeSurface) Close() error {
	f.closed++
	return nil
}

func TestInitRequiresSurface(t *testing.T) {
	if _, err := Init(nil, nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Init(nil) error = %v, want INVALID_INPUT", err)
	}
}

func TestDispatch(t *testing.T) {
	surface := &fakeSurface{reply: map[string]any{
		"type":    "click",
		"chartId": "a",
		"time":    "2024-01-02",
		"price":   101,
	}}
	bc, err := Init(surface, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	resp, err := bc.Dispatch(context.Background(), testDoc(t, "a", "b"))
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if len(surface.frames) != 1 {
		t.Fatalf("surface got %d frames, want 1", len(surface.frames))
	}
	if got := strings.Join(surface.frames[0].ChartIDs, ","); got != "a,b" {
		t.Errorf("ChartIDs = %s, want a,b", got)
	}
	if !json.Valid(surface.frames[0].Payload) {
		t.Error("payload is not valid JSON")
	}

	if resp.Type != ResponseClick || resp.ChartID != "a" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Time == nil || *resp.Time != 1704153600 {
		t.Errorf("Time = %v, want 1704153600", resp.Time)
	}
	if resp.Price == nil || *resp.Price != 101 {
		t.Errorf("Price = %v, want 101", resp.Price)
	}
}

func TestDispatchNoReply(t *testing.T) {
	bc, _ := Init(&fakeSurface{}, nil)
	resp, err := bc.Dispatch(context.Background(), testDoc(t, "a"))
	if err != nil || resp != nil {
		t.Errorf("Dispatch() = %v, %v; want nil, nil", resp, err)
	}
}

func TestDispatchUnknownTypeWarns(t *testing.T) {
	var buf bytes.Buffer
	bc, _ := Init(&fakeSurface{reply: map[string]any{"type": "zoom"}}, log.New(&buf))
	resp, err := bc.Dispatch(context.Background(), testDoc(t, "a"))
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if resp.Known() {
		t.Error("zoom should not be a known response")
	}
	if !strings.Contains(buf.String(), "unknown response type") {
		t.Errorf("log = %q, want a warning", buf.String())
	}
}

func TestDispatchAfterClose(t *testing.T) {
	surface := &fakeSurface{}
	bc, _ := Init(surface, nil)
	if err := bc.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := bc.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
	if surface.closed != 1 {
		t.Errorf("surface closed %d times, want 1", surface.closed)
	}
	if _, err := bc.Dispatch(context.Background(), testDoc(t, "a")); err == nil {
		t.Error("Dispatch() after Close should fail")
	}
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		in      map[string]any
		wantErr errors.Code
		check   func(*Response) bool
	}{
		{"nil", nil, "", func(r *Response) bool { return r == nil }},
		{"missing type", map[string]any{"chartId": "a"}, errors.ErrCodeInvalidFormat, nil},
		{"non-string type", map[string]any{"type": 3}, errors.ErrCodeInvalidType, nil},
		{"bad field type", map[string]any{"type": "click", "price": "high"}, errors.ErrCodeInvalidType, nil},
		{"ready", map[string]any{"type": "ready"}, "", func(r *Response) bool {
			return r.Type == ResponseReady && r.Known()
		}},
		{"range", map[string]any{"type": "visibleRangeChange", "from": 100, "to": 200.0}, "", func(r *Response) bool {
			return *r.From == 100 && *r.To == 200
		}},
		{"snake keys", map[string]any{"type": "click", "series_id": "s1", "extra": true}, "", func(r *Response) bool {
			return r.SeriesID != nil && *r.SeriesID == "s1" && r.Raw["extra"] == true
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseResponse(tt.in)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseResponse() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResponse() error: %v", err)
			}
			if !tt.check(r) {
				t.Errorf("ParseResponse() = %+v", r)
			}
		})
	}
}

func TestResponseErr(t *testing.T) {
	var nilResp *Response
	if nilResp.Err() != nil {
		t.Error("nil response should carry no error")
	}
	r, _ := ParseResponse(map[string]any{"type": "error", "message": "canvas lost"})
	if err := r.Err(); err == nil || !strings.Contains(err.Error(), "canvas lost") {
		t.Errorf("Err() = %v, want surface message", err)
	}
}

func TestWriterSurface(t *testing.T) {
	var buf bytes.Buffer
	bc, _ := Init(NewWriterSurface(&buf, true), nil)
	if _, err := bc.Dispatch(context.Background(), testDoc(t, "a")); err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "}\n") || !strings.Contains(out, "\n  \"charts\"") {
		t.Errorf("output not indented JSON:\n%s", out)
	}
	var back map[string]any
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Errorf("output is not JSON: %v", err)
	}
}

func TestStoreSurface(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	keyer := store.NewScopedKeyer(nil, "ws:")
	bc, _ := Init(NewStoreSurface(mem, keyer, time.Hour, nil), nil)

	resp, err := bc.Dispatch(ctx, testDoc(t, "a", "b"))
	if err != nil || resp != nil {
		t.Fatalf("Dispatch() = %v, %v; want nil, nil", resp, err)
	}
	for _, id := range []string{"a", "b"} {
		data, ok, _ := mem.Get(ctx, keyer.DocumentKey(id))
		if !ok || !json.Valid(data) {
			t.Errorf("document for %s not published", id)
		}
	}

	_ = mem.Set(ctx, keyer.EventKey("a"), []byte(`{"type":"crosshairMove","time":1700000000,"price":1.5}`), 0)
	resp, err = bc.Dispatch(ctx, testDoc(t, "a", "b"))
	if err != nil {
		t.Fatalf("Dispatch() error: %v", err)
	}
	if resp == nil || resp.Type != ResponseCrosshair || *resp.Price != 1.5 {
		t.Errorf("response = %+v", resp)
	}
	if _, ok, _ := mem.Get(ctx, keyer.EventKey("a")); ok {
		t.Error("event should be consumed")
	}

	_ = mem.Set(ctx, keyer.EventKey("a"), []byte(`not json`), 0)
	if _, err := bc.Dispatch(ctx, testDoc(t, "a")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Dispatch() error = %v, want INVALID_FORMAT", err)
	}
}

func TestStoreSurfaceNoCharts(t *testing.T) {
	s := NewStoreSurface(store.NewMemoryStore(), nil, 0, nil)
	if _, err := s.Render(context.Background(), Frame{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Render() error = %v, want INVALID_INPUT", err)
	}
}
