package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/definition"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/observability"
	"github.com/matzehuels/lwcharts/pkg/store"
)

const chartsTOML = `
[sync]
crosshair = true

[[charts]]
id = "spy"
[charts.options]
height = 450

[[charts.series]]
type = "line"
data = [{ time = "2024-01-01", value = 470.5 }, { time = "2024-01-08", value = 476.0 }]

[[charts]]
id = "qqq"
group = 0

[[charts.series]]
type = "histogram"
data = [{ time = "2024-01-01", value = 1.0 }]
`

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietRunner(st store.Store) *Runner {
	return NewRunner(st, nil, log.New(&bytes.Buffer{}))
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr errors.Code
		want    definition.Format
	}{
		{"no source", Options{}, errors.ErrCodeInvalidInput, ""},
		{"toml by extension", Options{Source: "a.toml"}, "", definition.FormatTOML},
		{"explicit format", Options{Source: "a.txt", Format: definition.FormatYAML}, "", definition.FormatYAML},
		{"unknown extension", Options{Source: "a.txt"}, errors.ErrCodeUnsupported, ""},
		{"in-memory definition", Options{Definition: &definition.Definition{}}, "", ""},
		{"negative ttl", Options{Source: "a.yaml", TTL: -time.Second}, errors.ErrCodeInvalidInput, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.ValidateAndSetDefaults()
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ValidateAndSetDefaults() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAndSetDefaults() error: %v", err)
			}
			if opts.Format != tt.want {
				t.Errorf("Format = %q, want %q", opts.Format, tt.want)
			}
			if opts.Logger == nil {
				t.Error("Logger should default to a discard logger")
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				t.Errorf("second call error: %v", err)
			}
		})
	}
}

func TestExecuteWritesOutput(t *testing.T) {
	var out bytes.Buffer
	r := quietRunner(nil)
	res, err := r.Execute(context.Background(), Options{
		Source: writeDefinition(t, "charts.toml", chartsTOML),
		Output: &out,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Stats.ChartCount != 2 || res.Stats.SeriesCount != 2 {
		t.Errorf("stats = %+v", res.Stats)
	}
	if res.PublishInfo.Published {
		t.Error("nothing should be published without Publish")
	}

	var doc map[string]any
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	charts := doc["charts"].([]any)
	if len(charts) != 2 || charts[0].(map[string]any)["chartId"] != "spy" {
		t.Errorf("charts = %v", charts)
	}
	if _, ok := doc["syncConfig"]; !ok {
		t.Error("syncConfig missing")
	}
	if strings.TrimSpace(out.String()) != string(res.Payload) {
		t.Error("output should be the unindented payload")
	}
}

func TestExecuteNoSync(t *testing.T) {
	r := quietRunner(nil)
	res, err := r.Execute(context.Background(), Options{
		Source: writeDefinition(t, "charts.toml", chartsTOML),
		NoSync: true,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if _, ok := res.Document["syncConfig"]; ok {
		t.Error("syncConfig should be dropped with NoSync")
	}
}

func TestExecutePublish(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	r := quietRunner(mem)
	opts := Options{
		Source:  writeDefinition(t, "charts.toml", chartsTOML),
		Publish: true,
	}

	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !res.PublishInfo.Published || res.PublishInfo.Unchanged {
		t.Errorf("PublishInfo = %+v, want published", res.PublishInfo)
	}
	for _, id := range []string{"spy", "qqq"} {
		data, ok, _ := mem.Get(ctx, r.Keyer.DocumentKey(id))
		if !ok || !bytes.Equal(data, res.Payload) {
			t.Errorf("document %s not published", id)
		}
	}

	again, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if !again.PublishInfo.Unchanged || again.PublishInfo.Published {
		t.Errorf("second PublishInfo = %+v, want unchanged", again.PublishInfo)
	}

	opts.Refresh = true
	forced, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute() error: %v", err)
	}
	if !forced.PublishInfo.Published {
		t.Error("Refresh should publish unchanged content")
	}
}

func TestExecuteReadsSurfaceEvent(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	r := quietRunner(mem)
	_ = mem.Set(ctx, r.Keyer.EventKey("spy"), []byte(`{"type":"click","chartId":"spy","price":471}`), 0)

	res, err := r.Execute(ctx, Options{
		Source:  writeDefinition(t, "charts.toml", chartsTOML),
		Publish: true,
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Response == nil || res.Response.Type != "click" || *res.Response.Price != 471 {
		t.Errorf("Response = %+v", res.Response)
	}

	_ = mem.Set(ctx, r.Keyer.EventKey("spy"), []byte(`{"type":"error","message":"boom"}`), 0)
	_, err = r.Execute(ctx, Options{
		Source:  writeDefinition(t, "charts.toml", chartsTOML),
		Publish: true,
		Refresh: true,
	})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("Execute() error = %v, want surface error", err)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := quietRunner(nil)
	ctx := context.Background()

	_, err := r.Execute(ctx, Options{Source: filepath.Join(t.TempDir(), "missing.yaml")})
	if !errors.Is(err, errors.ErrCodeNotFound) || !strings.HasPrefix(err.Error(), "load: ") {
		t.Errorf("missing file error = %v", err)
	}

	bad := writeDefinition(t, "bad.yaml", "charts: [{options: {height: tall}}]")
	_, err = r.Execute(ctx, Options{Source: bad})
	if !errors.Is(err, errors.ErrCodeInvalidType) || !strings.HasPrefix(err.Error(), "assemble: ") {
		t.Errorf("bad option error = %v", err)
	}

	dup := writeDefinition(t, "dup.yaml", "charts: [{id: a}, {id: a}]")
	if _, err := r.Execute(ctx, Options{Source: dup}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("duplicate ids error = %v, want INVALID_INPUT", err)
	}
}

func TestExecuteInMemoryDefinition(t *testing.T) {
	def, err := definition.ParseBytes([]byte("charts: [{id: mem}]"), definition.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	res, err := quietRunner(nil).Execute(context.Background(), Options{Definition: def})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if res.Charts[0].ID != "mem" {
		t.Errorf("chart id = %s, want mem", res.Charts[0].ID)
	}
}

// recordingHooks counts pipeline events.
type recordingHooks struct {
	observability.NoopPipelineHooks
	loads, assembles, publishes []string
}

func (h *recordingHooks) OnLoadComplete(_ context.Context, source string, _ int, _ time.Duration, _ error) {
	h.loads = append(h.loads, source)
}

func (h *recordingHooks) OnAssembleComplete(_ context.Context, series int, _ time.Duration, _ error) {
	h.assembles = append(h.assembles, "ok")
}

func (h *recordingHooks) OnPublishComplete(_ context.Context, surface string, _ int, _ time.Duration, _ error) {
	h.publishes = append(h.publishes, surface)
}

func TestExecuteEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	_, err := quietRunner(store.NewMemoryStore()).Execute(context.Background(), Options{
		Source:  writeDefinition(t, "charts.toml", chartsTOML),
		Publish: true,
		Output:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(hooks.loads) != 1 || len(hooks.assembles) != 1 {
		t.Errorf("hooks = %+v", hooks)
	}
	if strings.Join(hooks.publishes, ",") != "writer,store" {
		t.Errorf("publish surfaces = %v, want [writer store]", hooks.publishes)
	}
}
