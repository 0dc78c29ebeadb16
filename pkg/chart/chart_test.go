package chart

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/annotation"
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/document"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/options"
	"github.com/matzehuels/lwcharts/pkg/series"
	"github.com/matzehuels/lwcharts/pkg/tooltip"
	"github.com/matzehuels/lwcharts/pkg/trade"
)

func quietLogger() *log.Logger { return log.New(io.Discard) }

func lineAt(pane, z int, title string) *series.Series {
	s := series.NewLine(&data.LineData{Time: 1, Value: 1})
	s.PaneID = pane
	s.ZIndex = z
	s.Title = title
	return s
}

func titles(list []map[string]any) []string {
	out := make([]string, len(list))
	for i, d := range list {
		out[i], _ = d["options"].(map[string]any)["title"].(string)
	}
	return out
}

func TestFlattenScenario(t *testing.T) {
	m := NewManager(nil, quietLogger())
	m.MustAdd(lineAt(0, 10, "a"), lineAt(0, 5, "b"), lineAt(1, 1, "c"))

	got := titles(m.Flatten())
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}
}

func TestFlattenOrderingLaw(t *testing.T) {
	m := NewManager(nil, quietLogger())
	m.MustAdd(
		lineAt(2, 0, "p2-z0"),
		lineAt(0, 50, "p0-z50-first"),
		lineAt(1, -5, "p1-z-5"),
		lineAt(0, 50, "p0-z50-second"),
		lineAt(0, 1, "p0-z1"),
		lineAt(2, 100, "p2-z100"),
		lineAt(0, 50, "p0-z50-third"),
	)

	got := titles(m.Flatten())
	want := []string{
		"p0-z1", "p0-z50-first", "p0-z50-second", "p0-z50-third",
		"p1-z-5",
		"p2-z0", "p2-z100",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten() = %v, want %v", got, want)
	}

	groups := m.GroupByPane()
	if len(groups) != 3 || len(groups[0]) != 4 || len(groups[1]) != 1 || len(groups[2]) != 2 {
		t.Errorf("GroupByPane() sizes = %d/%d/%d", len(groups[0]), len(groups[1]), len(groups[2]))
	}
}

func TestAddRejectsNil(t *testing.T) {
	m := NewManager(nil, quietLogger())
	var nilSeries *series.Series

	for _, e := range []Entity{nil, nilSeries, RawSeries(nil)} {
		if _, err := m.Add(e); !errors.Is(err, errors.ErrCodeInvalidType) {
			t.Errorf("Add(%#v) error = %v, want INVALID_TYPE", e, err)
		}
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestAddRejectsNegativePane(t *testing.T) {
	m := NewManager(nil, quietLogger())
	if _, err := m.Add(lineAt(-1, 0, "x")); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Add() error = %v, want INVALID_INPUT", err)
	}
}

func TestAddWarnsOnUnregisteredScale(t *testing.T) {
	var buf bytes.Buffer
	opts := &options.ChartOptions{}
	opts.AddOverlayScale("volume", options.OverlayScale("volume", 0.8, 0))
	m := NewManager(opts, log.New(&buf))

	tests := []struct {
		scale string
		warn  bool
	}{
		{"right", false},
		{"left", false},
		{"", false},
		{"volume", false},
		{"rsi", true},
	}
	for _, tt := range tests {
		buf.Reset()
		if _, err := m.Add(series.NewLine().SetScale(tt.scale)); err != nil {
			t.Fatalf("Add(%q) error: %v", tt.scale, err)
		}
		warned := strings.Contains(buf.String(), "unregistered price scale")
		if warned != tt.warn {
			t.Errorf("scale %q: warned = %v, want %v (log %q)", tt.scale, warned, tt.warn, buf.String())
		}
	}
	if m.Len() != len(tests) {
		t.Errorf("Len() = %d, want %d", m.Len(), len(tests))
	}
}

type brokenEntity struct{ err error }

func (b brokenEntity) AsDict() (map[string]any, error) { return nil, b.err }

func TestGroupByPaneDegradesFailures(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(nil, log.New(&buf))
	m.MustAdd(
		lineAt(0, 10, "a"),
		brokenEntity{err: fmt.Errorf("boom")},
		brokenEntity{},
		lineAt(1, 0, "b"),
	)

	groups := m.GroupByPane()
	pane0 := groups[0]
	if len(pane0) != 3 {
		t.Fatalf("pane 0 has %d entries, want 3", len(pane0))
	}
	// Degraded entries sit at z 0, so they sort before "a" at z 10.
	if pane0[2]["options"].(map[string]any)["title"] != "a" {
		t.Errorf("pane 0 order = %v", pane0)
	}
	if pane0[0]["error"] != "boom" || pane0[0]["paneId"] != 0 {
		t.Errorf("degraded entry = %#v", pane0[0])
	}
	if len(m.Flatten()) != 4 {
		t.Error("Flatten() dropped an entity")
	}
	if !strings.Contains(buf.String(), "placing in pane 0") {
		t.Errorf("expected degradation log, got %q", buf.String())
	}
}

func TestRawSeriesDefensiveReads(t *testing.T) {
	m := NewManager(nil, quietLogger())
	m.MustAdd(
		RawSeries{"type": "custom", "paneId": "one", "options": map[string]any{"zIndex": 3}},
		RawSeries{"type": "custom", "paneId": 2.0},
		RawSeries{"type": "custom", "paneId": -4, "options": "bad"},
	)
	groups := m.GroupByPane()
	if len(groups[0]) != 2 || len(groups[2]) != 1 {
		t.Errorf("GroupByPane() = %v", groups)
	}
	if groups[0][0]["paneId"] != -4 {
		t.Errorf("z 0 entry should sort first: %v", groups[0])
	}
}

func ohlcvRows() []map[string]any {
	return []map[string]any{
		{"date": "2024-01-01", "o": 10.0, "h": 12.0, "l": 9.0, "c": 11.0, "v": 1000},
		{"date": "2024-01-02", "o": 11.0, "h": 11.5, "l": 8.0, "c": 9.0, "v": 1500},
		{"date": "2024-01-03", "o": 9.0, "h": 9.5, "l": 8.5, "c": 9.0, "v": 700},
	}
}

var ohlcvMapping = map[string]string{
	"time": "date", "open": "o", "high": "h", "low": "l", "close": "c", "volume": "v",
}

func TestAddPriceVolumePair(t *testing.T) {
	var buf bytes.Buffer
	opts := &options.ChartOptions{}
	m := NewManager(opts, log.New(&buf))

	if _, err := m.AddPriceVolumePair(ohlcvRows(), ohlcvMapping, series.Candlestick, 1, PairOptions{}); err != nil {
		t.Fatalf("AddPriceVolumePair() error: %v", err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}

	if m := opts.RightPriceScale.ScaleMargins; *m.Top != 0.10 || *m.Bottom != 0.25 {
		t.Errorf("price margins = %v/%v, want 0.10/0.25", *m.Top, *m.Bottom)
	}
	vol, ok := opts.OverlayPriceScales[VolumeScaleID]
	if !ok || *vol.ScaleMargins.Top != 0.80 || *vol.ScaleMargins.Bottom != 0.0 {
		t.Errorf("volume scale = %#v", vol)
	}

	flat := m.Flatten()
	price, volume := flat[0], flat[1]
	if price["type"] != "candlestick" || price["paneId"] != 1 {
		t.Errorf("price series = %#v", price)
	}
	if volume["type"] != "histogram" || volume["options"].(map[string]any)["priceScaleId"] != "volume" {
		t.Errorf("volume series = %#v", volume)
	}

	colors := []string{}
	for _, p := range volume["data"].([]any) {
		colors = append(colors, p.(map[string]any)["color"].(string))
	}
	want := []string{DefaultVolumeUpColor, DefaultVolumeDownColor, DefaultVolumeUpColor}
	if !reflect.DeepEqual(colors, want) {
		t.Errorf("volume colors = %v, want %v", colors, want)
	}
}

func TestAddPriceVolumePairLineKindAndColors(t *testing.T) {
	m := NewManager(nil, quietLogger())
	_, err := m.AddPriceVolumePair(ohlcvRows(), ohlcvMapping, series.Line, 0, PairOptions{UpColor: "up", DownColor: "down"})
	if err != nil {
		t.Fatalf("AddPriceVolumePair() error: %v", err)
	}
	flat := m.Flatten()
	pts := flat[0]["data"].([]any)
	if pts[1].(map[string]any)["value"] != 9.0 {
		t.Errorf("line point = %#v, want close value", pts[1])
	}
	if c := flat[1]["data"].([]any)[1].(map[string]any)["color"]; c != "down" {
		t.Errorf("volume color = %v, want down", c)
	}
}

func TestAddPriceVolumePairScale(t *testing.T) {
	tests := []struct {
		name    string
		scaleID *string
		want    string
	}{
		{"unset", nil, options.ScaleRight},
		{"left", options.Ptr(options.ScaleLeft), options.ScaleLeft},
		{"overlay", options.Ptr(options.ScaleOverlay), options.ScaleOverlay},
		{"named", options.Ptr("prices"), "prices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &options.ChartOptions{}
			m := NewManager(opts, quietLogger())
			_, err := m.AddPriceVolumePair(ohlcvRows(), ohlcvMapping, series.Candlestick, 0, PairOptions{PriceScaleID: tt.scaleID})
			if err != nil {
				t.Fatalf("AddPriceVolumePair() error: %v", err)
			}
			price := m.Flatten()[0]
			if got := price["options"].(map[string]any)["priceScaleId"]; got != tt.want {
				t.Errorf("priceScaleId = %#v, want %q", got, tt.want)
			}

			var scale *options.PriceScaleOptions
			switch tt.want {
			case options.ScaleLeft:
				scale = opts.LeftPriceScale
			case options.ScaleRight:
				scale = opts.RightPriceScale
			default:
				scale = opts.OverlayPriceScales[tt.want]
			}
			if scale == nil || scale.ScaleMargins == nil || *scale.ScaleMargins.Bottom != 0.25 {
				t.Errorf("scale %q has no price margins: %#v", tt.want, scale)
			}
		})
	}
}

func TestAddPriceVolumePairValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    []map[string]any
		mapping map[string]string
		pane    int
		code    errors.Code
	}{
		{"empty data", nil, ohlcvMapping, 0, errors.ErrCodeInvalidInput},
		{"empty mapping", ohlcvRows(), map[string]string{}, 0, errors.ErrCodeInvalidInput},
		{"negative pane", ohlcvRows(), ohlcvMapping, -1, errors.ErrCodeInvalidInput},
		{"bad value", []map[string]any{{"date": "2024-01-01", "o": "x"}}, ohlcvMapping, 0, errors.ErrCodeInvalidType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(nil, quietLogger())
			_, err := m.AddPriceVolumePair(tt.rows, tt.mapping, series.Candlestick, tt.pane, PairOptions{})
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
			if m.Len() != 0 {
				t.Errorf("Len() = %d after failure, want 0", m.Len())
			}
		})
	}
}

func TestChartDocument(t *testing.T) {
	opts := options.Default()
	opts.RangeSwitcher = options.DefaultRangeSwitcher()
	opts.TradeVisualization = options.DefaultTradeVisualization()

	c := New(opts, quietLogger())
	c.ID = "main"
	c.GroupID = 1
	if _, err := c.Add(series.NewLine(
		&data.LineData{Time: 1704067200, Value: 1},
		&data.LineData{Time: 1704067200 + 3*86400, Value: 2},
	)); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	c.AddTrades(trade.New(1704067200, 1, 1704067200+86400, 2))
	if _, err := c.Annotations.Add("", annotation.New(1704067200, 1, "start")); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Tooltips.Add("line", tooltip.SingleValueTooltip()); err != nil {
		t.Fatal(err)
	}

	doc, err := c.Document(document.NewSync())
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	entry := doc.Charts()[0]
	chart := entry["chart"].(map[string]any)

	if _, ok := chart["rightPriceScale"]; !ok {
		t.Error("rightPriceScale missing from chart section")
	}
	if _, ok := chart["tradeVisualization"]; ok {
		t.Error("tradeVisualization should be lifted out of the chart section")
	}
	if entry["tradeVisualizationOptions"] == nil || entry["trades"] == nil {
		t.Error("trades and tradeVisualizationOptions expected")
	}
	if len(entry["annotations"].([]any)) != 1 || entry["tooltipConfigs"] == nil {
		t.Errorf("collaborators missing: %#v", entry)
	}
	if entry["chartGroupId"] != 1 || entry["chartId"] != "main" {
		t.Errorf("ids = %v/%v", entry["chartId"], entry["chartGroupId"])
	}

	// Three days of data keep 1D and All; 1W (7d) exceeds 3.3d.
	var texts []string
	for _, r := range chart["rangeSwitcher"].(map[string]any)["ranges"].([]any) {
		texts = append(texts, r.(map[string]any)["text"].(string))
	}
	if !reflect.DeepEqual(texts, []string{"1D", "All"}) {
		t.Errorf("ranges = %v, want [1D All]", texts)
	}

	again, err := c.Document(document.NewSync())
	if err != nil || !reflect.DeepEqual(doc, again) {
		t.Error("Document() is not idempotent")
	}
}

func TestNewIDIsUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == b || !strings.HasPrefix(a, "chart-") {
		t.Errorf("NewID() = %q, %q", a, b)
	}
	if err := errors.ValidateChartID(a); err != nil {
		t.Errorf("generated id is invalid: %v", err)
	}
}
