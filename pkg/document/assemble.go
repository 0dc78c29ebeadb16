package document

import (
	"encoding/json"

	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// Input is everything Assemble needs for one chart, already in wire form.
type Input struct {
	ChartID string

	// Options is the wire form of the global chart options.
	Options map[string]any

	// Price scales override the matching keys of Options when set.
	LeftPriceScale     map[string]any
	RightPriceScale    map[string]any
	OverlayPriceScales map[string]any

	// Series is the flattened, render-ordered series list.
	Series []map[string]any

	Annotations  []any
	Tooltips     map[string]any
	Trades       []map[string]any
	TradeOptions map[string]any

	GroupID int
	Sync    *SyncContext
}

// Document is an assembled wire document:
//
//	{"charts": [{chartId, chart, series, annotations, trades?,
//	  tradeVisualizationOptions?, tooltipConfigs?, chartGroupId}],
//	 "syncConfig"?: {...}}
type Document map[string]any

// JSON encodes the document.
func (d Document) JSON() ([]byte, error) {
	b, err := json.Marshal(map[string]any(d))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "encode document")
	}
	return b, nil
}

// Charts returns the chart entries of the document.
func (d Document) Charts() []map[string]any {
	list, _ := d["charts"].([]any)
	out := make([]map[string]any, 0, len(list))
	for _, c := range list {
		if m, ok := c.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Assemble builds the wire document of one chart.
//
// The left and right price scales must carry a string priceScaleId when they
// set one; any other type is an INVALID_TYPE error. Range switcher entries
// longer than the data are filtered out (see FilterRangeSwitcher).
// trades and tradeVisualizationOptions are included only when there are
// trades, the latter only when configured. tooltipConfigs is included only
// when non-empty, and syncConfig only when in.Sync is set.
//
// Assemble caches nothing. It does not modify in, and calling it twice on
// the same input yields equal documents.
func Assemble(in Input) (Document, error) {
	if err := errors.ValidateChartID(in.ChartID); err != nil {
		return nil, err
	}

	chart := make(map[string]any, len(in.Options)+3)
	for k, v := range in.Options {
		chart[k] = v
	}
	if in.LeftPriceScale != nil {
		chart["leftPriceScale"] = in.LeftPriceScale
	}
	if in.RightPriceScale != nil {
		chart["rightPriceScale"] = in.RightPriceScale
	}
	if in.OverlayPriceScales != nil {
		chart["overlayPriceScales"] = in.OverlayPriceScales
	}
	for _, key := range []string{"leftPriceScale", "rightPriceScale"} {
		if err := checkScaleID(chart, key); err != nil {
			return nil, err
		}
	}

	series := in.Series
	if series == nil {
		series = []map[string]any{}
	}
	chart = FilterRangeSwitcher(chart, ComputeDataTimespan(series))

	annotations := in.Annotations
	if annotations == nil {
		annotations = []any{}
	}

	entry := map[string]any{
		"chartId":      in.ChartID,
		"chart":        chart,
		"series":       series,
		"annotations":  annotations,
		"chartGroupId": in.GroupID,
	}
	if len(in.Trades) > 0 {
		entry["trades"] = in.Trades
		if len(in.TradeOptions) > 0 {
			entry["tradeVisualizationOptions"] = in.TradeOptions
		}
	}
	if len(in.Tooltips) > 0 {
		entry["tooltipConfigs"] = in.Tooltips
	}

	doc := Document{"charts": []any{entry}}
	if in.Sync != nil {
		sc, err := in.Sync.AsDict()
		if err != nil {
			return nil, err
		}
		doc["syncConfig"] = sc
	}
	return doc, nil
}

func checkScaleID(chart map[string]any, key string) error {
	raw, ok := chart[key]
	if !ok || raw == nil {
		return nil
	}
	scale, ok := optdoc.AsMap(raw)
	if !ok {
		return errors.TypeError(key, "mapping", raw)
	}
	id, ok := scale["priceScaleId"]
	if !ok || id == nil {
		return nil
	}
	if _, ok := id.(string); !ok {
		return errors.TypeError(key+".priceScaleId", "string", id)
	}
	return nil
}

// Combine concatenates the chart entries of docs into one document, in
// argument order. The first syncConfig found is kept. Duplicate chart ids
// are an INVALID_INPUT error.
func Combine(docs ...Document) (Document, error) {
	charts := []any{}
	seen := map[string]bool{}
	out := Document{}
	for _, d := range docs {
		for _, c := range d.Charts() {
			id, _ := c["chartId"].(string)
			if seen[id] {
				return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate chart id %q", id)
			}
			seen[id] = true
			charts = append(charts, c)
		}
		if sc, ok := d["syncConfig"]; ok {
			if _, set := out["syncConfig"]; !set {
				out["syncConfig"] = sc
			}
		}
	}
	out["charts"] = charts
	return out, nil
}
