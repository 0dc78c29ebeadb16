package document

import (
	"math"

	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// RangeTolerance is the slack applied when comparing a display range with the
// data timespan. Ranges up to 10% longer than the data are kept.
const RangeTolerance = 1.1

// Timespan is the time covered by a chart's data. Known is false when no data
// point carried a parseable time.
type Timespan struct {
	Seconds float64
	Known   bool
}

// UnknownTimespan disables range filtering.
var UnknownTimespan = Timespan{}

// ComputeDataTimespan scans the "time" field of every data point of every
// serialized series and returns max - min. Points whose time is missing or
// unparseable are skipped.
func ComputeDataTimespan(series []map[string]any) Timespan {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		points, ok := optdoc.AsSlice(s["data"])
		if !ok {
			continue
		}
		for _, p := range points {
			pm, ok := optdoc.AsMap(p)
			if !ok {
				continue
			}
			v, ok := pm["time"]
			if !ok || v == nil {
				continue
			}
			t, err := data.ParseTime(v)
			if err != nil {
				continue
			}
			sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
			lo = math.Min(lo, sec)
			hi = math.Max(hi, sec)
		}
	}
	if math.IsInf(lo, 1) {
		return UnknownTimespan
	}
	return Timespan{Seconds: hi - lo, Known: true}
}

// FilterRangeSwitcher returns chart with range switcher entries longer than
// the data removed: an entry whose "range" exceeds span * RangeTolerance is
// dropped. Entries without a numeric range ("show everything") are always
// kept, and nothing is filtered when span is unknown.
//
// chart is not modified; the returned mapping shares every value except the
// range switcher.
func FilterRangeSwitcher(chart map[string]any, span Timespan) map[string]any {
	if !span.Known {
		return chart
	}
	rs, ok := optdoc.AsMap(chart["rangeSwitcher"])
	if !ok {
		return chart
	}
	ranges, ok := optdoc.AsSlice(rs["ranges"])
	if !ok {
		return chart
	}

	limit := span.Seconds * RangeTolerance
	kept := make([]any, 0, len(ranges))
	for _, r := range ranges {
		if dur, ok := rangeSeconds(r); ok && dur > limit {
			continue
		}
		kept = append(kept, r)
	}

	rsCopy := make(map[string]any, len(rs))
	for k, v := range rs {
		rsCopy[k] = v
	}
	rsCopy["ranges"] = kept

	out := make(map[string]any, len(chart))
	for k, v := range chart {
		out[k] = v
	}
	out["rangeSwitcher"] = rsCopy
	return out
}

// rangeSeconds returns the concrete duration of a range entry.
func rangeSeconds(entry any) (float64, bool) {
	m, ok := optdoc.AsMap(entry)
	if !ok {
		return 0, false
	}
	v, ok := m["range"]
	if !ok || v == nil {
		return 0, false
	}
	return optdoc.ToFloat(v)
}
