package series

import (
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
	"github.com/matzehuels/lwcharts/pkg/options"
)

// Kind is the series type tag sent as "type" on the wire.
type Kind string

const (
	Line        Kind = "line"
	Area        Kind = "area"
	Histogram   Kind = "histogram"
	Baseline    Kind = "baseline"
	Candlestick Kind = "candlestick"
	Bar         Kind = "bar"
)

// Kinds lists every supported series kind.
var Kinds = []Kind{Line, Area, Histogram, Baseline, Candlestick, Bar}

// ParseKind validates a kind tag.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown series kind %q", s)
}

// IsOHLC reports whether the kind draws open/high/low/close bars.
func (k Kind) IsOHLC() bool { return k == Candlestick || k == Bar }

// NewPoint returns an empty data point of the kind's point type.
func (k Kind) NewPoint() data.Point {
	switch k {
	case Area:
		return &data.AreaData{}
	case Histogram:
		return &data.HistogramData{}
	case Baseline:
		return &data.BaselineData{}
	case Candlestick, Bar:
		return &data.OhlcData{}
	default:
		return &data.LineData{}
	}
}

// DefaultStyle returns the kind's style document with standard colors.
func (k Kind) DefaultStyle() optdoc.Document {
	switch k {
	case Area:
		return &options.AreaSeriesOptions{
			TopColor:    "rgba(46, 220, 135, 0.4)",
			BottomColor: "rgba(40, 221, 100, 0)",
			LineColor:   "#33D778",
			LineWidth:   options.Ptr(2),
		}
	case Histogram:
		return &options.HistogramSeriesOptions{Color: "#26a69a"}
	case Baseline:
		return &options.BaselineSeriesOptions{
			BaseValue:        options.PriceBase(0),
			TopLineColor:     "rgba(38, 166, 154, 1)",
			TopFillColor1:    "rgba(38, 166, 154, 0.28)",
			TopFillColor2:    "rgba(38, 166, 154, 0.05)",
			BottomLineColor:  "rgba(239, 83, 80, 1)",
			BottomFillColor1: "rgba(239, 83, 80, 0.05)",
			BottomFillColor2: "rgba(239, 83, 80, 0.28)",
			LineWidth:        options.Ptr(3),
		}
	case Candlestick:
		return &options.CandlestickSeriesOptions{
			UpColor:       "#26a69a",
			DownColor:     "#ef5350",
			WickVisible:   options.Ptr(true),
			BorderVisible: options.Ptr(false),
			WickUpColor:   "#26a69a",
			WickDownColor: "#ef5350",
		}
	case Bar:
		return &options.BarSeriesOptions{
			UpColor:     "#26a69a",
			DownColor:   "#ef5350",
			OpenVisible: options.Ptr(true),
		}
	default:
		return &options.LineSeriesOptions{
			Color:     "#2196f3",
			LineWidth: options.Ptr(2),
		}
	}
}
