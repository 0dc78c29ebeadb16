package data

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// Point is a single data point of a series.
type Point interface {
	optdoc.Document
	PointTime() Timestamp
}

// LineData is a single-value point for line series.
type LineData struct {
	Time  Timestamp
	Value float64
	Color string
}

func (d *LineData) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("time", &d.Time),
		optdoc.Value("value", &d.Value),
		optdoc.Value("color", &d.Color),
	}
}

func (d *LineData) PointTime() Timestamp { return d.Time }

// AreaData is a single-value point for area series.
type AreaData struct {
	Time        Timestamp
	Value       float64
	LineColor   string
	TopColor    string
	BottomColor string
}

func (d *AreaData) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("time", &d.Time),
		optdoc.Value("value", &d.Value),
		optdoc.Value("line_color", &d.LineColor),
		optdoc.Value("top_color", &d.TopColor),
		optdoc.Value("bottom_color", &d.BottomColor),
	}
}

func (d *AreaData) PointTime() Timestamp { return d.Time }

// HistogramData is a single-value point for histogram series.
type HistogramData struct {
	Time  Timestamp
	Value float64
	Color string
}

func (d *HistogramData) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("time", &d.Time),
		optdoc.Value("value", &d.Value),
		optdoc.Value("color", &d.Color),
	}
}

func (d *HistogramData) PointTime() Timestamp { return d.Time }

// BaselineData is a single-value point for baseline series.
type BaselineData struct {
	Time            Timestamp
	Value           float64
	TopLineColor    string
	BottomLineColor string
}

func (d *BaselineData) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("time", &d.Time),
		optdoc.Value("value", &d.Value),
		optdoc.Value("top_line_color", &d.TopLineColor),
		optdoc.Value("bottom_line_color", &d.BottomLineColor),
	}
}

func (d *BaselineData) PointTime() Timestamp { return d.Time }

// OhlcData is an open/high/low/close bar.
type OhlcData struct {
	Time        Timestamp
	Open        float64
	High        float64
	Low         float64
	Close       float64
	Color       string
	BorderColor string
	WickColor   string
}

func (d *OhlcData) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("time", &d.Time),
		optdoc.Value("open", &d.Open),
		optdoc.Value("high", &d.High),
		optdoc.Value("low", &d.Low),
		optdoc.Value("close", &d.Close),
		optdoc.Value("color", &d.Color),
		optdoc.Value("border_color", &d.BorderColor),
		optdoc.Value("wick_color", &d.WickColor),
	}
}

func (d *OhlcData) PointTime() Timestamp { return d.Time }

// OhlcvData is an OHLC bar with traded volume.
type OhlcvData struct {
	OhlcData
	Volume float64
}

func (d *OhlcvData) Fields() []optdoc.Field {
	return append(d.OhlcData.Fields(), optdoc.Value("volume", &d.Volume))
}

// Bullish reports whether the bar closed at or above its open.
func (d *OhlcData) Bullish() bool { return d.Close >= d.Open }
