package options

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// =============================================================================
// Shared series sub-documents
// =============================================================================

// PriceFormat controls how a series prints its values.
type PriceFormat struct {
	Type      *PriceFormatType
	Precision *int
	MinMove   *float64
}

func (p *PriceFormat) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("type", &p.Type),
		optdoc.Optional("precision", &p.Precision),
		optdoc.Optional("min_move", &p.MinMove),
	}
}

// LegendOptions configures a per-series legend box.
type LegendOptions struct {
	Visible         *bool
	Position        *Corner
	Symbol          string
	Text            string
	TextColor       string
	BackgroundColor string
	BorderColor     string
	BorderWidth     *int
	BorderRadius    *int
	Padding         *int
	Margin          *int
	ZIndex          *int
	ShowValues      *bool
	ValueFormat     string
}

func (l *LegendOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("visible", &l.Visible),
		optdoc.Optional("position", &l.Position),
		optdoc.Value("symbol", &l.Symbol),
		optdoc.Value("text", &l.Text),
		optdoc.Value("text_color", &l.TextColor),
		optdoc.Value("background_color", &l.BackgroundColor),
		optdoc.Value("border_color", &l.BorderColor),
		optdoc.Optional("border_width", &l.BorderWidth),
		optdoc.Optional("border_radius", &l.BorderRadius),
		optdoc.Optional("padding", &l.Padding),
		optdoc.Optional("margin", &l.Margin),
		optdoc.Optional("z_index", &l.ZIndex),
		optdoc.Optional("show_values", &l.ShowValues),
		optdoc.Value("value_format", &l.ValueFormat),
	}
}

// =============================================================================
// Per-kind styles
// =============================================================================

// LineSeriesOptions styles a line series.
type LineSeriesOptions struct {
	Color                  string
	LineStyle              *LineStyle
	LineWidth              *int
	LineType               *LineType
	LineVisible            *bool
	PointMarkersVisible    *bool
	PointMarkersRadius     *float64
	CrosshairMarkerVisible *bool
	CrosshairMarkerRadius  *float64
	LastPriceAnimation     *LastPriceAnimationMode
}

func (l *LineSeriesOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("color", &l.Color),
		optdoc.Optional("line_style", &l.LineStyle),
		optdoc.Optional("line_width", &l.LineWidth),
		optdoc.Optional("line_type", &l.LineType),
		optdoc.Optional("line_visible", &l.LineVisible),
		optdoc.Optional("point_markers_visible", &l.PointMarkersVisible),
		optdoc.Optional("point_markers_radius", &l.PointMarkersRadius),
		optdoc.Optional("crosshair_marker_visible", &l.CrosshairMarkerVisible),
		optdoc.Optional("crosshair_marker_radius", &l.CrosshairMarkerRadius),
		optdoc.Optional("last_price_animation", &l.LastPriceAnimation),
	}
}

// AreaSeriesOptions styles an area series.
type AreaSeriesOptions struct {
	TopColor               string
	BottomColor            string
	LineColor              string
	LineStyle              *LineStyle
	LineWidth              *int
	LineType               *LineType
	LineVisible            *bool
	InvertFilledArea       *bool
	RelativeGradient       *bool
	CrosshairMarkerVisible *bool
	LastPriceAnimation     *LastPriceAnimationMode
}

func (a *AreaSeriesOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("top_color", &a.TopColor),
		optdoc.Value("bottom_color", &a.BottomColor),
		optdoc.Value("line_color", &a.LineColor),
		optdoc.Optional("line_style", &a.LineStyle),
		optdoc.Optional("line_width", &a.LineWidth),
		optdoc.Optional("line_type", &a.LineType),
		optdoc.Optional("line_visible", &a.LineVisible),
		optdoc.Optional("invert_filled_area", &a.InvertFilledArea),
		optdoc.Optional("relative_gradient", &a.RelativeGradient),
		optdoc.Optional("crosshair_marker_visible", &a.CrosshairMarkerVisible),
		optdoc.Optional("last_price_animation", &a.LastPriceAnimation),
	}
}

// CandlestickSeriesOptions styles a candlestick series.
type CandlestickSeriesOptions struct {
	UpColor         string
	DownColor       string
	WickVisible     *bool
	BorderVisible   *bool
	BorderColor     string
	BorderUpColor   string
	BorderDownColor string
	WickColor       string
	WickUpColor     string
	WickDownColor   string
}

func (c *CandlestickSeriesOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("up_color", &c.UpColor),
		optdoc.Value("down_color", &c.DownColor),
		optdoc.Optional("wick_visible", &c.WickVisible),
		optdoc.Optional("border_visible", &c.BorderVisible),
		optdoc.Value("border_color", &c.BorderColor),
		optdoc.Value("border_up_color", &c.BorderUpColor),
		optdoc.Value("border_down_color", &c.BorderDownColor),
		optdoc.Value("wick_color", &c.WickColor),
		optdoc.Value("wick_up_color", &c.WickUpColor),
		optdoc.Value("wick_down_color", &c.WickDownColor),
	}
}

// BarSeriesOptions styles an OHLC bar series.
type BarSeriesOptions struct {
	UpColor     string
	DownColor   string
	OpenVisible *bool
	ThinBars    *bool
}

func (b *BarSeriesOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("up_color", &b.UpColor),
		optdoc.Value("down_color", &b.DownColor),
		optdoc.Optional("open_visible", &b.OpenVisible),
		optdoc.Optional("thin_bars", &b.ThinBars),
	}
}

// HistogramSeriesOptions styles a histogram series.
type HistogramSeriesOptions struct {
	Color string
	Base  *float64
}

func (h *HistogramSeriesOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("color", &h.Color),
		optdoc.Optional("base", &h.Base),
	}
}

// BaseValue is the reference level of a baseline series.
type BaseValue struct {
	Type  string
	Price *float64
}

func (b *BaseValue) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("type", &b.Type),
		optdoc.Optional("price", &b.Price),
	}
}

// BaselineSeriesOptions styles a baseline series.
type BaselineSeriesOptions struct {
	BaseValue        *BaseValue
	RelativeGradient *bool
	TopFillColor1    string
	TopFillColor2    string
	TopLineColor     string
	BottomFillColor1 string
	BottomFillColor2 string
	BottomLineColor  string
	LineWidth        *int
	LineStyle        *LineStyle
	LineType         *LineType
}

func (b *BaselineSeriesOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Child("base_value", &b.BaseValue),
		optdoc.Optional("relative_gradient", &b.RelativeGradient),
		optdoc.Value("top_fill_color1", &b.TopFillColor1),
		optdoc.Value("top_fill_color2", &b.TopFillColor2),
		optdoc.Value("top_line_color", &b.TopLineColor),
		optdoc.Value("bottom_fill_color1", &b.BottomFillColor1),
		optdoc.Value("bottom_fill_color2", &b.BottomFillColor2),
		optdoc.Value("bottom_line_color", &b.BottomLineColor),
		optdoc.Optional("line_width", &b.LineWidth),
		optdoc.Optional("line_style", &b.LineStyle),
		optdoc.Optional("line_type", &b.LineType),
	}
}

// PriceBase returns a price-typed base value.
func PriceBase(price float64) *BaseValue {
	return &BaseValue{Type: "price", Price: &price}
}
