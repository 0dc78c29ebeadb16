package options

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// TradeVisualizationOptions controls how trades are drawn on the chart.
type TradeVisualizationOptions struct {
	Style                 *TradeVisualization
	EntryMarkerColorLong  string
	EntryMarkerColorShort string
	ExitMarkerColorProfit string
	ExitMarkerColorLoss   string
	MarkerSize            *int
	ShowPnlInMarkers      *bool
	RectangleFillOpacity  *float64
	RectangleBorderWidth  *int
	RectangleColorProfit  string
	RectangleColorLoss    string
	LineWidth             *int
	LineStyle             *LineStyle
	LineColorProfit       string
	LineColorLoss         string
	ShowAnnotations       *bool
	AnnotationFontSize    *int
}

func (t *TradeVisualizationOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("style", &t.Style),
		optdoc.Value("entry_marker_color_long", &t.EntryMarkerColorLong),
		optdoc.Value("entry_marker_color_short", &t.EntryMarkerColorShort),
		optdoc.Value("exit_marker_color_profit", &t.ExitMarkerColorProfit),
		optdoc.Value("exit_marker_color_loss", &t.ExitMarkerColorLoss),
		optdoc.Optional("marker_size", &t.MarkerSize),
		optdoc.Optional("show_pnl_in_markers", &t.ShowPnlInMarkers),
		optdoc.Optional("rectangle_fill_opacity", &t.RectangleFillOpacity),
		optdoc.Optional("rectangle_border_width", &t.RectangleBorderWidth),
		optdoc.Value("rectangle_color_profit", &t.RectangleColorProfit),
		optdoc.Value("rectangle_color_loss", &t.RectangleColorLoss),
		optdoc.Optional("line_width", &t.LineWidth),
		optdoc.Optional("line_style", &t.LineStyle),
		optdoc.Value("line_color_profit", &t.LineColorProfit),
		optdoc.Value("line_color_loss", &t.LineColorLoss),
		optdoc.Optional("show_annotations", &t.ShowAnnotations),
		optdoc.Optional("annotation_font_size", &t.AnnotationFontSize),
	}
}

// DefaultTradeVisualization returns marker-style trade drawing with the
// standard green/red palette.
func DefaultTradeVisualization() *TradeVisualizationOptions {
	return &TradeVisualizationOptions{
		Style:                 Ptr(TradeMarkers),
		EntryMarkerColorLong:  "#2196F3",
		EntryMarkerColorShort: "#FF9800",
		ExitMarkerColorProfit: "#4CAF50",
		ExitMarkerColorLoss:   "#F44336",
		MarkerSize:            Ptr(5),
		ShowPnlInMarkers:      Ptr(false),
		RectangleFillOpacity:  Ptr(0.2),
		RectangleBorderWidth:  Ptr(1),
		RectangleColorProfit:  "#4CAF50",
		RectangleColorLoss:    "#F44336",
	}
}
