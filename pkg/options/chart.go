package options

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// ChartOptions is the global option document of one chart.
type ChartOptions struct {
	Width              *int
	Height             *int
	AutoSize           *bool
	Layout             *LayoutOptions
	LeftPriceScale     *PriceScaleOptions
	RightPriceScale    *PriceScaleOptions
	OverlayPriceScales map[string]*PriceScaleOptions
	TimeScale          *TimeScaleOptions
	Crosshair          *CrosshairOptions
	Grid               *GridOptions
	Localization       *LocalizationOptions
	HandleScroll       *HandleScrollOptions
	HandleScale        *HandleScaleOptions
	KineticScroll      *KineticScrollOptions
	RangeSwitcher      *RangeSwitcherOptions
	TradeVisualization *TradeVisualizationOptions
}

func (c *ChartOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("width", &c.Width),
		optdoc.Optional("height", &c.Height),
		optdoc.Optional("auto_size", &c.AutoSize),
		optdoc.Child("layout", &c.Layout),
		optdoc.Child("left_price_scale", &c.LeftPriceScale),
		optdoc.Child("right_price_scale", &c.RightPriceScale),
		optdoc.Entries("overlay_price_scales", &c.OverlayPriceScales),
		optdoc.Child("time_scale", &c.TimeScale),
		optdoc.Child("crosshair", &c.Crosshair),
		optdoc.Child("grid", &c.Grid),
		optdoc.Child("localization", &c.Localization),
		optdoc.Child("handle_scroll", &c.HandleScroll),
		optdoc.Child("handle_scale", &c.HandleScale),
		optdoc.Child("kinetic_scroll", &c.KineticScroll),
		optdoc.Child("range_switcher", &c.RangeSwitcher),
		optdoc.Child("trade_visualization", &c.TradeVisualization),
	}
}

// Default returns chart options with a white layout, a visible right price
// scale and a time axis that shows intraday times.
func Default() *ChartOptions {
	return &ChartOptions{
		Height:   Ptr(400),
		AutoSize: Ptr(true),
		Layout: &LayoutOptions{
			BackgroundOptions: SolidBackground("#ffffff"),
			TextColor:         "#131722",
			FontSize:          Ptr(12),
		},
		RightPriceScale: NewPriceScale(ScaleRight),
		TimeScale: &TimeScaleOptions{
			TimeVisible:    Ptr(true),
			SecondsVisible: Ptr(false),
		},
		Crosshair: &CrosshairOptions{Mode: Ptr(CrosshairNormal)},
	}
}

// AddOverlayScale registers a named overlay price scale, replacing any scale
// with the same id.
func (c *ChartOptions) AddOverlayScale(id string, scale *PriceScaleOptions) *ChartOptions {
	if c.OverlayPriceScales == nil {
		c.OverlayPriceScales = make(map[string]*PriceScaleOptions)
	}
	c.OverlayPriceScales[id] = scale
	return c
}

// HasScale reports whether id is a built-in scale or a registered overlay.
func (c *ChartOptions) HasScale(id string) bool {
	if IsBuiltinScale(id) {
		return true
	}
	if c == nil {
		return false
	}
	_, ok := c.OverlayPriceScales[id]
	return ok
}
