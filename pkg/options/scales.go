package options

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// Built-in price scale ids. The empty id is the overlay sentinel: series on it
// share an unnamed overlay scale.
const (
	ScaleLeft    = "left"
	ScaleRight   = "right"
	ScaleOverlay = ""
)

// IsBuiltinScale reports whether id names a scale that always exists.
func IsBuiltinScale(id string) bool {
	return id == ScaleLeft || id == ScaleRight || id == ScaleOverlay
}

// PriceScaleMargins reserves a fraction of the pane above and below a scale.
type PriceScaleMargins struct {
	Top    *float64
	Bottom *float64
}

func (m *PriceScaleMargins) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("top", &m.Top),
		optdoc.Optional("bottom", &m.Bottom),
	}
}

// Margins returns margins with both sides set.
func Margins(top, bottom float64) *PriceScaleMargins {
	return &PriceScaleMargins{Top: &top, Bottom: &bottom}
}

// PriceScaleOptions defines a left, right or named overlay price scale.
type PriceScaleOptions struct {
	PriceScaleID   *string
	Visible        *bool
	AutoScale      *bool
	Mode           *PriceScaleMode
	InvertScale    *bool
	AlignLabels    *bool
	BorderVisible  *bool
	BorderColor    string
	TextColor      string
	ScaleMargins   *PriceScaleMargins
	TicksVisible   *bool
	EntireTextOnly *bool
	MinimumWidth   *int
}

func (p *PriceScaleOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("price_scale_id", &p.PriceScaleID),
		optdoc.Optional("visible", &p.Visible),
		optdoc.Optional("auto_scale", &p.AutoScale),
		optdoc.Optional("mode", &p.Mode),
		optdoc.Optional("invert_scale", &p.InvertScale),
		optdoc.Optional("align_labels", &p.AlignLabels),
		optdoc.Optional("border_visible", &p.BorderVisible),
		optdoc.Value("border_color", &p.BorderColor),
		optdoc.Value("text_color", &p.TextColor),
		optdoc.Child("scale_margins", &p.ScaleMargins),
		optdoc.Optional("ticks_visible", &p.TicksVisible),
		optdoc.Optional("entire_text_only", &p.EntireTextOnly),
		optdoc.Optional("minimum_width", &p.MinimumWidth),
	}
}

// NewPriceScale returns a visible auto-scaled price scale with the given id.
func NewPriceScale(id string) *PriceScaleOptions {
	return &PriceScaleOptions{
		PriceScaleID: &id,
		Visible:      Ptr(true),
		AutoScale:    Ptr(true),
	}
}

// OverlayScale returns a hidden price scale for an overlay with the given
// margins.
func OverlayScale(id string, top, bottom float64) *PriceScaleOptions {
	return &PriceScaleOptions{
		PriceScaleID: &id,
		Visible:      Ptr(false),
		AutoScale:    Ptr(true),
		ScaleMargins: Margins(top, bottom),
	}
}

// TimeScaleOptions configures the horizontal time axis.
type TimeScaleOptions struct {
	RightOffset                  *float64
	BarSpacing                   *float64
	MinBarSpacing                *float64
	FixLeftEdge                  *bool
	FixRightEdge                 *bool
	LockVisibleTimeRangeOnResize *bool
	RightBarStaysOnScroll        *bool
	BorderVisible                *bool
	BorderColor                  string
	Visible                      *bool
	TimeVisible                  *bool
	SecondsVisible               *bool
	ShiftVisibleRangeOnNewBar    *bool
	TicksVisible                 *bool
}

func (t *TimeScaleOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("right_offset", &t.RightOffset),
		optdoc.Optional("bar_spacing", &t.BarSpacing),
		optdoc.Optional("min_bar_spacing", &t.MinBarSpacing),
		optdoc.Optional("fix_left_edge", &t.FixLeftEdge),
		optdoc.Optional("fix_right_edge", &t.FixRightEdge),
		optdoc.Optional("lock_visible_time_range_on_resize", &t.LockVisibleTimeRangeOnResize),
		optdoc.Optional("right_bar_stays_on_scroll", &t.RightBarStaysOnScroll),
		optdoc.Optional("border_visible", &t.BorderVisible),
		optdoc.Value("border_color", &t.BorderColor),
		optdoc.Optional("visible", &t.Visible),
		optdoc.Optional("time_visible", &t.TimeVisible),
		optdoc.Optional("seconds_visible", &t.SecondsVisible),
		optdoc.Optional("shift_visible_range_on_new_bar", &t.ShiftVisibleRangeOnNewBar),
		optdoc.Optional("ticks_visible", &t.TicksVisible),
	}
}
