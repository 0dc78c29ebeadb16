package series

import (
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
	"github.com/matzehuels/lwcharts/pkg/options"
)

// DefaultZIndex is the draw order of a series that does not set one.
const DefaultZIndex = 100

// topLevelKeys are series fields that sit next to "options" on the wire
// rather than inside it.
var topLevelKeys = map[string]bool{
	"paneId":     true,
	"markers":    true,
	"priceLines": true,
	"legend":     true,
}

// Series is the configuration of one drawable entity.
//
// PriceScaleID distinguishes unset (nil, sent as "right") from the empty
// overlay id (pointer to ""), which is sent verbatim.
type Series struct {
	Kind Kind
	Data []data.Point

	PaneID           int
	PriceScaleID     *string
	ZIndex           int
	Visible          bool
	LastValueVisible bool
	PriceLineVisible bool
	PriceLineSource  *options.PriceLineSource
	PriceLineWidth   *int
	PriceLineColor   string
	PriceLineStyle   *options.LineStyle
	Title            string
	PriceFormat      *options.PriceFormat

	// Style is the per-kind style document. Its fields are merged into the
	// wire "options" mapping.
	Style optdoc.Document

	Markers    []*Marker
	PriceLines []*PriceLine
	Legend     *options.LegendOptions
}

// New returns a series of kind k with default visibility, z-index and style.
func New(k Kind, points ...data.Point) *Series {
	return &Series{
		Kind:             k,
		Data:             points,
		ZIndex:           DefaultZIndex,
		Visible:          true,
		LastValueVisible: true,
		PriceLineVisible: true,
		Style:            k.DefaultStyle(),
	}
}

// Points converts a typed point slice into the generic form Series holds.
func Points[P data.Point](pts []P) []data.Point {
	out := make([]data.Point, len(pts))
	for i, p := range pts {
		out[i] = p
	}
	return out
}

// NewLine returns a line series.
func NewLine(pts ...*data.LineData) *Series { return New(Line, Points(pts)...) }

// NewArea returns an area series.
func NewArea(pts ...*data.AreaData) *Series { return New(Area, Points(pts)...) }

// NewHistogram returns a histogram series.
func NewHistogram(pts ...*data.HistogramData) *Series { return New(Histogram, Points(pts)...) }

// NewBaseline returns a baseline series.
func NewBaseline(pts ...*data.BaselineData) *Series { return New(Baseline, Points(pts)...) }

// NewCandlestick returns a candlestick series.
func NewCandlestick(pts ...*data.OhlcData) *Series { return New(Candlestick, Points(pts)...) }

// NewBar returns an OHLC bar series.
func NewBar(pts ...*data.OhlcData) *Series { return New(Bar, Points(pts)...) }

// Fields describes the series-level options. Style fields are handled
// separately by Update and AsDict.
func (s *Series) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("pane_id", &s.PaneID),
		optdoc.Optional("price_scale_id", &s.PriceScaleID),
		optdoc.Value("z_index", &s.ZIndex),
		optdoc.Value("visible", &s.Visible),
		optdoc.Value("last_value_visible", &s.LastValueVisible),
		optdoc.Value("price_line_visible", &s.PriceLineVisible),
		optdoc.Optional("price_line_source", &s.PriceLineSource),
		optdoc.Optional("price_line_width", &s.PriceLineWidth),
		optdoc.Value("price_line_color", &s.PriceLineColor),
		optdoc.Optional("price_line_style", &s.PriceLineStyle),
		optdoc.Value("title", &s.Title),
		optdoc.Child("price_format", &s.PriceFormat),
		optdoc.Children("markers", &s.Markers),
		optdoc.Children("price_lines", &s.PriceLines),
		optdoc.Child("legend", &s.Legend),
	}
}

// ScaleID returns the price scale the series draws on.
func (s *Series) ScaleID() string {
	if s.PriceScaleID == nil {
		return options.ScaleRight
	}
	return *s.PriceScaleID
}

// SetScale attaches the series to the price scale id.
func (s *Series) SetScale(id string) *Series {
	s.PriceScaleID = &id
	return s
}

// Update applies patch to the series and then to its style document. Unknown
// keys and nil values are ignored. A negative pane id is rejected.
func (s *Series) Update(patch map[string]any) (*Series, error) {
	prevPane := s.PaneID
	if _, err := optdoc.Update(s, patch); err != nil {
		return s, err
	}
	if err := s.Validate(); err != nil {
		s.PaneID = prevPane
		return s, err
	}
	if s.Style != nil {
		if _, err := optdoc.Update(s.Style, patch); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Validate checks the invariants of the series.
func (s *Series) Validate() error {
	if s.Kind == "" {
		return errors.New(errors.ErrCodeInvalidInput, "series kind is required")
	}
	return errors.ValidatePaneID(s.PaneID)
}

// AddMarkers appends markers and returns the series.
func (s *Series) AddMarkers(m ...*Marker) *Series {
	s.Markers = append(s.Markers, m...)
	return s
}

// AddPriceLines appends price lines and returns the series.
func (s *Series) AddPriceLines(p ...*PriceLine) *Series {
	s.PriceLines = append(s.PriceLines, p...)
	return s
}

// AsDict returns the wire form:
//
//	{type, data, paneId, options: {visible, priceScaleId, lastValueVisible,
//	 priceLineVisible, zIndex, ...style}, priceLines?, markers?, legend?}
func (s *Series) AsDict() (map[string]any, error) { return s.AsDictAt(0) }

// AsDictAt is AsDict for a series nested depth levels deep.
func (s *Series) AsDictAt(depth int) (map[string]any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	fields, err := optdoc.AsDictAt(s, depth)
	if err != nil {
		return nil, err
	}

	opts := make(map[string]any, len(fields)+8)
	if s.Style != nil {
		style, err := optdoc.AsDictAt(s.Style, depth+1)
		if err != nil {
			return nil, err
		}
		for k, v := range style {
			opts[k] = v
		}
	}

	out := map[string]any{
		"type":   string(s.Kind),
		"paneId": s.PaneID,
	}
	for k, v := range fields {
		if topLevelKeys[k] {
			out[k] = v
			continue
		}
		opts[k] = v
	}
	opts["priceScaleId"] = s.ScaleID()
	out["options"] = opts

	points := make([]any, 0, len(s.Data))
	for i, p := range s.Data {
		if p == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "series %s: nil data point at index %d", s.Kind, i)
		}
		m, err := optdoc.AsDictAt(p, depth+1)
		if err != nil {
			return nil, err
		}
		points = append(points, m)
	}
	out["data"] = points

	return out, nil
}

var _ optdoc.DepthMarshaler = (*Series)(nil)
