package series

import (
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
	"github.com/matzehuels/lwcharts/pkg/options"
)

// Marker is a glyph attached to one bar of a series.
type Marker struct {
	Time     data.Timestamp
	Position *options.MarkerPosition
	Shape    *options.MarkerShape
	Color    string
	Text     string
	Size     *int
	ID       string
}

func (m *Marker) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("time", &m.Time),
		optdoc.Optional("position", &m.Position),
		optdoc.Optional("shape", &m.Shape),
		optdoc.Value("color", &m.Color),
		optdoc.Value("text", &m.Text),
		optdoc.Optional("size", &m.Size),
		optdoc.Value("id", &m.ID),
	}
}

// NewMarker returns a marker at t.
func NewMarker(t data.Timestamp, pos options.MarkerPosition, shape options.MarkerShape, color, text string) *Marker {
	return &Marker{Time: t, Position: &pos, Shape: &shape, Color: color, Text: text}
}

// PriceLine is a horizontal line at a fixed price.
type PriceLine struct {
	Price            float64
	Color            string
	LineWidth        *int
	LineStyle        *options.LineStyle
	LineVisible      *bool
	AxisLabelVisible *bool
	Title            string
	ID               string
}

func (p *PriceLine) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("price", &p.Price),
		optdoc.Value("color", &p.Color),
		optdoc.Optional("line_width", &p.LineWidth),
		optdoc.Optional("line_style", &p.LineStyle),
		optdoc.Optional("line_visible", &p.LineVisible),
		optdoc.Optional("axis_label_visible", &p.AxisLabelVisible),
		optdoc.Value("title", &p.Title),
		optdoc.Value("id", &p.ID),
	}
}

// NewPriceLine returns a visible, labelled price line.
func NewPriceLine(price float64, color, title string) *PriceLine {
	return &PriceLine{
		Price:            price,
		Color:            color,
		LineVisible:      options.Ptr(true),
		AxisLabelVisible: options.Ptr(true),
		Title:            title,
	}
}
