package annotation

import (
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// Type is the drawing primitive of an annotation.
type Type string

const (
	Text      Type = "text"
	Arrow     Type = "arrow"
	Shape     Type = "shape"
	Line      Type = "line"
	Rectangle Type = "rectangle"
	Circle    Type = "circle"
)

func (t Type) EnumValue() any { return string(t) }

func (t *Type) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(t, v, func(x Type) bool {
		switch x {
		case Text, Arrow, Shape, Line, Rectangle, Circle:
			return true
		}
		return false
	})
}

// Position places an annotation relative to its price.
type Position string

const (
	Above  Position = "above"
	Below  Position = "below"
	Inline Position = "inline"
)

func (p Position) EnumValue() any { return string(p) }

func (p *Position) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(p, v, func(x Position) bool { return x == Above || x == Below || x == Inline })
}

// Annotation is a label or shape pinned to a time and price.
type Annotation struct {
	Time            data.Timestamp
	Price           float64
	Text            string
	Type            Type
	Position        Position
	Color           string
	BackgroundColor string
	FontSize        *int
	FontWeight      string
	TextColor       string
	BorderColor     string
	BorderWidth     *int
	Opacity         *float64
	ShowTime        *bool
	Tooltip         string
}

// New returns a text annotation above the price.
func New(t data.Timestamp, price float64, text string) *Annotation {
	return &Annotation{Time: t, Price: price, Text: text, Type: Text, Position: Above}
}

func (a *Annotation) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("time", &a.Time),
		optdoc.Value("price", &a.Price),
		optdoc.Value("text", &a.Text),
		optdoc.Value("type", &a.Type),
		optdoc.Value("position", &a.Position),
		optdoc.Value("color", &a.Color),
		optdoc.Value("background_color", &a.BackgroundColor),
		optdoc.Optional("font_size", &a.FontSize),
		optdoc.Value("font_weight", &a.FontWeight),
		optdoc.Value("text_color", &a.TextColor),
		optdoc.Value("border_color", &a.BorderColor),
		optdoc.Optional("border_width", &a.BorderWidth),
		optdoc.Optional("opacity", &a.Opacity),
		optdoc.Optional("show_time", &a.ShowTime),
		optdoc.Value("tooltip", &a.Tooltip),
	}
}

// Validate rejects annotations without text or with an opacity outside [0, 1].
func (a *Annotation) Validate() error {
	if a.Text == "" {
		return errors.New(errors.ErrCodeInvalidInput, "annotation at %d has no text", a.Time)
	}
	if a.Opacity != nil && (*a.Opacity < 0 || *a.Opacity > 1) {
		return errors.New(errors.ErrCodeInvalidInput, "annotation opacity %v outside [0, 1]", *a.Opacity)
	}
	return nil
}

// Layer is a named, independently toggled group of annotations.
type Layer struct {
	Name        string
	Visible     bool
	Opacity     float64
	Annotations []*Annotation
}

func (l *Layer) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("name", &l.Name),
		optdoc.Value("visible", &l.Visible),
		optdoc.Value("opacity", &l.Opacity),
		optdoc.Children("annotations", &l.Annotations),
	}
}

// Add validates and appends annotations.
func (l *Layer) Add(as ...*Annotation) error {
	for _, a := range as {
		if a == nil {
			return errors.New(errors.ErrCodeInvalidType, "layer %q: nil annotation", l.Name)
		}
		if err := a.Validate(); err != nil {
			return err
		}
	}
	l.Annotations = append(l.Annotations, as...)
	return nil
}

// AsDict returns the layer with its annotation list always present.
func (l *Layer) AsDict() (map[string]any, error) { return l.AsDictAt(0) }

// AsDictAt is AsDict for a layer nested depth levels deep.
func (l *Layer) AsDictAt(depth int) (map[string]any, error) {
	m, err := optdoc.AsDictAt(l, depth)
	if err != nil {
		return nil, err
	}
	if _, ok := m["annotations"]; !ok {
		m["annotations"] = []any{}
	}
	return m, nil
}

var _ optdoc.DepthMarshaler = (*Layer)(nil)
