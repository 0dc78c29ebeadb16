package options

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// Ptr returns a pointer to v. Optional option fields are pointers, and this
// keeps literal construction short.
func Ptr[T any](v T) *T { return &v }

// BackgroundOptions is a solid or vertical-gradient fill.
type BackgroundOptions struct {
	Type        *ColorType
	Color       string
	TopColor    string
	BottomColor string
}

func (b *BackgroundOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("type", &b.Type),
		optdoc.Value("color", &b.Color),
		optdoc.Value("top_color", &b.TopColor),
		optdoc.Value("bottom_color", &b.BottomColor),
	}
}

// SolidBackground returns a solid fill.
func SolidBackground(color string) *BackgroundOptions {
	return &BackgroundOptions{Type: Ptr(ColorSolid), Color: color}
}

// GradientBackground returns a top-to-bottom gradient fill.
func GradientBackground(top, bottom string) *BackgroundOptions {
	return &BackgroundOptions{Type: Ptr(ColorVerticalGradient), TopColor: top, BottomColor: bottom}
}

// LayoutOptions holds chart-wide colors and fonts.
//
// The background is declared as background_options and is merged into the
// layout mapping on the wire rather than nested.
type LayoutOptions struct {
	BackgroundOptions  *BackgroundOptions
	TextColor          string
	FontSize           *int
	FontFamily         string
	AttributionLogo    *bool
	PaneSeparatorColor string
}

func (l *LayoutOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Child("background_options", &l.BackgroundOptions),
		optdoc.Value("text_color", &l.TextColor),
		optdoc.Optional("font_size", &l.FontSize),
		optdoc.Value("font_family", &l.FontFamily),
		optdoc.Optional("attribution_logo", &l.AttributionLogo),
		optdoc.Value("pane_separator_color", &l.PaneSeparatorColor),
	}
}

// GridLineOptions styles one direction of grid lines.
type GridLineOptions struct {
	Color   string
	Style   *LineStyle
	Visible *bool
}

func (g *GridLineOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("color", &g.Color),
		optdoc.Optional("style", &g.Style),
		optdoc.Optional("visible", &g.Visible),
	}
}

// GridOptions styles vertical and horizontal grid lines.
type GridOptions struct {
	VertLines *GridLineOptions
	HorzLines *GridLineOptions
}

func (g *GridOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Child("vert_lines", &g.VertLines),
		optdoc.Child("horz_lines", &g.HorzLines),
	}
}

// CrosshairLineOptions styles one crosshair axis line.
type CrosshairLineOptions struct {
	Color                string
	Width                *int
	Style                *LineStyle
	Visible              *bool
	LabelVisible         *bool
	LabelBackgroundColor string
}

func (c *CrosshairLineOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("color", &c.Color),
		optdoc.Optional("width", &c.Width),
		optdoc.Optional("style", &c.Style),
		optdoc.Optional("visible", &c.Visible),
		optdoc.Optional("label_visible", &c.LabelVisible),
		optdoc.Value("label_background_color", &c.LabelBackgroundColor),
	}
}

// CrosshairOptions configures the crosshair.
type CrosshairOptions struct {
	Mode     *CrosshairMode
	VertLine *CrosshairLineOptions
	HorzLine *CrosshairLineOptions
}

func (c *CrosshairOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("mode", &c.Mode),
		optdoc.Child("vert_line", &c.VertLine),
		optdoc.Child("horz_line", &c.HorzLine),
	}
}
