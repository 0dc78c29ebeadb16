// Package tooltip defines hover tooltip configurations and a named registry
// of them.
//
// Tooltips render fields of the hovered point through a template with
// {placeholder} markers. [Manager.AsDict] produces the "tooltipConfigs"
// mapping of a chart.
package tooltip

import (
	"regexp"

	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// Type selects a built-in tooltip layout.
type Type string

const (
	OHLC   Type = "ohlc"
	Single Type = "single"
	Multi  Type = "multi"
	Custom Type = "custom"
	Trade  Type = "trade"
	Marker Type = "marker"
)

func (t Type) EnumValue() any { return string(t) }

func (t *Type) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(t, v, func(x Type) bool {
		switch x {
		case OHLC, Single, Multi, Custom, Trade, Marker:
			return true
		}
		return false
	})
}

// Position selects where the tooltip is anchored.
type Position string

const (
	Cursor Position = "cursor"
	Fixed  Position = "fixed"
	Auto   Position = "auto"
)

func (p Position) EnumValue() any { return string(p) }

func (p *Position) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(p, v, func(x Position) bool { return x == Cursor || x == Fixed || x == Auto })
}

// Field is one labelled value shown in a tooltip.
type Field struct {
	Label     string
	ValueKey  string
	Precision *int
	Prefix    string
	Suffix    string
	Color     string
}

func (f *Field) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("label", &f.Label),
		optdoc.Value("value_key", &f.ValueKey),
		optdoc.Optional("precision", &f.Precision),
		optdoc.Value("prefix", &f.Prefix),
		optdoc.Value("suffix", &f.Suffix),
		optdoc.Value("color", &f.Color),
	}
}

// Style sets tooltip box colors and spacing.
type Style struct {
	BackgroundColor string
	BorderColor     string
	BorderWidth     *int
	BorderRadius    *int
	Padding         *int
	FontSize        *int
	FontFamily      string
	Color           string
	BoxShadow       string
	ZIndex          *int
}

func (s *Style) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("background_color", &s.BackgroundColor),
		optdoc.Value("border_color", &s.BorderColor),
		optdoc.Optional("border_width", &s.BorderWidth),
		optdoc.Optional("border_radius", &s.BorderRadius),
		optdoc.Optional("padding", &s.Padding),
		optdoc.Optional("font_size", &s.FontSize),
		optdoc.Value("font_family", &s.FontFamily),
		optdoc.Value("color", &s.Color),
		optdoc.Value("box_shadow", &s.BoxShadow),
		optdoc.Optional("z_index", &s.ZIndex),
	}
}

// Config is one tooltip definition.
type Config struct {
	Enabled    bool
	Type       Type
	Template   string
	Items      []*Field
	Position   Position
	Offset     map[string]any
	Style      *Style
	ShowDate   bool
	DateFormat string
	ShowTime   bool
	TimeFormat string
}

func (c *Config) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("enabled", &c.Enabled),
		optdoc.Value("type", &c.Type),
		optdoc.Value("template", &c.Template),
		optdoc.Children("fields", &c.Items),
		optdoc.Value("position", &c.Position),
		optdoc.Raw("offset", &c.Offset),
		optdoc.Child("style", &c.Style),
		optdoc.Value("show_date", &c.ShowDate),
		optdoc.Value("date_format", &c.DateFormat),
		optdoc.Value("show_time", &c.ShowTime),
		optdoc.Value("time_format", &c.TimeFormat),
	}
}

var placeholderRegex = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Placeholders returns the {name} markers of the template in order.
func (c *Config) Placeholders() []string {
	matches := placeholderRegex.FindAllStringSubmatch(c.Template, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// Validate rejects custom tooltips without a template.
func (c *Config) Validate() error {
	if c.Type == Custom && c.Template == "" {
		return errors.New(errors.ErrCodeInvalidInput, "custom tooltip requires a template")
	}
	return nil
}

func newConfig(t Type, tmpl string, fields ...*Field) *Config {
	return &Config{
		Enabled:    true,
		Type:       t,
		Template:   tmpl,
		Items:      fields,
		Position:   Cursor,
		ShowDate:   true,
		DateFormat: "YYYY-MM-DD",
		ShowTime:   true,
		TimeFormat: "HH:mm",
		Style: &Style{
			BackgroundColor: "rgba(255, 255, 255, 0.95)",
			BorderColor:     "#e1e3e6",
			BorderWidth:     ptr(1),
			BorderRadius:    ptr(4),
			Padding:         ptr(6),
			FontSize:        ptr(12),
			Color:           "#131722",
		},
	}
}

func ptr[T any](v T) *T { return &v }

// OHLCTooltip shows open, high, low, close and volume.
func OHLCTooltip() *Config {
	return newConfig(OHLC, "O: {open} H: {high} L: {low} C: {close} V: {volume}",
		&Field{Label: "Open", ValueKey: "open", Precision: ptr(2)},
		&Field{Label: "High", ValueKey: "high", Precision: ptr(2)},
		&Field{Label: "Low", ValueKey: "low", Precision: ptr(2)},
		&Field{Label: "Close", ValueKey: "close", Precision: ptr(2)},
		&Field{Label: "Volume", ValueKey: "volume", Precision: ptr(0)},
	)
}

// SingleValueTooltip shows one value.
func SingleValueTooltip() *Config {
	return newConfig(Single, "{value}", &Field{Label: "Value", ValueKey: "value", Precision: ptr(2)})
}

// TradeTooltip shows trade entry, exit and profit.
func TradeTooltip() *Config {
	return newConfig(Trade, "Entry: {entryPrice} Exit: {exitPrice} P&L: {pnl}",
		&Field{Label: "Entry", ValueKey: "entryPrice", Precision: ptr(2)},
		&Field{Label: "Exit", ValueKey: "exitPrice", Precision: ptr(2)},
		&Field{Label: "P&L", ValueKey: "pnl", Precision: ptr(2)},
	)
}
