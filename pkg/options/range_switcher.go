package options

import "github.com/matzehuels/lwcharts/pkg/optdoc"

// RangeConfig is one selectable display range. A nil Range is the "show
// everything" entry, which is never filtered out.
type RangeConfig struct {
	Text  string
	Range *TimeRange
}

func (r *RangeConfig) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("text", &r.Text),
		optdoc.Optional("range", &r.Range),
	}
}

// Range returns a concrete-duration entry.
func Range(text string, r TimeRange) *RangeConfig {
	return &RangeConfig{Text: text, Range: &r}
}

// AllRange returns the "show everything" entry.
func AllRange(text string) *RangeConfig {
	return &RangeConfig{Text: text}
}

// RangeSwitcherOptions configures the range selector buttons.
type RangeSwitcherOptions struct {
	Visible  *bool
	Position *Corner
	Ranges   []*RangeConfig
}

func (r *RangeSwitcherOptions) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Optional("visible", &r.Visible),
		optdoc.Optional("position", &r.Position),
		optdoc.Children("ranges", &r.Ranges),
	}
}

// DefaultRangeSwitcher returns the standard day-to-all range set.
func DefaultRangeSwitcher() *RangeSwitcherOptions {
	return &RangeSwitcherOptions{
		Visible:  Ptr(true),
		Position: Ptr(TopRight),
		Ranges: []*RangeConfig{
			Range("1D", RangeDay),
			Range("1W", RangeWeek),
			Range("1M", RangeMonth),
			Range("3M", RangeQuarter),
			Range("6M", RangeHalfYear),
			Range("1Y", RangeYear),
			Range("5Y", RangeFiveYear),
			AllRange("All"),
		},
	}
}
