package bridge

import (
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// Response types a surface may report.
const (
	ResponseReady       = "ready"
	ResponseClick       = "click"
	ResponseCrosshair   = "crosshairMove"
	ResponseVisibleTime = "visibleRangeChange"
	ResponseError       = "error"
)

var knownResponses = map[string]bool{
	ResponseReady:       true,
	ResponseClick:       true,
	ResponseCrosshair:   true,
	ResponseVisibleTime: true,
	ResponseError:       true,
}

// Response is an event reported back by the rendering surface. Which fields
// are set depends on Type.
type Response struct {
	Type     string
	ChartID  string
	SeriesID *string
	Time     *data.Timestamp
	Price    *float64
	From     *data.Timestamp
	To       *data.Timestamp
	Message  string

	// Raw is the event mapping as received.
	Raw map[string]any
}

func (r *Response) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("type", &r.Type),
		optdoc.Value("chart_id", &r.ChartID),
		optdoc.Optional("series_id", &r.SeriesID),
		optdoc.Optional("time", &r.Time),
		optdoc.Optional("price", &r.Price),
		optdoc.Optional("from", &r.From),
		optdoc.Optional("to", &r.To),
		optdoc.Value("message", &r.Message),
	}
}

// Known reports whether Type is one of the Response* constants.
func (r *Response) Known() bool { return knownResponses[r.Type] }

// Err returns the surface's error for error responses, nil otherwise.
func (r *Response) Err() error {
	if r == nil || r.Type != ResponseError {
		return nil
	}
	msg := r.Message
	if msg == "" {
		msg = "rendering surface reported an error"
	}
	return errors.New(errors.ErrCodeInternal, "surface: %s", msg)
}

// ParseResponse decodes an event mapping. The "type" key is required and
// must be a string; event fields are matched in either key case and unknown
// keys are ignored. Unknown types are returned as-is so callers can decide
// what to do with them.
func ParseResponse(m map[string]any) (*Response, error) {
	if m == nil {
		return nil, nil
	}
	raw, ok := m["type"]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "response has no type")
	}
	if _, ok := raw.(string); !ok {
		return nil, errors.TypeError("type", "string", raw)
	}
	r, err := optdoc.Update(&Response{}, m)
	if err != nil {
		return nil, err
	}
	r.Raw = m
	return r, nil
}
