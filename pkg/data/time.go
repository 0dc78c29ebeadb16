package data

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// timeLayouts are tried in order for string inputs. Layouts without an
// offset parse as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102",
}

// ParseTime converts a point's time field into a time.Time.
//
// Accepted encodings:
//   - numeric epoch seconds (any Go number, or a numeric string)
//   - ISO-8601 / RFC 3339 date-times, with or without an offset suffix
//     (either +hh:mm or +hhmm)
//   - plain YYYY-MM-DD and basic YYYYMMDD dates
//   - time.Time and Timestamp values
func ParseTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x.UTC(), nil
	case Timestamp:
		return time.Unix(int64(x), 0).UTC(), nil
	case string:
		return parseTimeString(x)
	}
	if f, ok := optdoc.ToFloat(v); ok {
		return fromEpoch(f)
	}
	return time.Time{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported time value of type %T", v)
}

func parseTimeString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New(errors.ErrCodeInvalidFormat, "empty time string")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromEpoch(f)
	}
	return time.Time{}, errors.New(errors.ErrCodeInvalidFormat, "cannot parse time %q", s)
}

func fromEpoch(f float64) (time.Time, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, errors.New(errors.ErrCodeInvalidFormat, "non-finite epoch value")
	}
	sec, frac := math.Modf(f)
	return time.Unix(int64(sec), int64(frac*1e9)).UTC(), nil
}

// Timestamp is a point time in unix seconds. Setters accept every encoding
// ParseTime understands; the wire form is always the integer.
type Timestamp int64

// TimestampOf returns the Timestamp of t.
func TimestampOf(t time.Time) Timestamp { return Timestamp(t.Unix()) }

func (ts Timestamp) EnumValue() any { return int64(ts) }

func (ts *Timestamp) ParseValue(v any) bool {
	t, err := ParseTime(v)
	if err != nil {
		return false
	}
	*ts = TimestampOf(t)
	return true
}

// Time returns ts as a UTC time.Time.
func (ts Timestamp) Time() time.Time { return time.Unix(int64(ts), 0).UTC() }
