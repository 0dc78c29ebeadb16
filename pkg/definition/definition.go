package definition

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/lwcharts/pkg/errors"
)

// Format is the encoding of a definition file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unknown definition format for %q (want .toml, .yaml or .yml)", path)
	}
}

// Definition describes a set of charts and how they are synchronized.
//
// Option sections are kept as raw mappings and applied through the
// forgiving update path, so keys may be written in snake_case or camelCase
// and unknown keys are ignored.
type Definition struct {
	Sync   map[string]any `toml:"sync" yaml:"sync"`
	Charts []ChartDef     `toml:"charts" yaml:"charts"`
}

// ChartDef describes one chart.
type ChartDef struct {
	// ID is the chart id. Empty generates one.
	ID      string         `toml:"id" yaml:"id"`
	Group   int            `toml:"group" yaml:"group"`
	Options map[string]any `toml:"options" yaml:"options"`

	Series      []SeriesDef                 `toml:"series" yaml:"series"`
	PriceVolume *PairDef                    `toml:"price_volume" yaml:"price_volume"`
	Trades      []map[string]any            `toml:"trades" yaml:"trades"`
	Annotations map[string][]map[string]any `toml:"annotations" yaml:"annotations"`
	Tooltips    map[string]map[string]any   `toml:"tooltips" yaml:"tooltips"`
}

// SeriesDef describes one series with inline data.
type SeriesDef struct {
	Type    string            `toml:"type" yaml:"type"`
	Data    []map[string]any  `toml:"data" yaml:"data"`
	Columns map[string]string `toml:"columns" yaml:"columns"`
	Options map[string]any    `toml:"options" yaml:"options"`
}

// PairDef describes a price series with a derived volume histogram.
type PairDef struct {
	// Type is the price series kind. Defaults to candlestick.
	Type         string            `toml:"type" yaml:"type"`
	Pane         int               `toml:"pane" yaml:"pane"`
	Data         []map[string]any  `toml:"data" yaml:"data"`
	Columns      map[string]string `toml:"columns" yaml:"columns"`
	UpColor      string            `toml:"up_color" yaml:"up_color"`
	DownColor    string            `toml:"down_color" yaml:"down_color"`
	// PriceScaleID defaults to "right" when absent; "" is the overlay scale.
	PriceScaleID *string           `toml:"price_scale_id" yaml:"price_scale_id"`
}

// Parse decodes a definition from r.
func Parse(r io.Reader, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&def); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml definition")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&def); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml definition")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown definition format %q", format)
	}
	def.normalize()
	return &def, nil
}

// ParseBytes decodes a definition held in memory.
func ParseBytes(b []byte, format Format) (*Definition, error) {
	return Parse(bytes.NewReader(b), format)
}

// Load reads and decodes the definition file at path. The format follows
// the file extension.
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return LoadAs(path, format)
}

// LoadAs reads and decodes the definition file at path in the given format.
func LoadAs(path string, format Format) (*Definition, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "definition file %s not found", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, format)
}

// normalize rewrites TOML local dates and date-times, which decode with a
// placeholder location, as UTC wall-clock times.
func (d *Definition) normalize() {
	for i := range d.Charts {
		c := &d.Charts[i]
		for j := range c.Series {
			normalizeRows(c.Series[j].Data)
		}
		if c.PriceVolume != nil {
			normalizeRows(c.PriceVolume.Data)
		}
		normalizeRows(c.Trades)
		for _, rows := range c.Annotations {
			normalizeRows(rows)
		}
	}
}

func normalizeRows(rows []map[string]any) {
	for _, row := range rows {
		for k, v := range row {
			if t, ok := v.(time.Time); ok {
				row[k] = asUTCWallClock(t)
			}
		}
	}
}

func asUTCWallClock(t time.Time) time.Time {
	switch t.Location().String() {
	case "datetime-local", "date-local", "time-local":
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}
	return t
}
