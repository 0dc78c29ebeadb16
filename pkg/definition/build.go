package definition

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/annotation"
	"github.com/matzehuels/lwcharts/pkg/chart"
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/document"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
	"github.com/matzehuels/lwcharts/pkg/options"
	"github.com/matzehuels/lwcharts/pkg/series"
	"github.com/matzehuels/lwcharts/pkg/tooltip"
	"github.com/matzehuels/lwcharts/pkg/trade"
)

// ohlcvColumns is the identity mapping used by a price/volume pair without
// explicit columns.
var ohlcvColumns = map[string]string{
	"time":   "time",
	"open":   "open",
	"high":   "high",
	"low":    "low",
	"close":  "close",
	"volume": "volume",
}

// Build turns the definition into charts and, when a sync section is
// present, a sync context. Charts start from options.Default().
func (d *Definition) Build(logger *log.Logger) ([]*chart.Chart, *document.SyncContext, error) {
	if len(d.Charts) == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "definition has no charts")
	}
	charts := make([]*chart.Chart, 0, len(d.Charts))
	for i := range d.Charts {
		c, err := d.Charts[i].Build(logger)
		if err != nil {
			return nil, nil, fmt.Errorf("chart %d: %w", i, err)
		}
		charts = append(charts, c)
	}

	var sync *document.SyncContext
	if d.Sync != nil {
		var err error
		if sync, err = optdoc.Update(document.NewSync(), d.Sync); err != nil {
			return nil, nil, fmt.Errorf("sync: %w", err)
		}
	}
	return charts, sync, nil
}

// Build turns one chart definition into a chart.
func (cd *ChartDef) Build(logger *log.Logger) (*chart.Chart, error) {
	opts, err := optdoc.Update(options.Default(), cd.Options)
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	if cd.Group < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "chart group id must be >= 0, got %d", cd.Group)
	}

	c := chart.New(opts, logger)
	if cd.ID != "" {
		if err := errors.ValidateChartID(cd.ID); err != nil {
			return nil, err
		}
		c.ID = cd.ID
	}
	c.GroupID = cd.Group

	// The pair registers the volume scale, so it goes first: series defined
	// below may draw on it without a warning.
	if p := cd.PriceVolume; p != nil {
		if err := p.addTo(c.Series); err != nil {
			return nil, fmt.Errorf("price_volume: %w", err)
		}
	}
	for i, sd := range cd.Series {
		s, err := sd.Build()
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		if _, err := c.Add(s); err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
	}

	for i, m := range cd.Trades {
		t, err := optdoc.Update(trade.New(0, 0, 0, 0), m)
		if err == nil {
			err = t.Validate()
		}
		if err != nil {
			return nil, fmt.Errorf("trade %d: %w", i, err)
		}
		c.AddTrades(t)
	}

	for _, layer := range sortedNames(cd.Annotations) {
		for i, m := range cd.Annotations[layer] {
			a, err := optdoc.Update(annotation.New(0, 0, ""), m)
			if err != nil {
				return nil, fmt.Errorf("annotation %s/%d: %w", layer, i, err)
			}
			if _, err := c.Annotations.Add(layer, a); err != nil {
				return nil, fmt.Errorf("annotation %s/%d: %w", layer, i, err)
			}
		}
	}

	for _, name := range sortedNames(cd.Tooltips) {
		cfg, err := buildTooltip(cd.Tooltips[name])
		if err != nil {
			return nil, fmt.Errorf("tooltip %s: %w", name, err)
		}
		if _, err := c.Tooltips.Add(name, cfg); err != nil {
			return nil, fmt.Errorf("tooltip %s: %w", name, err)
		}
	}
	return c, nil
}

// Build turns one series definition into a series.
func (sd SeriesDef) Build() (*series.Series, error) {
	kind, err := series.ParseKind(sd.Type)
	if err != nil {
		return nil, err
	}
	pts, err := data.FromRecords(kind.NewPoint, sd.Data, sd.Columns)
	if err != nil {
		return nil, err
	}
	return series.New(kind, pts...).Update(sd.Options)
}

func (p *PairDef) addTo(m *chart.Manager) error {
	kind := series.Candlestick
	if p.Type != "" {
		var err error
		if kind, err = series.ParseKind(p.Type); err != nil {
			return err
		}
	}
	cols := p.Columns
	if len(cols) == 0 {
		cols = ohlcvColumns
	}
	_, err := m.AddPriceVolumePair(p.Data, cols, kind, p.Pane, chart.PairOptions{
		UpColor:      p.UpColor,
		DownColor:    p.DownColor,
		PriceScaleID: p.PriceScaleID,
	})
	return err
}

// buildTooltip starts from the preset named by the "preset" key, if any,
// and applies the remaining keys.
func buildTooltip(m map[string]any) (*tooltip.Config, error) {
	cfg := &tooltip.Config{Enabled: true, Type: tooltip.Single, Position: tooltip.Cursor}
	if raw, ok := m["preset"]; ok {
		name, _ := raw.(string)
		switch tooltip.Type(name) {
		case tooltip.OHLC:
			cfg = tooltip.OHLCTooltip()
		case tooltip.Single:
			cfg = tooltip.SingleValueTooltip()
		case tooltip.Trade:
			cfg = tooltip.TradeTooltip()
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown tooltip preset %v", raw)
		}
	}
	return optdoc.Update(cfg, m)
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
