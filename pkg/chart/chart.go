package chart

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/lwcharts/pkg/annotation"
	"github.com/matzehuels/lwcharts/pkg/document"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
	"github.com/matzehuels/lwcharts/pkg/options"
	"github.com/matzehuels/lwcharts/pkg/tooltip"
	"github.com/matzehuels/lwcharts/pkg/trade"
)

// Chart is the aggregate root of one chart: global options, series,
// annotations, tooltips, trades and the sync group it belongs to.
//
// A chart's object graph must be owned by one build at a time. Nothing in it
// is safe for concurrent mutation.
type Chart struct {
	ID          string
	Options     *options.ChartOptions
	Series      *Manager
	Annotations *annotation.Manager
	Tooltips    *tooltip.Manager
	Trades      []*trade.Trade
	GroupID     int
}

// NewID returns a fresh chart id.
func NewID() string { return "chart-" + uuid.NewString() }

// New returns an empty chart with a generated id. A nil opts uses
// options.Default().
func New(opts *options.ChartOptions, logger *log.Logger) *Chart {
	if opts == nil {
		opts = options.Default()
	}
	return &Chart{
		ID:          NewID(),
		Options:     opts,
		Series:      NewManager(opts, logger),
		Annotations: annotation.NewManager(),
		Tooltips:    tooltip.NewManager(),
	}
}

// Add appends entities to the series manager.
func (c *Chart) Add(es ...Entity) (*Chart, error) {
	for _, e := range es {
		if _, err := c.Series.Add(e); err != nil {
			return c, err
		}
	}
	return c, nil
}

// AddTrades appends trades.
func (c *Chart) AddTrades(ts ...*trade.Trade) *Chart {
	c.Trades = append(c.Trades, ts...)
	return c
}

// Document serializes the chart and assembles its wire document. sync may be
// nil. Every call rebuilds the document from the current object graph.
func (c *Chart) Document(sync *document.SyncContext) (document.Document, error) {
	in, err := c.Input()
	if err != nil {
		return nil, err
	}
	in.Sync = sync
	return document.Assemble(in)
}

// Input serializes the chart into assembler input.
//
// Price scales and trade visualization options are lifted out of the
// options mapping: scales are passed as explicit overrides and trade options
// travel next to the trades rather than inside the chart section.
func (c *Chart) Input() (document.Input, error) {
	in := document.Input{ChartID: c.ID, GroupID: c.GroupID}

	opts := map[string]any{}
	if c.Options != nil {
		var err error
		if opts, err = optdoc.AsDict(c.Options); err != nil {
			return in, err
		}
	}
	in.LeftPriceScale = liftMap(opts, "leftPriceScale")
	in.RightPriceScale = liftMap(opts, "rightPriceScale")
	in.OverlayPriceScales = liftMap(opts, "overlayPriceScales")
	in.TradeOptions = liftMap(opts, "tradeVisualization")
	in.Options = opts

	in.Series = c.Series.Flatten()

	var err error
	if in.Annotations, err = c.Annotations.AsList(); err != nil {
		return in, err
	}
	if in.Tooltips, err = c.Tooltips.AsDict(); err != nil {
		return in, err
	}
	if in.Trades, err = trade.List(c.Trades); err != nil {
		return in, err
	}
	return in, nil
}

// liftMap removes key from m and returns its mapping value, or nil.
func liftMap(m map[string]any, key string) map[string]any {
	v, ok := m[key]
	if !ok {
		return nil
	}
	delete(m, key)
	out, _ := optdoc.AsMap(v)
	return out
}
