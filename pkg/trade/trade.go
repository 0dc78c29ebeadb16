// Package trade models executed trades drawn on top of a chart.
//
// A [Trade] serializes its entry and exit together with computed profit
// fields (pnl, pnlPercentage, isProfitable), so the rendering surface does
// not need to recompute them.
package trade

import (
	"github.com/matzehuels/lwcharts/pkg/data"
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// Side is the direction of a trade.
type Side string

const (
	Long  Side = "long"
	Short Side = "short"
)

func (s Side) EnumValue() any { return string(s) }

func (s *Side) ParseValue(v any) bool {
	return optdoc.ParseStringEnum(s, v, func(x Side) bool { return x == Long || x == Short })
}

// Trade is one round trip from entry to exit.
type Trade struct {
	ID         string
	EntryTime  data.Timestamp
	EntryPrice float64
	ExitTime   data.Timestamp
	ExitPrice  float64
	Quantity   float64
	Side       Side
	Notes      string
	Text       string
}

// New returns a long trade of quantity 1.
func New(entry data.Timestamp, entryPrice float64, exit data.Timestamp, exitPrice float64) *Trade {
	return &Trade{
		EntryTime:  entry,
		EntryPrice: entryPrice,
		ExitTime:   exit,
		ExitPrice:  exitPrice,
		Quantity:   1,
		Side:       Long,
	}
}

func (t *Trade) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("id", &t.ID),
		optdoc.Value("entry_time", &t.EntryTime),
		optdoc.Value("entry_price", &t.EntryPrice),
		optdoc.Value("exit_time", &t.ExitTime),
		optdoc.Value("exit_price", &t.ExitPrice),
		optdoc.Value("quantity", &t.Quantity),
		optdoc.Value("trade_type", &t.Side),
		optdoc.Value("notes", &t.Notes),
		optdoc.Value("text", &t.Text),
	}
}

// Validate checks prices, quantity, side and chronology.
func (t *Trade) Validate() error {
	switch {
	case t.EntryPrice <= 0 || t.ExitPrice <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "trade %q: prices must be positive", t.ID)
	case t.Quantity <= 0:
		return errors.New(errors.ErrCodeInvalidInput, "trade %q: quantity must be positive", t.ID)
	case t.Side != Long && t.Side != Short:
		return errors.New(errors.ErrCodeInvalidInput, "trade %q: unknown side %q", t.ID, t.Side)
	case t.ExitTime < t.EntryTime:
		return errors.New(errors.ErrCodeInvalidInput, "trade %q: exit precedes entry", t.ID)
	}
	return nil
}

// PnL returns the absolute profit or loss.
func (t *Trade) PnL() float64 {
	diff := t.ExitPrice - t.EntryPrice
	if t.Side == Short {
		diff = -diff
	}
	return diff * t.Quantity
}

// PnLPercentage returns the profit or loss relative to the entry value.
func (t *Trade) PnLPercentage() float64 {
	cost := t.EntryPrice * t.Quantity
	if cost == 0 {
		return 0
	}
	return t.PnL() / cost * 100
}

// IsProfitable reports whether the trade made money.
func (t *Trade) IsProfitable() bool { return t.PnL() > 0 }

// AsDict returns the wire form including the computed fields.
func (t *Trade) AsDict() (map[string]any, error) { return t.AsDictAt(0) }

// AsDictAt is AsDict for a trade nested depth levels deep.
func (t *Trade) AsDictAt(depth int) (map[string]any, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	m, err := optdoc.AsDictAt(t, depth)
	if err != nil {
		return nil, err
	}
	m["pnl"] = t.PnL()
	m["pnlPercentage"] = t.PnLPercentage()
	m["isProfitable"] = t.IsProfitable()
	return m, nil
}

// List serializes trades in order.
func List(trades []*Trade) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(trades))
	for i, t := range trades {
		if t == nil {
			return nil, errors.New(errors.ErrCodeInvalidType, "trade %d is nil", i)
		}
		m, err := t.AsDict()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

var _ optdoc.DepthMarshaler = (*Trade)(nil)
