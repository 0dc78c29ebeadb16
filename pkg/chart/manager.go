package chart

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
	"github.com/matzehuels/lwcharts/pkg/options"
	"github.com/matzehuels/lwcharts/pkg/series"
)

// Entity is anything the manager can draw. *series.Series is the usual
// implementation; RawSeries carries a pre-built wire mapping.
type Entity interface {
	AsDict() (map[string]any, error)
}

// RawSeries is a series already in wire form.
type RawSeries map[string]any

// AsDict returns a shallow copy of r.
func (r RawSeries) AsDict() (map[string]any, error) {
	if r == nil {
		return nil, nil
	}
	out := make(map[string]any, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out, nil
}

// Manager owns the ordered series of one chart and knows which price scales
// the chart defines.
//
// Series are kept in insertion order. Ordering by pane and z-index happens at
// serialization time in GroupByPane and Flatten.
type Manager struct {
	opts     *options.ChartOptions
	logger   *log.Logger
	entities []Entity
}

// NewManager returns a manager validating price scale references against
// opts. A nil opts only knows the built-in scales; a nil logger uses
// log.Default().
func NewManager(opts *options.ChartOptions, logger *log.Logger) *Manager {
	if opts == nil {
		opts = &options.ChartOptions{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{opts: opts, logger: logger}
}

// Add appends e. A nil entity is rejected with INVALID_TYPE and a series with
// a negative pane id with INVALID_INPUT. A series on a price scale the chart
// does not define is still added; a warning is logged because the surface
// may create the scale on its own.
func (m *Manager) Add(e Entity) (*Manager, error) {
	if isNil(e) {
		return m, errors.New(errors.ErrCodeInvalidType, "cannot add %T: not a series", e)
	}
	if s, ok := e.(*series.Series); ok {
		if err := s.Validate(); err != nil {
			return m, err
		}
		if id := s.ScaleID(); !m.opts.HasScale(id) {
			m.logger.Warn("series references unregistered price scale",
				"kind", s.Kind,
				"priceScaleId", id)
		}
	}
	m.entities = append(m.entities, e)
	return m, nil
}

// MustAdd is like Add but panics on error.
func (m *Manager) MustAdd(es ...Entity) *Manager {
	for _, e := range es {
		if _, err := m.Add(e); err != nil {
			panic(err)
		}
	}
	return m
}

// Len returns the number of entities.
func (m *Manager) Len() int { return len(m.entities) }

// Entities returns the entities in insertion order.
func (m *Manager) Entities() []Entity { return slices.Clone(m.entities) }

// Options returns the chart options the manager validates against.
func (m *Manager) Options() *options.ChartOptions { return m.opts }

type placed struct {
	pane  int
	z     int
	value map[string]any
}

// GroupByPane serializes every entity and groups the results by pane id.
// Within a pane the list is stably sorted by ascending z-index, so equal
// z-indexes keep insertion order.
//
// An entity that fails to serialize, or yields no mapping, is logged and
// placed in pane 0 at z-index 0 instead of being dropped.
func (m *Manager) GroupByPane() map[int][]map[string]any {
	byPane := make(map[int][]placed)
	for i, e := range m.entities {
		d, err := e.AsDict()
		if err != nil || d == nil {
			m.logger.Error("series did not serialize to a mapping; placing in pane 0",
				"index", i,
				"type", typeName(e),
				"err", err)
			byPane[0] = append(byPane[0], placed{value: degraded(e, err)})
			continue
		}
		p := placed{pane: paneOf(d), z: zIndexOf(d), value: d}
		byPane[p.pane] = append(byPane[p.pane], p)
	}

	out := make(map[int][]map[string]any, len(byPane))
	for pane, items := range byPane {
		slices.SortStableFunc(items, func(a, b placed) int { return cmp.Compare(a.z, b.z) })
		list := make([]map[string]any, len(items))
		for i, it := range items {
			list[i] = it.value
		}
		out[pane] = list
	}
	return out
}

// Flatten returns the serialized series in render order: panes ascending,
// and within each pane the order of GroupByPane.
func (m *Manager) Flatten() []map[string]any {
	groups := m.GroupByPane()
	out := make([]map[string]any, 0, len(m.entities))
	panes := make([]int, 0, len(groups))
	for p := range groups {
		panes = append(panes, p)
	}
	slices.Sort(panes)
	for _, p := range panes {
		out = append(out, groups[p]...)
	}
	return out
}

// paneOf reads a non-negative integer paneId, defaulting to 0.
func paneOf(d map[string]any) int {
	if n, ok := optdoc.ToInt(d["paneId"]); ok && n >= 0 {
		return int(n)
	}
	return 0
}

// zIndexOf reads options.zIndex, defaulting to 0.
func zIndexOf(d map[string]any) int {
	opts, ok := optdoc.AsMap(d["options"])
	if !ok {
		return 0
	}
	if n, ok := optdoc.ToInt(opts["zIndex"]); ok {
		return int(n)
	}
	return 0
}

func degraded(e Entity, err error) map[string]any {
	d := map[string]any{
		"type":    typeName(e),
		"paneId":  0,
		"data":    []any{},
		"options": map[string]any{"zIndex": 0},
	}
	if err != nil {
		d["error"] = errors.UserMessage(err)
	}
	return d
}

func typeName(e Entity) string {
	if s, ok := e.(*series.Series); ok {
		return string(s.Kind)
	}
	if r, ok := e.(RawSeries); ok {
		if t, ok := r["type"].(string); ok {
			return t
		}
	}
	return "unknown"
}

func isNil(e Entity) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *series.Series:
		return v == nil
	case RawSeries:
		return v == nil
	}
	return false
}
