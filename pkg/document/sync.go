package document

import (
	"strconv"

	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// GroupSync holds the sync flags of one chart group.
type GroupSync struct {
	Crosshair bool
	TimeRange bool
}

func (g *GroupSync) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("crosshair", &g.Crosshair),
		optdoc.Value("time_range", &g.TimeRange),
	}
}

// SyncContext describes crosshair and time-range synchronization between
// charts. Its presence in Assemble adds a "syncConfig" section.
type SyncContext struct {
	Enabled   bool
	Crosshair bool
	TimeRange bool
	Groups    map[string]*GroupSync
}

func (s *SyncContext) Fields() []optdoc.Field {
	return []optdoc.Field{
		optdoc.Value("enabled", &s.Enabled),
		optdoc.Value("crosshair", &s.Crosshair),
		optdoc.Value("time_range", &s.TimeRange),
		optdoc.Entries("groups", &s.Groups),
	}
}

// NewSync returns an enabled context syncing both crosshair and time range.
func NewSync() *SyncContext {
	return &SyncContext{Enabled: true, Crosshair: true, TimeRange: true}
}

// Group returns the flags of chart group id, creating them from the global
// flags on first use.
func (s *SyncContext) Group(id int) *GroupSync {
	key := strconv.Itoa(id)
	if s.Groups == nil {
		s.Groups = make(map[string]*GroupSync)
	}
	g, ok := s.Groups[key]
	if !ok {
		g = &GroupSync{Crosshair: s.Crosshair, TimeRange: s.TimeRange}
		s.Groups[key] = g
	}
	return g
}

// AsDict returns {enabled, crosshair, timeRange, groups}. groups is always
// present.
func (s *SyncContext) AsDict() (map[string]any, error) { return s.AsDictAt(0) }

// AsDictAt is AsDict for a sync context nested depth levels deep.
func (s *SyncContext) AsDictAt(depth int) (map[string]any, error) {
	m, err := optdoc.AsDictAt(s, depth)
	if err != nil {
		return nil, err
	}
	if _, ok := m["groups"]; !ok {
		m["groups"] = map[string]any{}
	}
	return m, nil
}

var _ optdoc.DepthMarshaler = (*SyncContext)(nil)
