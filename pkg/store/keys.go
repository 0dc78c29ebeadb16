package store

// Keyer builds the keys documents and dispatch events are stored under.
type Keyer interface {
	// DocumentKey is the key of the latest wire document of a chart.
	DocumentKey(chartID string) string
	// EventKey is the key of the latest event reported for a chart.
	EventKey(chartID string) string
	// ContentKey addresses a document by content hash.
	ContentKey(data []byte) string
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() DefaultKeyer { return DefaultKeyer{} }

func (DefaultKeyer) DocumentKey(chartID string) string { return "document:" + chartID }
func (DefaultKeyer) EventKey(chartID string) string    { return "event:" + chartID }
func (DefaultKeyer) ContentKey(data []byte) string     { return "content:" + Hash(data) }

// ScopedKeyer prefixes every key of an inner Keyer, so several workspaces
// can share one backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prefixes all keys. A nil inner uses
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) *ScopedKeyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) DocumentKey(chartID string) string {
	return k.prefix + k.inner.DocumentKey(chartID)
}

func (k *ScopedKeyer) EventKey(chartID string) string {
	return k.prefix + k.inner.EventKey(chartID)
}

func (k *ScopedKeyer) ContentKey(data []byte) string {
	return k.prefix + k.inner.ContentKey(data)
}

var (
	_ Keyer = DefaultKeyer{}
	_ Keyer = (*ScopedKeyer)(nil)
)
