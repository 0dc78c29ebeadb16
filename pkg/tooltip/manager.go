package tooltip

import (
	"sort"

	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// Manager is a registry of named tooltip configurations.
type Manager struct {
	configs map[string]*Config
}

// NewManager returns an empty registry.
func NewManager() *Manager {
	return &Manager{configs: make(map[string]*Config)}
}

// Add registers cfg under name, replacing any previous entry.
func (m *Manager) Add(name string, cfg *Config) (*Manager, error) {
	if name == "" {
		return m, errors.New(errors.ErrCodeInvalidInput, "tooltip name cannot be empty")
	}
	if cfg == nil {
		return m, errors.New(errors.ErrCodeInvalidType, "tooltip %q: nil config", name)
	}
	if err := cfg.Validate(); err != nil {
		return m, err
	}
	m.configs[name] = cfg
	return m, nil
}

// Get returns the named configuration.
func (m *Manager) Get(name string) (*Config, bool) {
	cfg, ok := m.configs[name]
	return cfg, ok
}

// Remove deletes the named configuration and reports whether it existed.
func (m *Manager) Remove(name string) bool {
	if _, ok := m.configs[name]; !ok {
		return false
	}
	delete(m.configs, name)
	return true
}

// Names returns the registered names in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.configs))
	for n := range m.configs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered configurations.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.configs)
}

// AsDict returns {name: config} with every config in wire form. Names are
// business keys and are sent as given.
func (m *Manager) AsDict() (map[string]any, error) {
	out := make(map[string]any, m.Len())
	if m == nil {
		return out, nil
	}
	for name, cfg := range m.configs {
		d, err := optdoc.AsDict(cfg)
		if err != nil {
			return nil, err
		}
		out[name] = d
	}
	return out, nil
}
