package annotation

import "github.com/matzehuels/lwcharts/pkg/errors"

// DefaultLayer receives annotations added without a layer name.
const DefaultLayer = "default"

// Manager holds annotation layers in creation order.
type Manager struct {
	order  []string
	layers map[string]*Layer
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{layers: make(map[string]*Layer)}
}

// Layer returns the named layer, creating a visible, opaque one on first use.
func (m *Manager) Layer(name string) *Layer {
	if l, ok := m.layers[name]; ok {
		return l
	}
	l := &Layer{Name: name, Visible: true, Opacity: 1}
	m.layers[name] = l
	m.order = append(m.order, name)
	return l
}

// Add appends annotations to the named layer ("" means DefaultLayer).
func (m *Manager) Add(layer string, as ...*Annotation) (*Manager, error) {
	if layer == "" {
		layer = DefaultLayer
	}
	if err := m.Layer(layer).Add(as...); err != nil {
		return m, err
	}
	return m, nil
}

// SetVisible shows or hides a layer.
func (m *Manager) SetVisible(name string, visible bool) error {
	l, ok := m.layers[name]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "annotation layer %q not found", name)
	}
	l.Visible = visible
	return nil
}

// Remove deletes a layer. Removing an unknown layer is a no-op.
func (m *Manager) Remove(name string) {
	if _, ok := m.layers[name]; !ok {
		return
	}
	delete(m.layers, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of annotations across all layers.
func (m *Manager) Len() int {
	n := 0
	for _, l := range m.layers {
		n += len(l.Annotations)
	}
	return n
}

// AsList returns the layers in creation order as wire mappings. A nil
// manager yields an empty list.
func (m *Manager) AsList() ([]any, error) {
	if m == nil {
		return []any{}, nil
	}
	out := make([]any, 0, len(m.order))
	for _, name := range m.order {
		d, err := m.layers[name].AsDict()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
