package optdoc

import (
	"github.com/matzehuels/lwcharts/pkg/casing"
	"github.com/matzehuels/lwcharts/pkg/errors"
)

// FlattenKey is the one wire key whose serialized mapping is merged into the
// parent rather than nested. Every other *Options field stays nested.
const FlattenKey = "backgroundOptions"

// MaxDepth bounds document nesting during serialization. Option graphs must
// be acyclic; exceeding this depth is reported as a CYCLIC_DOCUMENT error.
const MaxDepth = 1000

// AsDict serializes d to its wire mapping.
//
// The result contains no nil or empty-string leaves, every key is camelCase
// and every enum is reduced to its primitive code. AsDict does not modify d
// and always builds a fresh mapping.
func AsDict(d Document) (map[string]any, error) {
	if d == nil {
		return nil, nil
	}
	return encodeDocument(d, 0)
}

// AsDictAt is AsDict for a document found depth levels below the root of
// an encoding. DepthMarshaler implementations use it to keep the nesting
// count of the document that contains them.
func AsDictAt(d Document, depth int) (map[string]any, error) {
	if d == nil {
		return nil, nil
	}
	return encodeDocument(d, depth)
}

// MustAsDict is like AsDict but panics on error. It is intended for tests and
// package-level examples over known-acyclic documents.
func MustAsDict(d Document) map[string]any {
	m, err := AsDict(d)
	if err != nil {
		panic(err)
	}
	return m
}

func encodeDocument(d Document, depth int) (map[string]any, error) {
	if depth > MaxDepth {
		return nil, errCyclic()
	}

	out := make(map[string]any)
	for _, f := range d.Fields() {
		v := f.get()
		if v == nil {
			continue
		}
		ev, err := encodeValue(v, depth)
		if err != nil {
			return nil, err
		}
		if ev == nil {
			continue
		}
		if s, ok := ev.(string); ok && s == "" {
			continue
		}

		key := f.WireKey()
		if key == FlattenKey {
			if m, ok := ev.(map[string]any); ok {
				for k, x := range m {
					out[k] = x
				}
				continue
			}
		}
		out[key] = ev
	}
	return out, nil
}

func encodeValue(v any, depth int) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Enum:
		return x.EnumValue(), nil
	case DepthMarshaler:
		if depth+1 > MaxDepth {
			return nil, errCyclic()
		}
		return x.AsDictAt(depth + 1)
	case Marshaler:
		if depth+1 > MaxDepth {
			return nil, errCyclic()
		}
		return x.AsDict()
	case Document:
		return encodeDocument(x, depth+1)
	case []any:
		out := make([]any, len(x))
		for i, el := range x {
			ev, err := encodeValue(el, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case []map[string]any:
		out := make([]any, len(x))
		for i, el := range x {
			ev, err := encodeValue(el, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, el := range x {
			ev, err := encodeValue(el, depth+1)
			if err != nil {
				return nil, err
			}
			out[casing.SnakeToCamel(k)] = ev
		}
		return out, nil
	case map[any]any:
		m, _ := AsMap(x)
		return encodeValue(m, depth)
	default:
		return v, nil
	}
}

func errCyclic() error {
	return errors.New(errors.ErrCodeCyclicDocument,
		"document nesting exceeds %d levels; option graphs must be acyclic", MaxDepth)
}
