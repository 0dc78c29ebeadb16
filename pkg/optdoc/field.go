package optdoc

import (
	"fmt"

	"github.com/matzehuels/lwcharts/pkg/casing"
	"github.com/matzehuels/lwcharts/pkg/errors"
)

// Document is a configuration node that describes its own fields.
//
// Fields must return descriptors bound to the receiver, so implementations
// use pointer receivers.
type Document interface {
	Fields() []Field
}

// Marshaler is implemented by documents that shape their own wire form (for
// example to add computed values). The encoder calls it when such a document
// appears nested inside another document.
type Marshaler interface {
	AsDict() (map[string]any, error)
}

// DepthMarshaler is a Marshaler that continues the encoder's nesting count.
// The encoder prefers it over AsDict, so MaxDepth also bounds graphs that
// pass through custom wire forms. Implementations encode their own fields
// with [AsDictAt] at the depth they are given.
type DepthMarshaler interface {
	Marshaler
	AsDictAt(depth int) (map[string]any, error)
}

// Enum is implemented by enumeration types. EnumValue returns the primitive
// code sent over the wire. A nil code is treated as unset.
type Enum interface {
	EnumValue() any
}

// ValueParser is implemented by pointer-to-enum types so setters can turn a
// primitive (from JSON, TOML or YAML) into the typed value.
type ValueParser interface {
	ParseValue(v any) bool
}

// Kind classifies the declared shape of a field.
type Kind uint8

const (
	// Scalar fields hold primitives or enums.
	Scalar Kind = iota
	// Nested fields hold a single child document.
	Nested
	// Sequence fields hold an ordered list of primitives or documents.
	Sequence
	// Mapping fields hold a string-keyed mapping of primitives or documents.
	Mapping
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Nested:
		return "nested"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Field describes one declared field of a document.
type Field struct {
	Name      string // snake_case identifier
	Kind      Kind   // declared shape
	Documents bool   // sequence/mapping elements are documents

	get      func() any
	set      func(v any) error
	child    func(create bool) Document
	entry    func(key string, create bool) Document
	setEntry func(key string, v any) error
}

// WireKey returns the camelCase key used in serialized output.
func (f Field) WireKey() string { return casing.SnakeToCamel(f.Name) }

// Get returns the current value, or nil when the field is unset.
func (f Field) Get() any { return f.get() }

// Set assigns v through the field's typed setter.
func (f Field) Set(v any) error { return f.set(v) }

// IsNested reports whether the field holds a nested document.
func (f Field) IsNested() bool { return f.Kind == Nested }

// IsDocumentSequence reports whether the field is a sequence of documents.
func (f Field) IsDocumentSequence() bool { return f.Kind == Sequence && f.Documents }

// IsDocumentMapping reports whether the field maps strings to documents.
func (f Field) IsDocumentMapping() bool { return f.Kind == Mapping && f.Documents }

// Child returns the nested document, allocating it first when create is true
// and the field is unset. It returns nil for non-nested fields.
func (f Field) Child(create bool) Document {
	if f.child == nil {
		return nil
	}
	return f.child(create)
}

// docPtr constrains PT to be *T and a Document.
type docPtr[T any] interface {
	*T
	Document
}

// Value declares an always-present scalar field.
func Value[T any](name string, p *T) Field {
	return Field{
		Name: name,
		Kind: Scalar,
		get:  func() any { return *p },
		set: func(v any) error {
			t, ok := Coerce[T](v)
			if !ok {
				return errors.TypeError(name, typeName[T](), v)
			}
			*p = t
			return nil
		},
	}
}

// Optional declares a scalar field where a nil pointer means unset.
func Optional[T any](name string, p **T) Field {
	return Field{
		Name: name,
		Kind: Scalar,
		get: func() any {
			if *p == nil {
				return nil
			}
			return **p
		},
		set: func(v any) error {
			t, ok := Coerce[T](v)
			if !ok {
				return errors.TypeError(name, typeName[T](), v)
			}
			*p = &t
			return nil
		},
	}
}

// Any declares a free-form scalar field stored as-is.
func Any(name string, p *any) Field {
	return Field{
		Name: name,
		Kind: Scalar,
		get:  func() any { return *p },
		set: func(v any) error {
			*p = v
			return nil
		},
	}
}

// Child declares a nested document field.
func Child[T any, PT docPtr[T]](name string, p *PT) Field {
	return Field{
		Name: name,
		Kind: Nested,
		get: func() any {
			if (*T)(*p) == nil {
				return nil
			}
			return Document(*p)
		},
		set: func(v any) error {
			d, ok := v.(PT)
			if !ok {
				return errors.TypeError(name, typeName[PT]()+" or mapping", v)
			}
			*p = d
			return nil
		},
		child: func(create bool) Document {
			if (*T)(*p) == nil {
				if !create {
					return nil
				}
				*p = PT(new(T))
			}
			return *p
		},
	}
}

// Children declares a sequence of documents. Mapping elements in an assigned
// []any are turned into new documents through [Update].
func Children[T any, PT docPtr[T]](name string, p *[]PT) Field {
	return Field{
		Name:      name,
		Kind:      Sequence,
		Documents: true,
		get: func() any {
			if *p == nil {
				return nil
			}
			out := make([]any, 0, len(*p))
			for _, d := range *p {
				if (*T)(d) == nil {
					continue
				}
				out = append(out, Document(d))
			}
			return out
		},
		set: func(v any) error {
			if docs, ok := v.([]PT); ok {
				*p = docs
				return nil
			}
			items, ok := AsSlice(v)
			if !ok {
				return errors.TypeError(name, "sequence", v)
			}
			out := make([]PT, 0, len(items))
			for i, el := range items {
				if d, ok := el.(PT); ok {
					out = append(out, d)
					continue
				}
				m, ok := AsMap(el)
				if !ok {
					return errors.TypeError(fmt.Sprintf("%s[%d]", name, i), "document or mapping", el)
				}
				d := PT(new(T))
				if _, err := Update(Document(d), m); err != nil {
					return err
				}
				out = append(out, d)
			}
			*p = out
			return nil
		},
	}
}

// List declares a sequence of scalars.
func List[T any](name string, p *[]T) Field {
	return Field{
		Name: name,
		Kind: Sequence,
		get: func() any {
			if *p == nil {
				return nil
			}
			out := make([]any, len(*p))
			for i, el := range *p {
				out[i] = el
			}
			return out
		},
		set: func(v any) error {
			if typed, ok := v.([]T); ok {
				*p = typed
				return nil
			}
			items, ok := AsSlice(v)
			if !ok {
				return errors.TypeError(name, "sequence", v)
			}
			out := make([]T, len(items))
			for i, el := range items {
				t, ok := Coerce[T](el)
				if !ok {
					return errors.TypeError(fmt.Sprintf("%s[%d]", name, i), typeName[T](), el)
				}
				out[i] = t
			}
			*p = out
			return nil
		},
	}
}

// Entries declares a mapping of string keys to documents. Updates merge entry
// by entry.
func Entries[T any, PT docPtr[T]](name string, p *map[string]PT) Field {
	return Field{
		Name:      name,
		Kind:      Mapping,
		Documents: true,
		get: func() any {
			if *p == nil {
				return nil
			}
			out := make(map[string]any, len(*p))
			for k, d := range *p {
				if (*T)(d) == nil {
					continue
				}
				out[k] = Document(d)
			}
			return out
		},
		set: func(v any) error {
			if typed, ok := v.(map[string]PT); ok {
				*p = typed
				return nil
			}
			return errors.TypeError(name, "mapping", v)
		},
		entry: func(key string, create bool) Document {
			if *p == nil {
				if !create {
					return nil
				}
				*p = make(map[string]PT)
			}
			d, ok := (*p)[key]
			if !ok || (*T)(d) == nil {
				if !create {
					return nil
				}
				d = PT(new(T))
				(*p)[key] = d
			}
			return d
		},
		setEntry: func(key string, v any) error {
			d, ok := v.(PT)
			if !ok {
				return errors.TypeError(name+"."+key, typeName[PT]()+" or mapping", v)
			}
			if *p == nil {
				*p = make(map[string]PT)
			}
			(*p)[key] = d
			return nil
		},
	}
}

// Raw declares a free-form string-keyed mapping.
func Raw(name string, p *map[string]any) Field {
	return Field{
		Name: name,
		Kind: Mapping,
		get: func() any {
			if *p == nil {
				return nil
			}
			return *p
		},
		set: func(v any) error {
			m, ok := AsMap(v)
			if !ok {
				return errors.TypeError(name, "mapping", v)
			}
			cp := make(map[string]any, len(m))
			for k, x := range m {
				cp[k] = x
			}
			*p = cp
			return nil
		},
	}
}

// Describe returns the descriptor table of d.
func Describe(d Document) []Field {
	return d.Fields()
}

// Lookup finds the field addressed by key, accepting either the snake_case
// name or its camelCase wire form.
func Lookup(d Document, key string) (Field, bool) {
	return newIndex(d.Fields()).lookup(key)
}

type index map[string]Field

func newIndex(fields []Field) index {
	idx := make(index, len(fields)*2)
	for _, f := range fields {
		idx[f.Name] = f
		if wk := f.WireKey(); wk != f.Name {
			if _, taken := idx[wk]; !taken {
				idx[wk] = f
			}
		}
	}
	return idx
}

func (idx index) lookup(key string) (Field, bool) {
	if f, ok := idx[key]; ok {
		return f, true
	}
	f, ok := idx[casing.CamelToSnake(key)]
	return f, ok
}

func typeName[T any]() string {
	var zero T
	name := fmt.Sprintf("%T", zero)
	if name == "<nil>" {
		return "value"
	}
	return name
}
