package optdoc

import (
	"sort"
)

// Update applies patch to d and returns d for chaining.
//
// For each key/value pair:
//   - the key is matched against field names in snake_case or camelCase
//   - unknown keys are ignored
//   - nil values are skipped, so Update never clears a field
//   - a mapping sent to a nested-document field is merged into the existing
//     child, which is created first when unset
//   - a mapping sent to a mapping-of-documents field is merged entry by entry
//   - anything else goes through the field's typed setter
//
// Keys are applied in sorted order so that errors are deterministic. The first
// setter failure aborts the update and is returned; fields applied before it
// keep their new values.
func Update[D Document](d D, patch map[string]any) (D, error) {
	if len(patch) == 0 {
		return d, nil
	}
	idx := newIndex(d.Fields())
	for _, key := range sortedKeys(patch) {
		value := patch[key]
		if value == nil {
			continue
		}
		f, ok := idx.lookup(key)
		if !ok {
			continue
		}
		if err := apply(f, value); err != nil {
			return d, err
		}
	}
	return d, nil
}

func apply(f Field, value any) error {
	switch {
	case f.Kind == Nested:
		if m, ok := AsMap(value); ok {
			_, err := Update(f.child(true), m)
			return err
		}
	case f.IsDocumentMapping():
		if m, ok := AsMap(value); ok {
			for _, k := range sortedKeys(m) {
				v := m[k]
				if v == nil {
					continue
				}
				if sub, ok := AsMap(v); ok {
					if _, err := Update(f.entry(k, true), sub); err != nil {
						return err
					}
					continue
				}
				if err := f.setEntry(k, v); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return f.set(value)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
