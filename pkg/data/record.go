package data

import (
	"github.com/matzehuels/lwcharts/pkg/errors"
	"github.com/matzehuels/lwcharts/pkg/optdoc"
)

// FromRecord builds one point from a tabular record. mapping maps point field
// names (snake or camel case) to record column names; fields without a
// mapping entry are looked up under their own name. The time field is
// required.
func FromRecord[P Point](newPoint func() P, record map[string]any, mapping map[string]string) (P, error) {
	p := newPoint()
	patch := make(map[string]any, len(record))
	for _, f := range optdoc.Describe(p) {
		col := columnFor(f, mapping)
		if v, ok := record[col]; ok {
			patch[f.Name] = v
		}
	}
	if _, ok := patch["time"]; !ok {
		return p, errors.New(errors.ErrCodeInvalidInput, "record has no time column %q", columnFor(optdoc.Field{Name: "time"}, mapping))
	}
	return optdoc.Update(p, patch)
}

// FromRecords converts every record with FromRecord. The first failure is
// returned together with the index of the offending record.
func FromRecords[P Point](newPoint func() P, records []map[string]any, mapping map[string]string) ([]P, error) {
	out := make([]P, 0, len(records))
	for i, rec := range records {
		p, err := FromRecord(newPoint, rec, mapping)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "record %d", i)
		}
		out = append(out, p)
	}
	return out, nil
}

func columnFor(f optdoc.Field, mapping map[string]string) string {
	if col, ok := mapping[f.Name]; ok {
		return col
	}
	if col, ok := mapping[f.WireKey()]; ok {
		return col
	}
	return f.Name
}
