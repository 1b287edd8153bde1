package render

import (
	"fmt"
	"sort"

	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/schema"
)

// FieldValue is one field of a record prepared for display.
type FieldValue struct {
	Field   schema.Field
	Label   string
	Value   string
	Present bool

	// Err is set when a present raw value does not convert; Value then
	// holds the raw value as written
	Err error
}

// Fields lists the fields of r sorted by key. Without all only populated
// fields are listed. Registered aliases replace field labels. A label that
// resolves to another field ("Start" for start_text) gets the key appended.
func Fields(r *models.Record, all bool, opts FormatOptions) []FieldValue {
	fields := r.Populated()
	if all {
		fields = mergeFields(r.Schema().Fields(r.Entity()), fields)
	}

	out := make([]FieldValue, 0, len(fields))
	for _, f := range fields {
		fv := FieldValue{Field: f, Label: f.Label}
		if alias, ok := r.Schema().Alias(r.Entity(), f.Key); ok {
			fv.Label = alias
		}
		if owner, err := r.Schema().Resolve(r.Entity(), fv.Label); err == nil && owner.Key != f.Key {
			fv.Label = fmt.Sprintf("%s (%s)", fv.Label, f.Key)
		}

		raw, present := r.Raw(f.Key)
		if present {
			fv.Present = true
			converted, err := models.ConvertE(f.Type, raw, r.Location())
			if err != nil {
				fv.Value = fmt.Sprint(raw)
				fv.Err = err
			} else {
				fv.Value = FormatValue(converted, opts)
			}
		}

		out = append(out, fv)
	}
	return out
}

func mergeFields(declared, populated []schema.Field) []schema.Field {
	seen := make(map[string]bool, len(declared))
	out := make([]schema.Field, 0, len(declared)+len(populated))
	for _, f := range declared {
		seen[f.Key] = true
		out = append(out, f)
	}
	for _, f := range populated {
		if !seen[f.Key] {
			out = append(out, f)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}
