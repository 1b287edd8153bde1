package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// JSONOptions controls RecordsJSON output.
type JSONOptions struct {
	// Location dates are written in; UTC when nil
	Location *time.Location

	// Indent pretty prints the document with sorted keys
	Indent bool
}

var jsonPrettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: true}

// RecordsJSON writes records as a JSON array of objects holding the typed
// values of fields. Without fields every populated field of a record is
// written. Absent fields are omitted; dates are RFC 3339 strings and
// durations {"value", "units"} objects.
func RecordsJSON(records []*models.Record, fields []schema.Field, opts JSONOptions) ([]byte, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	objects := make([][]byte, 0, len(records))
	for _, r := range records {
		obj, err := recordObject(r, fields, loc)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}

	doc := append(append([]byte("["), bytes.Join(objects, []byte(","))...), ']')
	if opts.Indent {
		return pretty.PrettyOptions(doc, jsonPrettyOptions), nil
	}
	return pretty.Ugly(doc), nil
}

func recordObject(r *models.Record, fields []schema.Field, loc *time.Location) ([]byte, error) {
	if len(fields) == 0 {
		fields = r.Populated()
	}

	obj := []byte("{}")
	for _, f := range fields {
		if !r.Has(f.Key) {
			continue
		}

		var err error
		obj, err = sjson.SetBytes(obj, escapePath(f.Key), jsonValue(r.Get(f.Key), loc))
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", f.Key, err)
		}
	}
	return obj, nil
}

func jsonValue(v any, loc *time.Location) any {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return nil
		}
		return val.In(loc).Format(time.RFC3339)
	case models.Duration:
		return map[string]any{"value": val.Value, "units": string(val.Units)}
	default:
		return val
	}
}

var pathEscaper = strings.NewReplacer(
	".", `\.`,
	"*", `\*`,
	"?", `\?`,
	"|", `\|`,
	"#", `\#`,
	"@", `\@`,
)

func escapePath(key string) string {
	return pathEscaper.Replace(key)
}
