package models

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/spf13/cast"
)

var (
	// ErrUnknownField is returned when a field name resolves to no key of
	// the entity's schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidValue is returned when a present raw value cannot be
	// converted to the field's declared type.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNotFound is returned when a record lookup matches nothing.
	ErrNotFound = errors.New("not found")

	// ErrParentCycle is reported by Project.Link for tasks whose parent
	// chain leads back to themselves.
	ErrParentCycle = errors.New("parent cycle")
)

// Record is one attributed record: the raw attribute map produced by the
// upstream parser plus the schema used to type its values. Records are
// read-only once built.
type Record struct {
	entity schema.EntityType
	values map[string]any
	schema *schema.Schema
	loc    *time.Location
}

// NewRecord creates a Record. A nil schema selects the built-in tables and
// a nil location selects UTC.
func NewRecord(entity schema.EntityType, values map[string]any, s *schema.Schema, loc *time.Location) *Record {
	if s == nil {
		s = schema.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	if values == nil {
		values = map[string]any{}
	}

	return &Record{
		entity: entity,
		values: values,
		schema: s,
		loc:    loc,
	}
}

// Entity returns the entity type of the record.
func (r *Record) Entity() schema.EntityType {
	return r.entity
}

// Schema returns the schema the record is typed against.
func (r *Record) Schema() *schema.Schema {
	return r.schema
}

// Location returns the zone dates without offset are read in.
func (r *Record) Location() *time.Location {
	return r.loc
}

// Raw returns the unconverted value for key. A key mapped to null counts
// as absent.
func (r *Record) Raw(key string) (any, bool) {
	v, ok := r.values[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Has reports whether key carries a non-null value.
func (r *Record) Has(key string) bool {
	_, ok := r.Raw(key)
	return ok
}

// Keys returns the keys with a non-null value, sorted.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k, v := range r.values {
		if v != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Type returns the declared type of key.
func (r *Record) Type(key string) schema.FieldType {
	return r.schema.TypeOf(r.entity, key)
}

// Get returns the value of key converted according to its declared type.
// Absent keys yield the empty value of that type.
func (r *Record) Get(key string) any {
	raw, _ := r.Raw(key)
	return Convert(r.Type(key), raw, r.loc)
}

// Bool reads key as a boolean.
func (r *Record) Bool(key string) bool {
	raw, _ := r.Raw(key)
	return ToBoolean(raw)
}

// Float reads key as a float.
func (r *Record) Float(key string) float64 {
	raw, _ := r.Raw(key)
	return ToFloat(raw)
}

// Int reads key as an integer.
func (r *Record) Int(key string) int64 {
	raw, _ := r.Raw(key)
	return ToInteger(raw)
}

// Date reads key as a time; the zero time when absent.
func (r *Record) Date(key string) time.Time {
	raw, _ := r.Raw(key)
	return ToDate(raw, r.loc)
}

// Duration reads key as a Duration.
func (r *Record) Duration(key string) Duration {
	raw, _ := r.Raw(key)
	return ToDuration(raw)
}

// String reads key as text. Non-string raw values are formatted.
func (r *Record) String(key string) string {
	raw, ok := r.Raw(key)
	if !ok {
		return ""
	}
	if s, ok := raw.(string); ok {
		return s
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return fmt.Sprint(raw)
	}
	return s
}

// GUID reads key as a GUID; uuid.Nil when absent or malformed.
func (r *Record) GUID(key string) uuid.UUID {
	raw, _ := r.Raw(key)
	return ToGUID(raw)
}

// Value is the result of a checked field lookup.
type Value struct {
	Field   schema.Field
	Raw     any
	Present bool

	// Converted holds the typed value, or the empty value when absent
	Converted any
}

// Lookup resolves name (key, label or alias) and converts its value,
// reporting unknown fields and malformed values.
func (r *Record) Lookup(name string) (Value, error) {
	field, err := r.schema.Resolve(r.entity, name)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownField, err)
	}

	raw, present := r.Raw(field.Key)
	if !present {
		return Value{Field: field, Converted: Empty(field.Type)}, nil
	}

	converted, err := ConvertE(field.Type, raw, r.loc)
	if err != nil {
		return Value{Field: field, Raw: raw, Present: true, Converted: Empty(field.Type)},
			fmt.Errorf("%w: %s %q: %v", ErrInvalidValue, field.Key, fmt.Sprint(raw), err)
	}

	return Value{Field: field, Raw: raw, Present: true, Converted: converted}, nil
}

// Populated returns the schema fields that carry a value, sorted by key.
// Keys outside the schema are included with a string type.
func (r *Record) Populated() []schema.Field {
	var out []schema.Field
	for _, key := range r.Keys() {
		if f, ok := r.schema.Lookup(r.entity, key); ok {
			out = append(out, f)
			continue
		}
		out = append(out, schema.Field{Key: key, Label: schema.LabelFromKey(key), Type: schema.TypeString})
	}
	return out
}
