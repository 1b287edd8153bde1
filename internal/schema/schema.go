package schema

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Field describes one attribute of an entity.
type Field struct {
	// Key is the lowercase snake_case attribute name used by the export
	Key string

	// Label is the display name (e.g. "Baseline5 Work")
	Label string

	// Type selects the converter applied when the value is read
	Type FieldType
}

// Schema holds the field tables of every entity type. A Schema is
// immutable once built; WithOverrides and WithAliases return copies.
type Schema struct {
	fields  map[EntityType]map[string]Field
	labels  map[EntityType]map[string]string
	aliases map[EntityType]map[string]string

	// display maps a key back to its alias as written
	display map[EntityType]map[string]string
}

var defaultSchema = build(map[EntityType][]Field{
	EntityTask:       taskFields,
	EntityResource:   resourceFields,
	EntityAssignment: assignmentFields,
	EntityProject:    projectFields,
})

// Default returns the built-in field tables.
func Default() *Schema {
	return defaultSchema
}

func build(tables map[EntityType][]Field) *Schema {
	s := &Schema{
		fields:  make(map[EntityType]map[string]Field, len(tables)),
		labels:  make(map[EntityType]map[string]string, len(tables)),
		aliases: make(map[EntityType]map[string]string),
		display: make(map[EntityType]map[string]string),
	}

	for entity, table := range tables {
		byKey := make(map[string]Field, len(table))
		byLabel := make(map[string]string, len(table))
		for _, f := range table {
			byKey[f.Key] = f
		}
		for _, f := range table {
			addLabel(byLabel, byKey, f)
		}
		s.fields[entity] = byKey
		s.labels[entity] = byLabel
	}

	return s
}

// addLabel registers the label of f unless another field already owns it
// with a better claim. Several upstream fields share a label ("Start" is
// both start and start_text); the typed field wins, then the field whose
// key is spelled from the label, then the smaller key.
func addLabel(byLabel map[string]string, byKey map[string]Field, f Field) {
	label := strings.ToLower(f.Label)
	current, ok := byLabel[label]
	if !ok || current == f.Key || labelRank(f) < labelRank(byKey[current]) ||
		(labelRank(f) == labelRank(byKey[current]) && f.Key < current) {
		byLabel[label] = f.Key
	}
}

func labelRank(f Field) int {
	rank := 0
	if f.Type == TypeString {
		rank += 2
	}
	if KeyFromLabel(f.Label) != f.Key {
		rank++
	}
	return rank
}

func (s *Schema) clone() *Schema {
	c := &Schema{
		fields:  make(map[EntityType]map[string]Field, len(s.fields)),
		labels:  make(map[EntityType]map[string]string, len(s.labels)),
		aliases: make(map[EntityType]map[string]string, len(s.aliases)),
		display: make(map[EntityType]map[string]string, len(s.display)),
	}
	for entity, m := range s.fields {
		c.fields[entity] = copyMap(m)
	}
	for entity, m := range s.labels {
		c.labels[entity] = copyMap(m)
	}
	for entity, m := range s.aliases {
		c.aliases[entity] = copyMap(m)
	}
	for entity, m := range s.display {
		c.display[entity] = copyMap(m)
	}
	return c
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Lookup returns the field declared for key.
func (s *Schema) Lookup(entity EntityType, key string) (Field, bool) {
	f, ok := s.fields[entity][key]
	return f, ok
}

// TypeOf returns the declared type for key, or TypeString when the key is
// not part of the table.
func (s *Schema) TypeOf(entity EntityType, key string) FieldType {
	if f, ok := s.Lookup(entity, key); ok {
		return f.Type
	}
	return TypeString
}

// Fields returns the fields of an entity sorted by key.
func (s *Schema) Fields(entity EntityType) []Field {
	out := make([]Field, 0, len(s.fields[entity]))
	for _, f := range s.fields[entity] {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

// FieldsOfType returns the fields of an entity with the given type, sorted by key.
func (s *Schema) FieldsOfType(entity EntityType, ft FieldType) []Field {
	var out []Field
	for _, f := range s.Fields(entity) {
		if f.Type == ft {
			out = append(out, f)
		}
	}
	return out
}

// Resolve maps a user supplied name onto a field key. The name may be the
// key itself, a label ("Actual Cost", case-insensitive) or an alias
// registered with WithAliases.
func (s *Schema) Resolve(entity EntityType, name string) (Field, error) {
	trimmed := strings.TrimSpace(name)
	if f, ok := s.Lookup(entity, trimmed); ok {
		return f, nil
	}

	lower := strings.ToLower(trimmed)
	if key, ok := s.aliases[entity][lower]; ok {
		if f, ok := s.Lookup(entity, key); ok {
			return f, nil
		}
	}

	if key, ok := s.labels[entity][lower]; ok {
		return s.fields[entity][key], nil
	}

	if f, ok := s.Lookup(entity, KeyFromLabel(trimmed)); ok {
		return f, nil
	}

	return Field{}, fmt.Errorf("unknown %s field: %s", entity, name)
}

// WithOverrides returns a copy of the schema in which the given keys carry
// the given types. Keys missing from the table are added with a label
// derived from the key.
func (s *Schema) WithOverrides(entity EntityType, types map[string]FieldType) *Schema {
	if len(types) == 0 {
		return s
	}

	c := s.clone()
	if c.fields[entity] == nil {
		c.fields[entity] = make(map[string]Field)
		c.labels[entity] = make(map[string]string)
	}

	for key, ft := range types {
		f, ok := c.fields[entity][key]
		if !ok {
			f = Field{Key: key, Label: LabelFromKey(key)}
		}
		f.Type = ft
		c.fields[entity][key] = f
	}
	for key := range types {
		addLabel(c.labels[entity], c.fields[entity], c.fields[entity][key])
	}

	return c
}

// WithAliases returns a copy of the schema with additional display aliases
// (e.g. a custom field renamed "Owner" that is stored as text1).
func (s *Schema) WithAliases(entity EntityType, aliases map[string]string) *Schema {
	if len(aliases) == 0 {
		return s
	}

	c := s.clone()
	if c.aliases[entity] == nil {
		c.aliases[entity] = make(map[string]string, len(aliases))
		c.display[entity] = make(map[string]string, len(aliases))
	}
	for alias, key := range aliases {
		alias = strings.TrimSpace(alias)
		c.aliases[entity][strings.ToLower(alias)] = key
		c.display[entity][key] = alias
	}
	return c
}

// Alias returns the alias registered for key, if any.
func (s *Schema) Alias(entity EntityType, key string) (string, bool) {
	alias, ok := s.display[entity][key]
	return alias, ok
}

// KeyFromLabel converts a display label into the snake_case key form,
// e.g. "Actual Cost" -> "actual_cost", "% Complete" -> "percent_complete".
func KeyFromLabel(label string) string {
	label = strings.ReplaceAll(label, "%", "percent ")

	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}

	return strings.TrimSuffix(b.String(), "_")
}

// LabelFromKey converts a snake_case key into a title-cased label,
// e.g. "actual_cost" -> "Actual Cost".
func LabelFromKey(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		switch p {
		case "id", "guid", "wbs":
			parts[i] = strings.ToUpper(p)
		default:
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
