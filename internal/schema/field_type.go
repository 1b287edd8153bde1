package schema

import (
	"fmt"
	"strings"
)

// FieldType is the semantic type a raw attribute value is converted to.
type FieldType string

const (
	TypeBoolean  FieldType = "boolean"
	TypeFloat    FieldType = "float"
	TypeInteger  FieldType = "integer"
	TypeDate     FieldType = "date"
	TypeDuration FieldType = "duration"

	// TypeString covers text, code and enum fields. Their raw value is
	// returned unchanged.
	TypeString FieldType = "string"
)

// IsValid checks if the field type is valid
func (t FieldType) IsValid() bool {
	switch t {
	case TypeBoolean, TypeFloat, TypeInteger, TypeDate, TypeDuration, TypeString:
		return true
	default:
		return false
	}
}

// String returns the string representation of FieldType
func (t FieldType) String() string {
	return string(t)
}

// typeAliases maps the data type names used by the upstream exporter onto
// the six converter types.
var typeAliases = map[string]FieldType{
	"bool":       TypeBoolean,
	"numeric":    TypeFloat,
	"number":     TypeFloat,
	"currency":   TypeFloat,
	"percentage": TypeFloat,
	"units":      TypeFloat,
	"rate":       TypeFloat,
	"double":     TypeFloat,
	"int":        TypeInteger,
	"short":      TypeInteger,
	"timestamp":  TypeDate,
	"work":       TypeDuration,
	"delay":      TypeDuration,
	"text":       TypeString,
	"code":       TypeString,
	"guid":       TypeString,
	"enum":       TypeString,
	"binary":     TypeString,
}

// ParseFieldType parses a type tag into a FieldType. Both the canonical
// names and the upstream data type aliases are accepted.
func ParseFieldType(s string) (FieldType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	ft := FieldType(normalized)
	if ft.IsValid() {
		return ft, nil
	}

	if alias, ok := typeAliases[normalized]; ok {
		return alias, nil
	}

	return "", fmt.Errorf("invalid field type: %s (must be boolean, float, integer, date, duration, or string)", s)
}

// EntityType identifies which record set a field belongs to.
type EntityType string

const (
	EntityTask       EntityType = "task"
	EntityResource   EntityType = "resource"
	EntityAssignment EntityType = "assignment"
	EntityProject    EntityType = "project"
)

// Entities lists every entity type in display order.
var Entities = []EntityType{EntityTask, EntityResource, EntityAssignment, EntityProject}

// IsValid checks if the entity type is valid
func (e EntityType) IsValid() bool {
	switch e {
	case EntityTask, EntityResource, EntityAssignment, EntityProject:
		return true
	default:
		return false
	}
}

// String returns the string representation of EntityType
func (e EntityType) String() string {
	return string(e)
}

// Plural returns the collection name used by the export for this entity.
func (e EntityType) Plural() string {
	if e == EntityProject {
		return "properties"
	}
	return string(e) + "s"
}

// ParseEntityType parses singular or plural entity names ("task", "tasks").
func ParseEntityType(s string) (EntityType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "properties", "property":
		return EntityProject, nil
	}

	et := EntityType(strings.TrimSuffix(normalized, "s"))
	if !et.IsValid() {
		return "", fmt.Errorf("invalid entity type: %s (must be task, resource, assignment, or project)", s)
	}
	return et, nil
}
