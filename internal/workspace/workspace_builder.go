package workspace

import (
	"path/filepath"

	"github.com/jakoblorz/go-mpxj/internal/config"
	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/tidwall/sjson"
)

// WorkspaceBuilder helps create test workspaces
type WorkspaceBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewWorkspaceBuilder creates a new WorkspaceBuilder rooted at root, which
// is also the working directory.
func NewWorkspaceBuilder(root string) *WorkspaceBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &WorkspaceBuilder{
		fs:   fs,
		root: root,
	}
}

// WithConfig writes .mpxj.yaml at the root
func (wb *WorkspaceBuilder) WithConfig(content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, config.FileName), []byte(content))
	return wb
}

// WithGitIgnore writes .gitignore at the root
func (wb *WorkspaceBuilder) WithGitIgnore(content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, ".gitignore"), []byte(content))
	return wb
}

// AddExport writes an export below the root
func (wb *WorkspaceBuilder) AddExport(path string, export *ExportBuilder) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, path), export.Bytes())
	return wb
}

// AddFile writes an arbitrary file below the root
func (wb *WorkspaceBuilder) AddFile(path, content string) *WorkspaceBuilder {
	wb.fs.AddFile(filepath.Join(wb.root, path), []byte(content))
	return wb
}

// Build finalizes the workspace and returns the filesystem
func (wb *WorkspaceBuilder) Build() *filesystem.MockFileSystem {
	return wb.fs
}

// ExportBuilder assembles an MPXJ JSON export document.
type ExportBuilder struct {
	doc []byte
}

// NewExport starts an export for a project with the given name.
func NewExport(name string) *ExportBuilder {
	doc := `{"property_values":{},"custom_fields":[],"tasks":[],"resources":[],"assignments":[]}`
	return (&ExportBuilder{doc: []byte(doc)}).Property("name", name)
}

func (e *ExportBuilder) set(path string, value any) *ExportBuilder {
	doc, err := sjson.SetBytes(e.doc, path, value)
	if err != nil {
		panic(err)
	}
	e.doc = doc
	return e
}

// Property sets a project property
func (e *ExportBuilder) Property(key string, value any) *ExportBuilder {
	return e.set("property_values."+key, value)
}

// Task appends a task record
func (e *ExportBuilder) Task(fields map[string]any) *ExportBuilder {
	return e.set("tasks.-1", fields)
}

// Resource appends a resource record
func (e *ExportBuilder) Resource(fields map[string]any) *ExportBuilder {
	return e.set("resources.-1", fields)
}

// Assignment appends an assignment record
func (e *ExportBuilder) Assignment(fields map[string]any) *ExportBuilder {
	return e.set("assignments.-1", fields)
}

// CustomField declares an alias for a field of the given entity class
func (e *ExportBuilder) CustomField(class, fieldType, alias string) *ExportBuilder {
	return e.set("custom_fields.-1", map[string]any{
		"field_type_class": class,
		"field_type":       fieldType,
		"field_alias":      alias,
	})
}

// FieldType declares the type of an extra field
func (e *ExportBuilder) FieldType(entityTable, key, fieldType string) *ExportBuilder {
	return e.set(entityTable+"_types."+key, fieldType)
}

// Bytes returns the export document
func (e *ExportBuilder) Bytes() []byte {
	return e.doc
}

// OfficeMove returns a small export exercising hierarchy, relations,
// assignments and custom fields.
func OfficeMove() *ExportBuilder {
	return NewExport("Office Move").
		Property("start_date", "2024-03-04T08:00:00").
		Property("finish_date", "2024-03-08T17:00:00").
		Property("minutes_per_day", 480).
		Property("currency_symbol", "$").
		CustomField("task", "TEXT1", "Owner").
		Task(map[string]any{
			"unique_id": 1, "id": 1, "name": "Office Move", "summary": true,
			"outline_level": 1, "outline_number": "1", "wbs": "1",
			"start": "2024-03-04T08:00:00", "finish": "2024-03-08T17:00:00",
			"duration": 144000, "percent_complete": 40, "cost": 12500.5,
		}).
		Task(map[string]any{
			"unique_id": 2, "id": 2, "name": "Pack boxes", "parent_task_unique_id": 1,
			"outline_level": 2, "outline_number": "1.1", "wbs": "1.1",
			"start": "2024-03-04T08:00:00", "finish": "2024-03-05T17:00:00",
			"duration": 57600, "work": 115200, "percent_complete": 100, "cost": 1500,
			"critical": true, "text1": "Alice",
		}).
		Task(map[string]any{
			"unique_id": 3, "id": 3, "name": "Drive van", "parent_task_unique_id": 1,
			"outline_level": 2, "outline_number": "1.2", "wbs": "1.2",
			"start": "2024-03-06T08:00:00", "finish": "2024-03-06T17:00:00",
			"duration": 28800, "percent_complete": 50, "cost": 11000.5,
			"critical": true, "text1": "Bob",
			"predecessors": []map[string]any{{"task_unique_id": 2, "type": "FS", "lag": "4h"}},
		}).
		Task(map[string]any{
			"unique_id": 4, "id": 4, "name": "Keys handed over", "parent_task_unique_id": 1,
			"outline_level": 2, "outline_number": "1.3", "wbs": "1.3",
			"start": "2024-03-08T17:00:00", "finish": "2024-03-08T17:00:00",
			"duration": 0, "percent_complete": 0, "milestone": true,
			"predecessors": []map[string]any{{"task_unique_id": 3, "type": "FS"}},
		}).
		Resource(map[string]any{
			"unique_id": 1, "id": 1, "name": "Alice", "type": "WORK",
			"email_address": "alice@example.com", "max_units": 100, "standard_rate": 45.5,
		}).
		Resource(map[string]any{
			"unique_id": 2, "id": 2, "name": "Bob", "type": "WORK", "max_units": 100,
		}).
		Resource(map[string]any{
			"unique_id": 3, "id": 3, "name": "Van", "type": "MATERIAL", "cost": 10000,
		}).
		Assignment(map[string]any{
			"unique_id": 1, "task_unique_id": 2, "resource_unique_id": 1,
			"work": 57600, "units": 100, "cost": 1500,
		}).
		Assignment(map[string]any{
			"unique_id": 2, "task_unique_id": 3, "resource_unique_id": 2,
			"work": 28800, "units": 100, "cost": 1000.5,
		}).
		Assignment(map[string]any{
			"unique_id": 3, "task_unique_id": 3, "resource_unique_id": 3,
			"units": 1, "cost": 10000,
		})
}
