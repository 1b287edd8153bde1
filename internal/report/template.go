package report

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/adrg/frontmatter"
	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
)

// Header is the YAML frontmatter of a report template.
type Header struct {
	Title  string   `yaml:"title"`
	Entity string   `yaml:"entity"`
	Filter []string `yaml:"filter"`
	Fields []string `yaml:"fields"`
}

// Template is a parsed report template: a frontmatter header selecting
// records and a text/template body rendering them.
type Template struct {
	Name   string
	Header Header

	entity  schema.EntityType
	filters []models.FilterType
	body    string
}

// Parse reads a report template. The header is optional; without one the
// template reports on all tasks.
func Parse(name string, data []byte) (*Template, error) {
	var header Header
	rest, err := frontmatter.Parse(bytes.NewReader(data), &header)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	t := &Template{
		Name:   name,
		Header: header,
		entity: schema.EntityTask,
		body:   strings.TrimLeft(string(rest), "\r\n"),
	}

	if strings.TrimSpace(header.Entity) != "" {
		t.entity, err = schema.ParseEntityType(header.Entity)
		if err != nil {
			return nil, fmt.Errorf("invalid template entity: %w", err)
		}
	}

	t.filters, err = models.ParseFilters(header.Filter)
	if err != nil {
		return nil, err
	}

	if _, err := template.New(name).Funcs(templateFuncs(nil, render.FormatOptions{})).Parse(t.body); err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	return t, nil
}

// Load reads a report template file.
func Load(fs filesystem.FileSystem, path string) (*Template, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, data)
}

// Find resolves a template by name: a file <name>.md in dir when present,
// otherwise a built-in template.
func Find(fs filesystem.FileSystem, dir, name string) (*Template, error) {
	if dir != "" {
		path := filepath.Join(dir, name+".md")
		if fs.Exists(path) {
			return Load(fs, path)
		}
	}
	return Builtin(name)
}

// Entity returns the entity type the template reports on.
func (t *Template) Entity() schema.EntityType {
	return t.entity
}

// Filters returns the task filters of the template.
func (t *Template) Filters() []models.FilterType {
	return t.filters
}
