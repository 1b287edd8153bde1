package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
)

// Data is the value a report template body is executed against.
type Data struct {
	Title       string
	Project     *models.Project
	Entity      schema.EntityType
	Fields      []schema.Field
	Records     []*models.Record
	Tasks       []*models.Task
	Resources   []*models.Resource
	Assignments []*models.Assignment
	Relations   []*models.Relation
}

// Data selects the records the template reports on.
func (t *Template) Data(p *models.Project) (*Data, error) {
	title := t.Header.Title
	if title == "" {
		title = p.Name()
	}
	if title == "" {
		title = t.Name
	}

	data := &Data{
		Title:       title,
		Project:     p,
		Entity:      t.entity,
		Tasks:       models.FilterTasks(p.AllTasks(), t.filters),
		Resources:   p.AllResources(),
		Assignments: p.AllAssignments(),
		Relations:   p.AllRelations(),
	}

	if t.entity == schema.EntityTask {
		data.Records = make([]*models.Record, len(data.Tasks))
		for i, task := range data.Tasks {
			data.Records[i] = task.Attributes
		}
	} else {
		data.Records = p.Records(t.entity)
	}

	for _, name := range t.Header.Fields {
		f, err := p.Schema().Resolve(t.entity, name)
		if err != nil {
			return nil, fmt.Errorf("invalid template field: %w", err)
		}
		data.Fields = append(data.Fields, f)
	}

	return data, nil
}

// Render executes the template against p.
func (t *Template) Render(w io.Writer, p *models.Project, opts render.FormatOptions) error {
	data, err := t.Data(p)
	if err != nil {
		return err
	}

	tmpl, err := template.New(t.Name).Funcs(templateFuncs(p, opts)).Parse(t.body)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", t.Name, err)
	}

	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render template %s: %w", t.Name, err)
	}
	return nil
}

func templateFuncs(p *models.Project, opts render.FormatOptions) template.FuncMap {
	defaults := models.DefaultTimeUnitDefaults
	if p != nil {
		defaults = p.TimeUnitDefaults()
	}

	funcs := sprig.TxtFuncMap()

	funcs["value"] = func(subject any, name string) (any, error) {
		v, err := lookup(subject, name)
		if err != nil {
			return nil, err
		}
		return v.Converted, nil
	}

	funcs["field"] = func(subject any, name string) (string, error) {
		v, err := lookup(subject, name)
		if err != nil {
			return "", err
		}
		return render.FormatValue(v.Converted, opts), nil
	}

	funcs["format"] = func(v any) string {
		return render.FormatValue(v, opts)
	}

	funcs["label"] = func(subject any, name string) (string, error) {
		r, err := recordOf(subject)
		if err != nil {
			return "", err
		}
		f, err := r.Schema().Resolve(r.Entity(), name)
		if err != nil {
			return name, nil
		}
		if alias, ok := r.Schema().Alias(r.Entity(), f.Key); ok {
			return alias, nil
		}
		return f.Label, nil
	}

	funcs["hours"] = func(d models.Duration) float64 {
		return d.ConvertUnits(models.Hours, defaults).Value
	}

	funcs["days"] = func(d models.Duration) float64 {
		return d.ConvertUnits(models.Days, defaults).Value
	}

	funcs["outline"] = func(level int64, s string) string {
		if level <= 1 {
			return s
		}
		return strings.Repeat("  ", int(level-1)) + s
	}

	return funcs
}

// lookup resolves name on the subject's record. Malformed values render
// empty rather than failing the report.
func lookup(subject any, name string) (models.Value, error) {
	r, err := recordOf(subject)
	if err != nil {
		return models.Value{}, err
	}

	v, err := r.Lookup(name)
	if err != nil && !errors.Is(err, models.ErrInvalidValue) {
		return models.Value{}, err
	}
	return v, nil
}

func recordOf(subject any) (*models.Record, error) {
	switch s := subject.(type) {
	case *models.Record:
		return s, nil
	case *models.Task:
		return s.Attributes, nil
	case *models.Resource:
		return s.Attributes, nil
	case *models.Assignment:
		return s.Attributes, nil
	case *models.Project:
		return s.Properties, nil
	default:
		return nil, fmt.Errorf("cannot read fields of %T", subject)
	}
}
