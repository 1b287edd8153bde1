package reader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/tidwall/gjson"
)

// ErrInvalidExport is returned when a file is not an MPXJ JSON export.
var ErrInvalidExport = errors.New("invalid export")

// typeTables maps the optional type declaration objects of an export onto
// the entity they describe.
var typeTables = map[string]schema.EntityType{
	"property_types":   schema.EntityProject,
	"task_types":       schema.EntityTask,
	"resource_types":   schema.EntityResource,
	"assignment_types": schema.EntityAssignment,
}

// Reader builds projects from MPXJ JSON exports.
type Reader struct {
	fs     filesystem.FileSystem
	loc    *time.Location
	logger *slog.Logger
}

// Option configures a Reader.
type Option func(*Reader)

// WithLocation sets the zone dates without an offset are read in.
func WithLocation(loc *time.Location) Option {
	return func(r *Reader) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithLogger sets the logger used for warnings about the export.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Reader. Without options dates are read in UTC and
// warnings are discarded.
func New(fs filesystem.FileSystem, opts ...Option) *Reader {
	r := &Reader{
		fs:     fs,
		loc:    time.UTC,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads and links the export at path.
func (r *Reader) Read(path string) (*models.Project, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", path, err)
	}

	p, err := r.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	p.Path = path

	return p, nil
}

// Parse builds a linked project from export bytes.
func (r *Reader) Parse(data []byte) (*models.Project, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidExport)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: root must be an object", ErrInvalidExport)
	}

	customFields := r.customFields(root)
	s := r.schema(root, customFields)
	p := models.NewProject(objectValues(root.Get("property_values")), s, r.loc)

	for _, cf := range customFields {
		p.AddCustomField(cf)
	}

	root.Get("tasks").ForEach(func(_, item gjson.Result) bool {
		r.addTask(p, item)
		return true
	})
	root.Get("resources").ForEach(func(_, item gjson.Result) bool {
		p.AddResource(objectValues(item))
		return true
	})
	root.Get("assignments").ForEach(func(_, item gjson.Result) bool {
		p.AddAssignment(objectValues(item))
		return true
	})

	for _, w := range p.Link() {
		r.logger.Warn("dangling reference", "error", w)
	}

	r.logger.Debug("export parsed",
		"tasks", len(p.AllTasks()),
		"resources", len(p.AllResources()),
		"assignments", len(p.AllAssignments()),
		"relations", len(p.AllRelations()),
	)

	return p, nil
}

// schema derives the field tables for one export: the built-in tables plus
// the declared types and custom field aliases it carries.
func (r *Reader) schema(root gjson.Result, customFields []models.CustomField) *schema.Schema {
	s := schema.Default()

	for table, entity := range typeTables {
		types := map[string]schema.FieldType{}
		root.Get(table).ForEach(func(key, value gjson.Result) bool {
			ft, err := schema.ParseFieldType(value.String())
			if err != nil {
				r.logger.Warn("ignoring field type", "entity", entity, "key", key.String(), "error", err)
				return true
			}
			types[strings.ToLower(key.String())] = ft
			return true
		})
		s = s.WithOverrides(entity, types)
	}

	aliases := map[schema.EntityType]map[string]string{}
	for _, cf := range customFields {
		if aliases[cf.Entity] == nil {
			aliases[cf.Entity] = map[string]string{}
		}
		aliases[cf.Entity][cf.Alias] = cf.Key
	}
	for entity, m := range aliases {
		s = s.WithAliases(entity, m)
	}

	return s
}

func (r *Reader) customFields(root gjson.Result) []models.CustomField {
	var out []models.CustomField

	root.Get("custom_fields").ForEach(func(_, item gjson.Result) bool {
		alias := strings.TrimSpace(item.Get("field_alias").String())
		key := strings.ToLower(strings.TrimSpace(item.Get("field_type").String()))
		if alias == "" || key == "" {
			return true
		}

		entity, err := schema.ParseEntityType(item.Get("field_type_class").String())
		if err != nil {
			r.logger.Warn("ignoring custom field", "key", key, "error", err)
			return true
		}

		out = append(out, models.CustomField{Entity: entity, Key: key, Alias: alias})
		return true
	})

	return out
}

func (r *Reader) addTask(p *models.Project, item gjson.Result) {
	t := p.AddTask(objectValues(item))
	uid := t.UniqueID()

	item.Get("predecessors").ForEach(func(_, link gjson.Result) bool {
		if rt, lag, ok := r.relation(link); ok {
			p.AddRelation(link.Get("task_unique_id").Int(), uid, rt, lag)
		}
		return true
	})
	item.Get("successors").ForEach(func(_, link gjson.Result) bool {
		if rt, lag, ok := r.relation(link); ok {
			p.AddRelation(uid, link.Get("task_unique_id").Int(), rt, lag)
		}
		return true
	})
}

func (r *Reader) relation(link gjson.Result) (models.RelationType, models.Duration, bool) {
	if !link.Get("task_unique_id").Exists() {
		r.logger.Warn("ignoring relation without task_unique_id", "relation", link.Raw)
		return "", models.Duration{}, false
	}

	rt, err := models.ParseRelationType(link.Get("type").String())
	if err != nil {
		r.logger.Warn("ignoring relation", "relation", link.Raw, "error", err)
		return "", models.Duration{}, false
	}

	lag := models.Duration{Units: models.Hours}
	if raw := link.Get("lag"); raw.Exists() && raw.Type != gjson.Null {
		d, err := models.ToDurationE(raw.Value())
		if err != nil {
			r.logger.Warn("ignoring relation lag", "relation", link.Raw, "error", err)
		} else {
			lag = d
		}
	}

	return rt, lag, true
}

// objectValues flattens a JSON object into the raw attribute map of a
// record. Numbers come back as float64, nested arrays and objects as
// []any and map[string]any.
func objectValues(obj gjson.Result) map[string]any {
	values := map[string]any{}
	if !obj.IsObject() {
		return values
	}

	obj.ForEach(func(key, value gjson.Result) bool {
		values[strings.ToLower(key.String())] = value.Value()
		return true
	})
	return values
}
