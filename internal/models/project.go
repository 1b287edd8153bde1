package models

import (
	"fmt"
	"time"

	"github.com/jakoblorz/go-mpxj/internal/schema"
)

// CustomField records a user defined alias for a field, as declared by the
// export (e.g. text1 shown as "Owner").
type CustomField struct {
	Entity schema.EntityType `json:"entity"`
	Key    string            `json:"key"`
	Alias  string            `json:"alias"`
}

// Project is the in-memory form of one export: the project properties plus
// its task, resource and assignment records.
type Project struct {
	// Properties holds the project level attributes
	Properties *Record

	// Path is the file the project was read from, if any
	Path string

	schema       *schema.Schema
	loc          *time.Location
	tasks        []*Task
	resources    []*Resource
	assignments  []*Assignment
	relations    []*Relation
	customFields []CustomField

	relationIndex map[relationKey]*Relation

	taskByUniqueID     map[int64]*Task
	taskByID           map[int64]*Task
	resourceByUniqueID map[int64]*Resource
	resourceByID       map[int64]*Resource
	childTasks         []*Task
}

// NewProject creates an empty project. Records added later are typed
// against s and read dates in loc.
func NewProject(properties map[string]any, s *schema.Schema, loc *time.Location) *Project {
	if s == nil {
		s = schema.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	return &Project{
		Properties:         NewRecord(schema.EntityProject, properties, s, loc),
		schema:             s,
		loc:                loc,
		taskByUniqueID:     map[int64]*Task{},
		taskByID:           map[int64]*Task{},
		resourceByUniqueID: map[int64]*Resource{},
		resourceByID:       map[int64]*Resource{},
	}
}

func (p *Project) Schema() *schema.Schema        { return p.schema }
func (p *Project) Location() *time.Location      { return p.loc }
func (p *Project) Name() string                  { return p.Properties.String("name") }
func (p *Project) AllTasks() []*Task             { return p.tasks }
func (p *Project) ChildTasks() []*Task           { return p.childTasks }
func (p *Project) AllResources() []*Resource     { return p.resources }
func (p *Project) AllAssignments() []*Assignment { return p.assignments }
func (p *Project) AllRelations() []*Relation     { return p.relations }
func (p *Project) CustomFields() []CustomField   { return p.customFields }
func (p *Project) AddCustomField(cf CustomField) { p.customFields = append(p.customFields, cf) }

func (p *Project) newRecord(e schema.EntityType, v map[string]any) *Record {
	return NewRecord(e, v, p.schema, p.loc)
}

// AddTask appends a task record.
func (p *Project) AddTask(values map[string]any) *Task {
	t := &Task{Attributes: p.newRecord(schema.EntityTask, values), project: p}
	p.tasks = append(p.tasks, t)
	return t
}

// AddResource appends a resource record.
func (p *Project) AddResource(values map[string]any) *Resource {
	r := &Resource{Attributes: p.newRecord(schema.EntityResource, values), project: p}
	p.resources = append(p.resources, r)
	return r
}

// AddAssignment appends an assignment record.
func (p *Project) AddAssignment(values map[string]any) *Assignment {
	a := &Assignment{Attributes: p.newRecord(schema.EntityAssignment, values), project: p}
	p.assignments = append(p.assignments, a)
	return a
}

type relationKey struct {
	predecessor int64
	successor   int64
	kind        RelationType
}

func (r *Relation) key() relationKey {
	return relationKey{r.PredecessorUniqueID, r.SuccessorUniqueID, r.Type}
}

// AddRelation records a dependency. A link already recorded (the export
// may list it from both ends) is ignored.
func (p *Project) AddRelation(predecessorUniqueID, successorUniqueID int64, rt RelationType, lag Duration) *Relation {
	if p.relationIndex == nil {
		p.relationIndex = make(map[relationKey]*Relation)
	}

	k := relationKey{predecessorUniqueID, successorUniqueID, rt}
	if r, ok := p.relationIndex[k]; ok {
		return r
	}

	r := &Relation{
		PredecessorUniqueID: predecessorUniqueID,
		SuccessorUniqueID:   successorUniqueID,
		Type:                rt,
		Lag:                 lag,
	}
	p.relations = append(p.relations, r)
	p.relationIndex[k] = r
	return r
}

// Link indexes the records and resolves hierarchy, assignments and
// relations. References to records missing from the export, and parent
// links that would close a cycle, are returned as warnings; the offending
// link is dropped.
func (p *Project) Link() []error {
	var warnings []error

	p.taskByUniqueID = make(map[int64]*Task, len(p.tasks))
	p.taskByID = make(map[int64]*Task, len(p.tasks))
	p.resourceByUniqueID = make(map[int64]*Resource, len(p.resources))
	p.resourceByID = make(map[int64]*Resource, len(p.resources))
	p.childTasks = nil

	for _, t := range p.tasks {
		t.parent, t.children, t.assignments = nil, nil, nil
		t.predecessors, t.successors = nil, nil
		if t.Attributes.Has("unique_id") {
			p.taskByUniqueID[t.UniqueID()] = t
		}
		if t.Attributes.Has("id") {
			p.taskByID[t.ID()] = t
		}
	}

	for _, r := range p.resources {
		r.assignments = nil
		if r.Attributes.Has("unique_id") {
			p.resourceByUniqueID[r.UniqueID()] = r
		}
		if r.Attributes.Has("id") {
			p.resourceByID[r.ID()] = r
		}
	}

	for _, t := range p.tasks {
		if !t.Attributes.Has("parent_task_unique_id") {
			p.childTasks = append(p.childTasks, t)
			continue
		}

		parentID := t.Attributes.Int("parent_task_unique_id")
		parent, ok := p.taskByUniqueID[parentID]
		if !ok {
			warnings = append(warnings, fmt.Errorf("task %d: parent task %d %w", t.UniqueID(), parentID, ErrNotFound))
			p.childTasks = append(p.childTasks, t)
			continue
		}
		if isAncestorOrSelf(t, parent) {
			warnings = append(warnings, fmt.Errorf("task %d: parent task %d: %w", t.UniqueID(), parentID, ErrParentCycle))
			p.childTasks = append(p.childTasks, t)
			continue
		}

		t.parent = parent
		parent.children = append(parent.children, t)
	}

	for _, a := range p.assignments {
		a.task, a.resource = nil, nil

		if task, ok := p.taskByUniqueID[a.TaskUniqueID()]; ok {
			a.task = task
			task.assignments = append(task.assignments, a)
		} else {
			warnings = append(warnings, fmt.Errorf("assignment %d: task %d %w", a.UniqueID(), a.TaskUniqueID(), ErrNotFound))
		}

		if resource, ok := p.resourceByUniqueID[a.ResourceUniqueID()]; ok {
			a.resource = resource
			resource.assignments = append(resource.assignments, a)
		}
	}

	linked := p.relations[:0]
	for _, r := range p.relations {
		pred, okPred := p.taskByUniqueID[r.PredecessorUniqueID]
		succ, okSucc := p.taskByUniqueID[r.SuccessorUniqueID]
		if !okPred || !okSucc {
			warnings = append(warnings, fmt.Errorf("relation %d->%d: task %w", r.PredecessorUniqueID, r.SuccessorUniqueID, ErrNotFound))
			continue
		}

		r.predecessor, r.successor = pred, succ
		pred.successors = append(pred.successors, r)
		succ.predecessors = append(succ.predecessors, r)
		linked = append(linked, r)
	}
	p.relations = linked
	p.relationIndex = make(map[relationKey]*Relation, len(linked))
	for _, r := range linked {
		p.relationIndex[r.key()] = r
	}

	return warnings
}

// TaskByUniqueID returns the task with the given unique ID.
func (p *Project) TaskByUniqueID(uid int64) (*Task, bool) {
	t, ok := p.taskByUniqueID[uid]
	return t, ok
}

// TaskByID returns the task with the given ID.
func (p *Project) TaskByID(id int64) (*Task, bool) {
	t, ok := p.taskByID[id]
	return t, ok
}

// ResourceByUniqueID returns the resource with the given unique ID.
func (p *Project) ResourceByUniqueID(uid int64) (*Resource, bool) {
	r, ok := p.resourceByUniqueID[uid]
	return r, ok
}

// ResourceByID returns the resource with the given ID.
func (p *Project) ResourceByID(id int64) (*Resource, bool) {
	r, ok := p.resourceByID[id]
	return r, ok
}

// Records returns the attribute records of one entity type. The project
// entity yields the single properties record.
func (p *Project) Records(entity schema.EntityType) []*Record {
	switch entity {
	case schema.EntityTask:
		out := make([]*Record, len(p.tasks))
		for i, t := range p.tasks {
			out[i] = t.Attributes
		}
		return out
	case schema.EntityResource:
		out := make([]*Record, len(p.resources))
		for i, r := range p.resources {
			out[i] = r.Attributes
		}
		return out
	case schema.EntityAssignment:
		out := make([]*Record, len(p.assignments))
		for i, a := range p.assignments {
			out[i] = a.Attributes
		}
		return out
	case schema.EntityProject:
		return []*Record{p.Properties}
	default:
		return nil
	}
}

// RecordByUniqueID finds one record by unique ID. For the project entity
// the ID is ignored.
func (p *Project) RecordByUniqueID(entity schema.EntityType, uid int64) (*Record, error) {
	if entity == schema.EntityProject {
		return p.Properties, nil
	}

	for _, r := range p.Records(entity) {
		if r.Has("unique_id") && r.Int("unique_id") == uid {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%s with unique ID %d %w", entity, uid, ErrNotFound)
}

// TimeUnitDefaults reads the duration conversion settings from the project
// properties, falling back to the standard calendar.
func (p *Project) TimeUnitDefaults() TimeUnitDefaults {
	d := DefaultTimeUnitDefaults
	if p.Properties.Has("minutes_per_day") {
		d.MinutesPerDay = p.Properties.Float("minutes_per_day")
	}
	if p.Properties.Has("minutes_per_week") {
		d.MinutesPerWeek = p.Properties.Float("minutes_per_week")
	}
	if p.Properties.Has("days_per_month") {
		d.DaysPerMonth = p.Properties.Float("days_per_month")
	}
	return d
}

// isAncestorOrSelf reports whether t is candidate or one of the parents
// already linked above it.
func isAncestorOrSelf(t, candidate *Task) bool {
	for a := candidate; a != nil; a = a.parent {
		if a == t {
			return true
		}
	}
	return false
}
