package browse

import (
	"fmt"
	"strings"

	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/jakoblorz/go-mpxj/internal/tui"
	"github.com/jakoblorz/go-mpxj/internal/tui/components"
)

// Choice is one selectable record.
type Choice struct {
	Label  string
	Record *models.Record
}

// Choices lists the records of one entity type in export order.
func Choices(p *models.Project, entity schema.EntityType) []Choice {
	switch entity {
	case schema.EntityTask:
		out := make([]Choice, 0, len(p.AllTasks()))
		for _, t := range p.AllTasks() {
			out = append(out, Choice{Label: taskLabel(t), Record: t.Attributes})
		}
		return out
	case schema.EntityResource:
		out := make([]Choice, 0, len(p.AllResources()))
		for _, r := range p.AllResources() {
			label := fmt.Sprintf("%d %s", r.UniqueID(), r.Name())
			out = append(out, Choice{Label: label, Record: r.Attributes})
		}
		return out
	case schema.EntityAssignment:
		out := make([]Choice, 0, len(p.AllAssignments()))
		for _, a := range p.AllAssignments() {
			out = append(out, Choice{Label: assignmentLabel(a), Record: a.Attributes})
		}
		return out
	case schema.EntityProject:
		name := p.Name()
		if name == "" {
			name = "Project"
		}
		return []Choice{{Label: name, Record: p.Properties}}
	default:
		return nil
	}
}

func taskLabel(t *models.Task) string {
	var b strings.Builder
	if level := t.OutlineLevel(); level > 1 {
		b.WriteString(strings.Repeat("  ", int(level-1)))
	}
	fmt.Fprintf(&b, "%d %s", t.UniqueID(), t.Name())

	switch {
	case t.Milestone():
		b.WriteString(" " + tui.MilestoneStyle.Render("◆"))
	case t.Critical():
		b.WriteString(" " + tui.CriticalStyle.Render("!"))
	}
	return b.String()
}

func assignmentLabel(a *models.Assignment) string {
	task := fmt.Sprintf("task %d", a.TaskUniqueID())
	if t := a.Task(); t != nil {
		task = t.Name()
	}
	resource := fmt.Sprintf("resource %d", a.ResourceUniqueID())
	if r := a.Resource(); r != nil {
		resource = r.Name()
	}
	return fmt.Sprintf("%d %s → %s", a.UniqueID(), task, resource)
}

// Rows converts every field of r into field list rows.
func Rows(r *models.Record, opts render.FormatOptions) []components.FieldRow {
	fields := render.Fields(r, true, opts)

	rows := make([]components.FieldRow, len(fields))
	for i, f := range fields {
		value := f.Value
		if f.Err != nil {
			value += " " + tui.CriticalStyle.Render("(invalid)")
		}
		rows[i] = components.FieldRow{
			Key:     f.Field.Key,
			Label:   f.Label,
			Type:    f.Field.Type.String(),
			Value:   value,
			Present: f.Present,
		}
	}
	return rows
}

// Title names a record for the field list header.
func Title(r *models.Record) string {
	if r.Entity() == schema.EntityProject {
		return "project"
	}
	if name := r.String("name"); name != "" {
		return fmt.Sprintf("%s %d: %s", r.Entity(), r.Int("unique_id"), name)
	}
	return fmt.Sprintf("%s %d", r.Entity(), r.Int("unique_id"))
}
