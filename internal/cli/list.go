package cli

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/spf13/cobra"
)

var defaultColumns = map[schema.EntityType][]string{
	schema.EntityTask:       {"unique_id", "name", "duration", "start", "finish", "percent_complete"},
	schema.EntityResource:   {"unique_id", "name", "type", "max_units", "standard_rate", "cost"},
	schema.EntityAssignment: {"unique_id", "task_unique_id", "resource_unique_id", "work", "units", "cost"},
}

// ListCommand handles the tasks, resources and assignments commands
type ListCommand struct {
	fs     filesystem.FileSystem
	entity schema.EntityType
}

// NewListCommand creates a command listing the records of one entity type
func NewListCommand(fs filesystem.FileSystem, entity schema.EntityType) *cobra.Command {
	cmd := &ListCommand{fs: fs, entity: entity}

	plural := entity.Plural()
	cobraCmd := &cobra.Command{
		Use:   plural + " <file>",
		Short: fmt.Sprintf("List the %s of an export", plural),
		Long: fmt.Sprintf(`Prints the %s of an export as a table.

Columns are field keys, labels or custom field aliases. Without --columns
the columns configured in .mpxj.yaml are used, falling back to a default set.`, plural),
		Example: fmt.Sprintf(`  mpxj %[1]s plan.json
  mpxj %[1]s plan.json --columns unique_id,name,"Actual Cost"`, plural),
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringSliceP("columns", "c", nil, "Fields to print")
	if entity == schema.EntityTask {
		cobraCmd.Flags().StringSlice("filter", nil, "Only list matching tasks (all, critical, milestone, summary, completed, in-progress, not-started, active)")
	}

	return cobraCmd
}

// Run executes the list command
func (c *ListCommand) Run(cmd *cobra.Command, args []string) error {
	ctx, err := newCommandContext(cmd, c.fs)
	if err != nil {
		return err
	}

	p, err := ctx.ReadProject(args[0])
	if err != nil {
		return err
	}

	records := p.Records(c.entity)
	if c.entity == schema.EntityTask {
		filters, err := models.ParseFilters(flagStrings(cmd, "filter"))
		if err != nil {
			return err
		}
		tasks := models.FilterTasks(p.AllTasks(), filters)
		records = make([]*models.Record, len(tasks))
		for i, t := range tasks {
			records[i] = t.Attributes
		}
	}

	columns := flagStrings(cmd, "columns")
	if len(columns) == 0 {
		columns = ctx.Workspace.Config.ColumnsFor(c.entity)
	}
	if len(columns) == 0 {
		columns = defaultColumns[c.entity]
	}

	fields, err := resolveFields(p.Schema(), c.entity, columns)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No %s\n", c.entity.Plural())
		return nil
	}

	headers := make([]string, len(fields))
	for i, f := range fields {
		headers[i] = fieldHeader(p.Schema(), c.entity, f)
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = make([]string, len(fields))
		for j, f := range fields {
			rows[i][j] = cell(r, f, ctx.Format)
		}
	}

	return render.Table(cmd.OutOrStdout(), headers, rows)
}

func resolveFields(s *schema.Schema, entity schema.EntityType, names []string) ([]schema.Field, error) {
	fields := make([]schema.Field, 0, len(names))
	for _, name := range names {
		f, err := s.Resolve(entity, name)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func fieldHeader(s *schema.Schema, entity schema.EntityType, f schema.Field) string {
	if alias, ok := s.Alias(entity, f.Key); ok {
		return alias
	}
	return f.Label
}

// cell formats one field of r. Values that do not convert are printed as
// written.
func cell(r *models.Record, f schema.Field, opts render.FormatOptions) string {
	v, err := r.Lookup(f.Key)
	if errors.Is(err, models.ErrInvalidValue) {
		return fmt.Sprint(v.Raw)
	}
	return render.FormatValue(v.Converted, opts)
}
