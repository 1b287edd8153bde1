package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/spf13/cobra"
)

// ExportCommand handles the export command
type ExportCommand struct {
	fs filesystem.FileSystem
}

// NewExportCommand creates a new export command
func NewExportCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ExportCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write typed records as JSON",
		Long: `Writes the records of one entity type as a JSON array of typed values.

Dates are written as RFC 3339 strings in the configured timezone and
durations as {"value", "units"} objects. Absent fields are omitted. Without
--fields every populated field is written.`,
		Example: `  # Critical tasks to stdout
  mpxj export plan.json --filter critical --indent

  # Resource costs to a file
  mpxj export plan.json --entity resources --fields name,cost -o out/costs.json`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("entity", "e", "task", "Entity type: task, resource, assignment, or project")
	cobraCmd.Flags().StringSlice("fields", nil, "Fields to write")
	cobraCmd.Flags().StringSlice("filter", nil, "Task filters")
	cobraCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
	cobraCmd.Flags().Bool("indent", false, "Pretty print the output")

	return cobraCmd
}

// Run executes the export command
func (c *ExportCommand) Run(cmd *cobra.Command, args []string) error {
	indent, _ := cmd.Flags().GetBool("indent")

	entity, err := schema.ParseEntityType(flagString(cmd, "entity"))
	if err != nil {
		return err
	}

	filters, err := models.ParseFilters(flagStrings(cmd, "filter"))
	if err != nil {
		return err
	}
	if entity != schema.EntityTask && len(flagStrings(cmd, "filter")) > 0 {
		return fmt.Errorf("--filter only applies to tasks")
	}

	ctx, err := newCommandContext(cmd, c.fs)
	if err != nil {
		return err
	}

	p, err := ctx.ReadProject(args[0])
	if err != nil {
		return err
	}

	fields, err := resolveFields(p.Schema(), entity, flagStrings(cmd, "fields"))
	if err != nil {
		return err
	}

	records := p.Records(entity)
	if entity == schema.EntityTask {
		tasks := models.FilterTasks(p.AllTasks(), filters)
		records = make([]*models.Record, len(tasks))
		for i, t := range tasks {
			records[i] = t.Attributes
		}
	}

	data, err := render.RecordsJSON(records, fields, render.JSONOptions{
		Location: ctx.Format.Location,
		Indent:   indent,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", entity.Plural(), err)
	}

	output := flagString(cmd, "output")
	if output == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
		return err
	}

	path, err := ctx.Workspace.Resolve(output)
	if err != nil {
		return err
	}
	if err := c.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", output, err)
	}
	if err := c.fs.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	ctx.Logger.Info("export written", "path", path, "records", len(records))
	return nil
}
