package cli

import (
	"fmt"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/spf13/cobra"
)

// FieldsCommand handles the fields command
type FieldsCommand struct {
	fs filesystem.FileSystem
}

// NewFieldsCommand creates a new fields command
func NewFieldsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &FieldsCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "fields [entity]",
		Short: "List the typed fields of an entity",
		Long: `Lists the field table of task, resource, assignment or project records.

Each field is read through the converter of its type. Keys missing from the
table are passed through as strings. With --file the table of that export is
shown, including its declared types and custom field aliases.`,
		Example: `  # All task fields
  mpxj fields

  # Duration fields of resources
  mpxj fields resources --type duration

  # Fields of an export, with custom field aliases
  mpxj fields task --file plan.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringP("type", "t", "", "Only list fields of this type (boolean, float, integer, date, duration, string)")
	cobraCmd.Flags().StringP("file", "f", "", "Use the field table of an export")

	return cobraCmd
}

// Run executes the fields command
func (c *FieldsCommand) Run(cmd *cobra.Command, args []string) error {
	entity := schema.EntityTask
	if len(args) > 0 {
		var err error
		entity, err = schema.ParseEntityType(args[0])
		if err != nil {
			return err
		}
	}

	s := schema.Default()
	if file := flagString(cmd, "file"); file != "" {
		ctx, err := newCommandContext(cmd, c.fs)
		if err != nil {
			return err
		}
		p, err := ctx.ReadProject(file)
		if err != nil {
			return err
		}
		s = p.Schema()
	}

	fields := s.Fields(entity)
	if t := flagString(cmd, "type"); t != "" {
		ft, err := schema.ParseFieldType(t)
		if err != nil {
			return err
		}
		fields = s.FieldsOfType(entity, ft)
	}

	if len(fields) == 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No %s fields\n", entity)
		return nil
	}

	rows := make([][]string, len(fields))
	for i, f := range fields {
		alias, _ := s.Alias(entity, f.Key)
		rows[i] = []string{f.Key, f.Label, f.Type.String(), alias}
	}

	return render.Table(cmd.OutOrStdout(), []string{"Key", "Label", "Type", "Alias"}, rows)
}
