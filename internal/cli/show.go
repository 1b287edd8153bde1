package cli

import (
	"fmt"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/spf13/cobra"
)

// ShowCommand handles the show command
type ShowCommand struct {
	fs filesystem.FileSystem
}

// NewShowCommand creates a new show command
func NewShowCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ShowCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "show <file> <entity> [unique-id]",
		Short: "Print every field of one record",
		Long: `Prints the typed fields of one task, resource or assignment, selected by
unique ID, or of the project properties.

Only populated fields are printed unless --all is given. Values that do not
convert to their field type are printed as written and reported on stderr.`,
		Example: `  mpxj show plan.json task 12
  mpxj show plan.json resource 3 --all
  mpxj show plan.json project`,
		Args: cobra.RangeArgs(2, 3),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolP("all", "a", false, "Include absent fields")

	return cobraCmd
}

// Run executes the show command
func (c *ShowCommand) Run(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	ctx, err := newCommandContext(cmd, c.fs)
	if err != nil {
		return err
	}

	p, err := ctx.ReadProject(args[0])
	if err != nil {
		return err
	}

	r, err := selectRecord(p, args[1:])
	if err != nil {
		return err
	}

	values := render.Fields(r, all, ctx.Format)
	pairs := make([][2]string, len(values))
	for i, v := range values {
		pairs[i] = [2]string{v.Label, v.Value}
		if v.Err != nil {
			ctx.Logger.Warn("invalid value", "field", v.Field.Key, "error", v.Err)
		}
	}

	if len(pairs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No populated fields")
		return nil
	}

	return render.KeyValue(cmd.OutOrStdout(), pairs)
}

// selectRecord resolves "<entity> [unique-id]" arguments. The project entity
// takes no ID.
func selectRecord(p *models.Project, args []string) (*models.Record, error) {
	entity, err := schema.ParseEntityType(args[0])
	if err != nil {
		return nil, err
	}

	if entity == schema.EntityProject {
		return p.Properties, nil
	}

	if len(args) < 2 {
		return nil, fmt.Errorf("%s unique ID required", entity)
	}

	uid, err := parseUniqueID(args[1])
	if err != nil {
		return nil, err
	}

	return p.RecordByUniqueID(entity, uid)
}
