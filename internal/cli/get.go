package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/spf13/cobra"
)

// GetCommand handles the get command
type GetCommand struct {
	fs filesystem.FileSystem
}

// NewGetCommand creates a new get command
func NewGetCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &GetCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "get <file> <entity> [unique-id] <field>",
		Short: "Print a single field value",
		Long: `Prints one typed field of a record. The field may be given as key, label or
custom field alias. Absent fields print an empty line.

A value that does not convert to its field type prints as the empty value of
that type and logs a warning, or fails with --strict.`,
		Example: `  mpxj get plan.json task 12 duration
  mpxj get plan.json task 12 Owner
  mpxj get plan.json project "Minutes Per Day"
  mpxj get plan.json task 12 predecessors --raw`,
		Args: cobra.RangeArgs(3, 4),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("raw", false, "Print the unconverted value as JSON")
	cobraCmd.Flags().Bool("strict", false, "Fail on values that do not convert")

	return cobraCmd
}

// Run executes the get command
func (c *GetCommand) Run(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")
	strict, _ := cmd.Flags().GetBool("strict")

	ctx, err := newCommandContext(cmd, c.fs)
	if err != nil {
		return err
	}

	p, err := ctx.ReadProject(args[0])
	if err != nil {
		return err
	}

	r, err := selectRecord(p, args[1:len(args)-1])
	if err != nil {
		return err
	}

	v, err := r.Lookup(args[len(args)-1])
	if err != nil {
		if !errors.Is(err, models.ErrInvalidValue) || strict {
			return err
		}
		ctx.Logger.Warn("invalid value", "field", v.Field.Key, "error", err)
	}

	out := cmd.OutOrStdout()
	if raw {
		if !v.Present {
			_, _ = fmt.Fprintln(out, "null")
			return nil
		}
		data, err := json.Marshal(v.Raw)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", v.Field.Key, err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	_, _ = fmt.Fprintln(out, render.FormatValue(v.Converted, ctx.Format))
	return nil
}
