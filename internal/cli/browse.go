package cli

import (
	"fmt"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/tui/browse"
	"github.com/spf13/cobra"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	fs filesystem.FileSystem
}

// NewBrowseCommand creates a new browse command
func NewBrowseCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &BrowseCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse the records of an export interactively",
		Long:  `Pick tasks, resources, assignments or the project properties and page through their typed fields.`,
		Args:  cobra.ExactArgs(1),
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the browse command
func (c *BrowseCommand) Run(cmd *cobra.Command, args []string) error {
	ctx, err := newCommandContext(cmd, c.fs)
	if err != nil {
		return err
	}

	p, err := ctx.ReadProject(args[0])
	if err != nil {
		return err
	}

	if err := browse.NewFlow(p, ctx.Format).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
