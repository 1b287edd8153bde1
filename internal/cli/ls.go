package cli

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/spf13/cobra"
)

// LsCommand handles the ls command
type LsCommand struct {
	fs filesystem.FileSystem
}

// NewLsCommand creates a new ls command
func NewLsCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &LsCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List the exports of the workspace",
		Long: `Lists the export files of the workspace with their record counts.

The workspace root is the directory holding .mpxj.yaml, or the working
directory. Files are selected by the include patterns of the config
(default *.json). Hidden directories and paths ignored by the root
.gitignore are skipped. Files that cannot be read are listed with the error.`,
		Example: `  mpxj ls
  mpxj ls plans/2024`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the ls command
func (c *LsCommand) Run(cmd *cobra.Command, args []string) error {
	ctx, err := newCommandContext(cmd, c.fs)
	if err != nil {
		return err
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}

	paths, err := ctx.Workspace.Scan(dir)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No exports found")
		return nil
	}

	r := ctx.Reader()
	rows := make([][]string, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(ctx.Workspace.RootPath, path)
		if err != nil {
			rel = path
		}

		size := ""
		if info, err := c.fs.Stat(path); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}

		p, err := r.Read(path)
		if err != nil {
			ctx.Logger.Warn("skipping export", "path", rel, "error", err)
			rows = append(rows, []string{rel, size, "(unreadable)", "", "", ""})
			continue
		}

		rows = append(rows, []string{
			rel,
			size,
			p.Name(),
			strconv.Itoa(len(p.AllTasks())),
			strconv.Itoa(len(p.AllResources())),
			strconv.Itoa(len(p.AllAssignments())),
		})
	}

	return render.Table(cmd.OutOrStdout(), []string{"File", "Size", "Project", "Tasks", "Resources", "Assignments"}, rows)
}
