package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/report"
	"github.com/jakoblorz/go-mpxj/internal/watch"
	"github.com/spf13/cobra"
)

const defaultReport = "summary"

// ReportCommand handles the report command
type ReportCommand struct {
	fs filesystem.FileSystem
}

// NewReportCommand creates a new report command
func NewReportCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ReportCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "report <file> [name]",
		Short: "Render a report template against an export",
		Long: fmt.Sprintf(`Renders a Markdown report from a template.

Templates are text/template files with an optional YAML header selecting the
entity, task filters and fields to report on. Named templates are looked up
in the templates directory of .mpxj.yaml, then among the built-in templates
(%s).

Template functions: field, value, label, format, hours, days, outline and
the sprig function library.`, strings.Join(report.BuiltinNames(), ", ")),
		Example: `  # Built-in summary
  mpxj report plan.json

  # Template from the configured templates directory
  mpxj report plan.json weekly

  # Template file
  mpxj report plan.json --template reports/owners.md

  # Re-render whenever the export changes
  mpxj report plan.json --watch`,
		Args: cobra.RangeArgs(1, 2),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("template", "", "Path to a template file")
	cobraCmd.Flags().BoolP("watch", "w", false, "Re-render whenever the export file changes")

	return cobraCmd
}

// Run executes the report command
func (c *ReportCommand) Run(cmd *cobra.Command, args []string) error {
	ctx, err := newCommandContext(cmd, c.fs)
	if err != nil {
		return err
	}

	tmpl, err := c.template(cmd, ctx, args)
	if err != nil {
		return err
	}

	render := func() error {
		p, err := ctx.ReadProject(args[0])
		if err != nil {
			return err
		}
		return tmpl.Render(cmd.OutOrStdout(), p, ctx.Format)
	}

	watching, _ := cmd.Flags().GetBool("watch")
	if !watching {
		return render()
	}

	path, err := ctx.Workspace.Resolve(args[0])
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Logger.Info("watching export", "path", path)
	return watch.File(sigCtx, path, watch.DefaultDelay, ctx.Logger, func() error {
		var buf bytes.Buffer
		p, err := ctx.ReadProject(args[0])
		if err != nil {
			return err
		}
		if err := tmpl.Render(&buf, p, ctx.Format); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "\033[H\033[2J%s", buf.String())
		return err
	})
}

func (c *ReportCommand) template(cmd *cobra.Command, ctx *commandContext, args []string) (*report.Template, error) {
	path := flagString(cmd, "template")
	if path != "" {
		if len(args) > 1 {
			return nil, fmt.Errorf("cannot use --template together with a template name")
		}
		abs, err := ctx.Workspace.Resolve(path)
		if err != nil {
			return nil, err
		}
		return report.Load(c.fs, abs)
	}

	name := defaultReport
	if len(args) > 1 {
		name = args[1]
	}
	return report.Find(c.fs, ctx.Workspace.Config.TemplatesDir(), name)
}
