package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/models"
	"github.com/jakoblorz/go-mpxj/internal/reader"
	"github.com/jakoblorz/go-mpxj/internal/render"
	"github.com/jakoblorz/go-mpxj/internal/workspace"
	"github.com/spf13/cobra"
)

const (
	timezoneFlag = "timezone"
	logLevelFlag = "log-level"
)

// commandContext bundles what a command needs to read and print exports.
type commandContext struct {
	Workspace *workspace.Workspace
	Format    render.FormatOptions
	Logger    *slog.Logger

	fs filesystem.FileSystem
}

// newCommandContext detects the workspace and resolves the date settings.
// The --timezone flag overrides the configured zone.
func newCommandContext(cmd *cobra.Command, fs filesystem.FileSystem) (*commandContext, error) {
	logger, err := loggerFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	ws := workspace.New(fs)
	if err := ws.Detect(); err != nil {
		return nil, fmt.Errorf("failed to detect workspace: %w", err)
	}

	if tz := flagString(cmd, timezoneFlag); tz != "" {
		ws.Config.Timezone = tz
	}

	loc, err := ws.Config.Location()
	if err != nil {
		return nil, err
	}

	return &commandContext{
		Workspace: ws,
		Format: render.FormatOptions{
			DateFormat: ws.Config.DateFormat,
			Location:   loc,
		},
		Logger: logger,
		fs:     fs,
	}, nil
}

// Reader returns an export reader using the context's location and logger.
func (c *commandContext) Reader() *reader.Reader {
	return reader.New(c.fs,
		reader.WithLocation(c.Format.Location),
		reader.WithLogger(c.Logger),
	)
}

// ReadProject reads one export relative to the working directory.
func (c *commandContext) ReadProject(path string) (*models.Project, error) {
	abs, err := c.Workspace.Resolve(path)
	if err != nil {
		return nil, err
	}
	return c.Reader().Read(abs)
}

func loggerFromCmd(cmd *cobra.Command) (*slog.Logger, error) {
	level := slog.LevelWarn
	if s := flagString(cmd, logLevelFlag); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", s)
		}
	}

	var w io.Writer = io.Discard
	if cmd != nil {
		w = cmd.ErrOrStderr()
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})), nil
}

func flagString(cmd *cobra.Command, name string) string {
	if cmd == nil {
		return ""
	}
	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(flag.Value.String())
}

func flagStrings(cmd *cobra.Command, name string) []string {
	values, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil
	}
	return values
}

// parseUniqueID reads a unique ID argument.
func parseUniqueID(s string) (int64, error) {
	uid, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unique ID: %s", s)
	}
	return uid, nil
}
