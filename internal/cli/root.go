package cli

import (
	"fmt"

	"github.com/jakoblorz/go-mpxj/internal/filesystem"
	"github.com/jakoblorz/go-mpxj/internal/schema"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mpxj",
		Short: "Inspect MPXJ project exports",
		Long: `A CLI tool for reading the JSON exports written by MPXJ.

Tasks, resources, assignments and project properties are typed through the
MPXJ field tables, so dates, durations and numbers print as they would in
the scheduling tool that wrote them.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(timezoneFlag, "", "Timezone for dates without an offset (overrides .mpxj.yaml)")
	rootCmd.PersistentFlags().String(logLevelFlag, "warn", "Log level: debug, info, warn, or error")

	// Add subcommands
	rootCmd.AddCommand(NewFieldsCommand(fs))
	rootCmd.AddCommand(NewListCommand(fs, schema.EntityTask))
	rootCmd.AddCommand(NewListCommand(fs, schema.EntityResource))
	rootCmd.AddCommand(NewListCommand(fs, schema.EntityAssignment))
	rootCmd.AddCommand(NewShowCommand(fs))
	rootCmd.AddCommand(NewGetCommand(fs))
	rootCmd.AddCommand(NewExportCommand(fs))
	rootCmd.AddCommand(NewReportCommand(fs))
	rootCmd.AddCommand(NewLsCommand(fs))
	rootCmd.AddCommand(NewBrowseCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
