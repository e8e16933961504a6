// Package cli provides the command-line interface for the timetable
// viewer.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acadtools/timetable-viewer/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timetable",
		Short: "Look up a student's personal class schedule",
		Long: `Timetable Viewer resolves a roll number against per-course roster
spreadsheets, matches the enrolled courses in the weekly timetable grid,
and renders a chronologically sorted personal schedule.

Reference files default to ./data (roll_lists/, master_course_info.csv,
weekly_timetable.csv) and can be relocated with a YAML config file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to YAML config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(commands.NewLookupCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
