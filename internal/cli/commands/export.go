package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/acadtools/timetable-viewer/internal/csvio"
	"github.com/acadtools/timetable-viewer/internal/roster"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <roll-number>",
		Short: "Export the personal class schedule to a spreadsheet",
		Long: `Look up the personal schedule for a roll number and write it to
<roll-number>_timetable.csv with columns Date, Day, Session, Subject,
Div, Faculty, Venue in chronological order.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}
	cmd.Flags().StringP("out", "o", "", "output directory (defaults to export.dir from config)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	res, err := rt.svc.Lookup(args[0])
	if errors.Is(err, roster.ErrNotEnrolled) {
		fmt.Fprintf(cmd.OutOrStdout(), "No courses found for roll number %s. Please check again.\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = rt.cfg.Export.Dir
	}
	path := filepath.Join(outDir, csvio.ExportFileName(res.Roll))
	if err := csvio.ExportSchedule(res.Entries, path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d classes to %s\n", len(res.Entries), path)
	return nil
}
