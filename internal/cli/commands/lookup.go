package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acadtools/timetable-viewer/internal/roster"
	"github.com/acadtools/timetable-viewer/internal/schedule"
)

// NewLookupCommand creates the lookup command.
func NewLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <roll-number>",
		Short: "Print the personal class schedule for a roll number",
		Long: `Resolve the roll number against the roster spreadsheets and print the
matching classes from the weekly timetable, sorted by date and start
time. An asterisk marks classes scheduled for today.`,
		Args: cobra.ExactArgs(1),
		RunE: runLookup,
	}
}

func runLookup(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}

	res, err := rt.svc.Lookup(args[0])
	if errors.Is(err, roster.ErrNotEnrolled) {
		// A warning, not a failure.
		fmt.Fprintf(cmd.OutOrStdout(), "No courses found for roll number %s. Please check again.\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	printSchedule(cmd.OutOrStdout(), res)
	return nil
}

func printSchedule(w io.Writer, res *schedule.Result) {
	courses := make([]string, 0, len(res.Courses))
	for _, c := range res.Courses {
		courses = append(courses, c.String())
	}
	fmt.Fprintf(w, "Found courses for Roll No. %s: %s\n", res.Roll, strings.Join(courses, ", "))

	if len(res.Entries) == 0 {
		fmt.Fprintln(w, "No matching classes found in the current weekly timetable.")
		return
	}

	fmt.Fprintln(w)
	for _, e := range res.Entries {
		marker := " "
		if e.Today {
			marker = "*"
		}
		date := e.DisplayDate
		if date == "" {
			date = "??"
		}
		subject := e.Subject
		if e.Division != "" {
			subject = subject + "(" + e.Division + ")"
		}
		fmt.Fprintf(w, "%s %-7s %-4s %-18s %-12s %-24s %s\n",
			marker, date, e.Day, e.Session, subject, e.Faculty, e.Venue)
	}
	fmt.Fprintf(w, "\n%d classes this week\n", len(res.Entries))
}
