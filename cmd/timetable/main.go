// Timetable Viewer - Personal Class Schedule Lookup
//
// Looks up a student's enrolled courses from roster spreadsheets, matches
// them against the weekly timetable grid, and prints or exports a
// time-sorted personal schedule.
package main

import (
	"os"

	"github.com/acadtools/timetable-viewer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
