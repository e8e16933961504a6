package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/acadtools/timetable-viewer/pkg/model"
)

// ExportFileName names the exported schedule after the roll number,
// e.g. "21BCM014_timetable.csv".
func ExportFileName(rollNumber string) string {
	return rollNumber + "_timetable.csv"
}

// ExportSchedule writes the assembled schedule to the CSV file at path,
// replacing any previous export.
func ExportSchedule(entries []*model.ScheduleEntry, path string) error {
	rows := exportRows(entries)

	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, os.ModePerm)
	if err != nil {
		return fmt.Errorf("creating export file %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("writing export file %s: %w", path, err)
	}
	return nil
}

// ExportScheduleString renders the assembled schedule as CSV text, used by
// the HTTP download endpoint.
func ExportScheduleString(entries []*model.ScheduleEntry) (string, error) {
	rows := exportRows(entries)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("rendering schedule csv: %w", err)
	}
	return str, nil
}

// LoadExportedSchedule reads back a previously exported schedule.
func LoadExportedSchedule(path string) ([]*model.ScheduleCSVRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening exported schedule %s: %w", path, err)
	}
	defer f.Close()

	setDelimiter(',')
	var rows []*model.ScheduleCSVRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing exported schedule %s: %w", path, err)
	}
	return rows, nil
}

func exportRows(entries []*model.ScheduleEntry) []*model.ScheduleCSVRow {
	rows := make([]*model.ScheduleCSVRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.CSVRow())
	}
	return rows
}
