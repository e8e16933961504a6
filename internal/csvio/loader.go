// Package csvio loads the three reference spreadsheets (per-course roster
// files, the master course table, the weekly timetable grid) and writes
// the exported personal schedule.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/acadtools/timetable-viewer/pkg/model"
)

// DefaultRollHeader is the roster column holding roll numbers.
const DefaultRollHeader = "Roll No."

// Accepted layouts for the timetable Date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02-01-2006",
	"02/01/2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

func setDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.FieldsPerRecord = -1
		return r
	})
}

// LoadRosterDir reads every .csv roster file in dir. The file name stem
// encodes the course identifier ("CS101_A.csv" -> CS101 division A).
// Files without the roll header column are skipped silently, per file.
// Entry order follows the sorted directory listing and is deterministic.
func LoadRosterDir(dir string, rollHeader string, delim rune, logger *zap.Logger) ([]*model.RosterEntry, error) {
	if rollHeader == "" {
		rollHeader = DefaultRollHeader
	}
	setDelimiter(delim)

	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading roster directory %s: %w", dir, err)
	}

	var entries []*model.RosterEntry
	for _, file := range files {
		if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".csv") {
			continue
		}
		path := filepath.Join(dir, file.Name())
		rolls, err := readRollColumn(path, rollHeader)
		if err != nil {
			logger.Debug("skipping roster file",
				zap.String("file", path),
				zap.Error(err))
			continue
		}
		stem := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		entries = append(entries, &model.RosterEntry{
			Course: model.ParseCourseIdentifier(stem),
			Rolls:  rolls,
		})
	}
	return entries, nil
}

func readRollColumn(path string, rollHeader string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := gocsv.CSVToMaps(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	if _, ok := rows[0][rollHeader]; !ok {
		return nil, fmt.Errorf("%s: missing %q column", path, rollHeader)
	}

	var rolls []string
	for _, row := range rows {
		roll := strings.TrimSpace(row[rollHeader])
		if roll == "" {
			continue
		}
		rolls = append(rolls, roll)
	}
	return rolls, nil
}

// LoadMasterCourses reads the master course table. Rows with an empty
// abbreviation are dropped; duplicate abbreviations are kept in order so
// downstream lookups can apply first-row-wins.
func LoadMasterCourses(path string, delim rune, logger *zap.Logger) ([]*model.CourseMasterEntry, error) {
	setDelimiter(delim)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening master course file %s: %w", path, err)
	}
	defer f.Close()

	var rows []*model.CourseMasterEntry
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing master course file %s: %w", path, err)
	}

	entries := rows[:0]
	for _, r := range rows {
		if strings.TrimSpace(r.Abbreviation) == "" {
			logger.Debug("skipping master row without abbreviation", zap.String("file", path))
			continue
		}
		entries = append(entries, r)
	}
	return entries, nil
}

// LoadTimetable reads the weekly timetable grid. The first two columns are
// Date and Day; every remaining column is a session slot whose header is
// the session label. Column order is preserved. Rows whose date does not
// parse keep a zero Date and are still matched.
func LoadTimetable(path string, delim rune, logger *zap.Logger) ([]model.TimetableRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening timetable file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing timetable file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("timetable file %s: empty", path)
	}

	header := records[0]
	if len(header) < 3 {
		return nil, fmt.Errorf("timetable file %s: expected Date, Day and at least one session column", path)
	}

	var rows []model.TimetableRow
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		row := model.TimetableRow{
			Date: parseDate(record[0], path, logger),
			Day:  strings.TrimSpace(record[1]),
		}
		for col := 2; col < len(record) && col < len(header); col++ {
			row.Cells = append(row.Cells, model.SessionCell{
				Session: header[col],
				Text:    record[col],
			})
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseDate(value string, path string, logger *zap.Logger) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	logger.Debug("unparseable timetable date",
		zap.String("file", path),
		zap.String("value", value))
	return time.Time{}
}
