package csvio

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadtools/timetable-viewer/pkg/model"
)

func sampleEntries() []*model.ScheduleEntry {
	monday := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	return []*model.ScheduleEntry{
		{Date: monday, Day: "Mon", Session: "10:00-11:00 AM", Subject: "CS101", Division: "A", Faculty: "Dr. Rao", Venue: "Room 5"},
		{Date: tuesday, Day: "Tue", Session: "2 PM", Subject: "MGT205", Faculty: "Prof. Shah", Venue: "Hall B"},
	}
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ExportFileName("21BCM014"))
	entries := sampleEntries()

	require.NoError(t, ExportSchedule(entries, path))

	rows, err := LoadExportedSchedule(path)
	require.NoError(t, err)
	require.Len(t, rows, len(entries))
	for i, row := range rows {
		assert.Equal(t, entries[i].CSVRow(), row)
	}
}

func TestExportReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), ExportFileName("21BCM014"))
	entries := sampleEntries()

	require.NoError(t, ExportSchedule(entries, path))
	require.NoError(t, ExportSchedule(entries[:1], path))

	rows, err := LoadExportedSchedule(path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportScheduleString(t *testing.T) {
	out, err := ExportScheduleString(sampleEntries())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Day,Session,Subject,Div,Faculty,Venue", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "2025-11-03")
	assert.Contains(t, lines[1], "CS101")
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "21BCM014_timetable.csv", ExportFileName("21BCM014"))
}
