package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadtools/timetable-viewer/internal/csvio"
)

// writeFixtures lays out a data directory and returns a config file
// pointing at it.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	rosterDir := filepath.Join(dir, "roll_lists")
	require.NoError(t, os.Mkdir(rosterDir, 0755))

	write := func(path, content string) {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	write(filepath.Join(rosterDir, "CS101_A.csv"), "Roll No.\n21BCM014\n")
	write(filepath.Join(dir, "master.csv"), "Abbre.,Faculty,Venue\nCS101,Dr. Rao,Room 5\n")
	write(filepath.Join(dir, "weekly.csv"),
		"Date,Day,10:00-11:00 AM\n2025-11-03,Monday,CS101(A) Room 5\n")

	configPath := filepath.Join(dir, "config.yaml")
	write(configPath, `
data:
  roster_dir: `+rosterDir+`
  master_file: `+filepath.Join(dir, "master.csv")+`
  timetable_file: `+filepath.Join(dir, "weekly.csv")+`
export:
  dir: `+dir+`
`)
	return configPath
}

func runCommand(t *testing.T, newCmd func() *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd := newCmd()
	cmd.Flags().String("config", "", "")
	cmd.Flags().Bool("verbose", false, "")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLookupCommand(t *testing.T) {
	configPath := writeFixtures(t)
	out, err := runCommand(t, NewLookupCommand, "--config", configPath, "21BCM014")
	require.NoError(t, err)
	assert.Contains(t, out, "Found courses for Roll No. 21BCM014: CS101(A)")
	assert.Contains(t, out, "10:00-11:00 AM")
	assert.Contains(t, out, "Dr. Rao")
	assert.Contains(t, out, "1 classes this week")
}

func TestLookupCommandNotEnrolled(t *testing.T) {
	configPath := writeFixtures(t)
	out, err := runCommand(t, NewLookupCommand, "--config", configPath, "99ZZZ999")
	require.NoError(t, err)
	assert.Contains(t, out, "No courses found for roll number 99ZZZ999")
}

func TestExportCommand(t *testing.T) {
	configPath := writeFixtures(t)
	outDir := t.TempDir()
	out, err := runCommand(t, NewExportCommand, "--config", configPath, "--out", outDir, "21BCM014")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 classes")

	rows, err := csvio.LoadExportedSchedule(filepath.Join(outDir, "21BCM014_timetable.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "CS101", rows[0].Subject)
	assert.Equal(t, "A", rows[0].Div)
}

func TestServeCommandMissingData(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
data:
  roster_dir: `+filepath.Join(dir, "missing")+`
`), 0644))

	// Startup fails before listening when the reference files are absent.
	_, err := runCommand(t, NewServeCommand, "--config", configPath)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, NewVersionCommand)
	require.NoError(t, err)
	assert.Contains(t, out, "timetable")
}
