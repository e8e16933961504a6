package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "./data/roll_lists", cfg.Data.RosterDir)
	assert.Equal(t, "Roll No.", cfg.Data.RollHeader)
	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.Equal(t, ":3001", cfg.Server.Listen)
	assert.True(t, cfg.Server.Watch)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  roster_dir: /srv/tt/rosters
  delimiter: ";"
server:
  listen: ":8080"
verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/tt/rosters", cfg.Data.RosterDir)
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.True(t, cfg.Verbose)
	// Untouched keys keep their defaults.
	assert.Equal(t, "./data/master_course_info.csv", cfg.Data.MasterFile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty roster dir", func(c *Config) { c.Data.RosterDir = "" }},
		{"empty master file", func(c *Config) { c.Data.MasterFile = "" }},
		{"empty timetable file", func(c *Config) { c.Data.TimetableFile = "" }},
		{"bad delimiter", func(c *Config) { c.Data.Delimiter = "ab" }},
		{"empty listen", func(c *Config) { c.Server.Listen = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}
