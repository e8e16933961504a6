// Package config holds the runtime configuration: reference file
// locations, export directory, and server settings. Configuration is
// optional; every field has a default matching the conventional data
// layout.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration document.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Export ExportConfig `yaml:"export"`
	Server ServerConfig `yaml:"server"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// DataConfig locates the read-only reference spreadsheets.
type DataConfig struct {
	RosterDir     string `yaml:"roster_dir"`
	MasterFile    string `yaml:"master_file"`
	TimetableFile string `yaml:"timetable_file"`
	// RollHeader is the roster column holding roll numbers.
	RollHeader string `yaml:"roll_header"`
	// Delimiter is the CSV field separator, a single character.
	Delimiter string `yaml:"delimiter"`
}

// ExportConfig controls where exported schedules are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Listen string `yaml:"listen"`
	// Watch enables reloading the reference datasets on file changes.
	Watch bool `yaml:"watch"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			RosterDir:     "./data/roll_lists",
			MasterFile:    "./data/master_course_info.csv",
			TimetableFile: "./data/weekly_timetable.csv",
			RollHeader:    "Roll No.",
			Delimiter:     ",",
		},
		Export: ExportConfig{Dir: "."},
		Server: ServerConfig{Listen: ":3001", Watch: true},
	}
}

// Load reads a YAML configuration file on top of the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Data.RosterDir == "" {
		return errors.New("data.roster_dir is required")
	}
	if cfg.Data.MasterFile == "" {
		return errors.New("data.master_file is required")
	}
	if cfg.Data.TimetableFile == "" {
		return errors.New("data.timetable_file is required")
	}
	if len([]rune(cfg.Data.Delimiter)) != 1 {
		return fmt.Errorf("data.delimiter must be a single character, got %q", cfg.Data.Delimiter)
	}
	if cfg.Server.Listen == "" {
		return errors.New("server.listen is required")
	}
	return nil
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	return []rune(c.Data.Delimiter)[0]
}
