// Package config provides unified configuration loading for copasweep.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked for in the working directory
// when no explicit path is given.
const DefaultFileName = "copasweep.yaml"

// Config contains all copasweep configuration settings.
type Config struct {
	// Simulator contains settings for running CopasiSE.
	Simulator SimulatorConfig `yaml:"simulator"`

	// Logging contains settings for operational and trace logging.
	Logging LoggingConfig `yaml:"logging"`

	// Database contains settings for the optional results archive.
	Database DatabaseConfig `yaml:"database"`
}

// SimulatorConfig configures how model batches are executed.
type SimulatorConfig struct {
	// Path is the CopasiSE binary name or path.
	Path string `yaml:"path"`

	// Jobs is the number of concurrent simulator processes.
	Jobs int `yaml:"jobs"`

	// Log receives the appended output of every simulator run.
	Log string `yaml:"log"`
}

// LoggingConfig configures copasweep's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default) or "debug".
	// "debug" enables trace logging to copasweep_trace.jsonl.
	Level string `yaml:"level"`
}

// DatabaseConfig configures the SQLite results archive.
type DatabaseConfig struct {
	// Path is the database file; empty disables archiving unless a
	// command passes --db explicitly.
	Path string `yaml:"path"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulator: SimulatorConfig{
			Path: "CopasiSE",
			Jobs: 10,
			Log:  "copasiOut.txt",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from path and environment variables. An empty
// path falls back to DefaultFileName in the working directory; if that
// file does not exist either, defaults apply without error.
// Order: defaults -> YAML file -> environment variables.
func Load(path string) (*Config, error) {
	config := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is fine.
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Simulator.Jobs < 1 {
		return fmt.Errorf("simulator jobs must be at least 1, got %d", c.Simulator.Jobs)
	}

	validLevels := map[string]bool{"info": true, "debug": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("COPASWEEP_SIMULATOR"); v != "" {
		config.Simulator.Path = v
	}

	if v := os.Getenv("COPASWEEP_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulator.Jobs = n
		}
	}

	if v := os.Getenv("COPASWEEP_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("COPASWEEP_DB"); v != "" {
		config.Database.Path = v
	}
}
