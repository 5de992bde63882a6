package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Simulator.Path != "CopasiSE" {
		t.Errorf("Simulator.Path = %q, want CopasiSE", c.Simulator.Path)
	}
	if c.Simulator.Jobs != 10 {
		t.Errorf("Simulator.Jobs = %d, want 10", c.Simulator.Jobs)
	}
	if c.Simulator.Log != "copasiOut.txt" {
		t.Errorf("Simulator.Log = %q, want copasiOut.txt", c.Simulator.Log)
	}
	if c.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", c.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copasweep.yaml")
	content := `simulator:
  path: /opt/copasi/bin/CopasiSE
  jobs: 4
logging:
  level: debug
database:
  path: results.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Simulator.Path != "/opt/copasi/bin/CopasiSE" {
		t.Errorf("Simulator.Path = %q", c.Simulator.Path)
	}
	if c.Simulator.Jobs != 4 {
		t.Errorf("Simulator.Jobs = %d, want 4", c.Simulator.Jobs)
	}
	// Unset keys keep their defaults.
	if c.Simulator.Log != "copasiOut.txt" {
		t.Errorf("Simulator.Log = %q, want default", c.Simulator.Log)
	}
	if c.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", c.Logging.Level)
	}
	if c.Database.Path != "results.db" {
		t.Errorf("Database.Path = %q, want results.db", c.Database.Path)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

// chdir changes into dir for the duration of the test; it stands in for
// t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Simulator.Jobs != 10 {
		t.Errorf("Simulator.Jobs = %d, want default", c.Simulator.Jobs)
	}
}

func TestEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("COPASWEEP_SIMULATOR", "/usr/local/bin/CopasiSE")
	t.Setenv("COPASWEEP_JOBS", "2")
	t.Setenv("COPASWEEP_LOG_LEVEL", "debug")
	t.Setenv("COPASWEEP_DB", "archive.db")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Simulator.Path != "/usr/local/bin/CopasiSE" {
		t.Errorf("Simulator.Path = %q", c.Simulator.Path)
	}
	if c.Simulator.Jobs != 2 {
		t.Errorf("Simulator.Jobs = %d, want 2", c.Simulator.Jobs)
	}
	if c.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", c.Logging.Level)
	}
	if c.Database.Path != "archive.db" {
		t.Errorf("Database.Path = %q, want archive.db", c.Database.Path)
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Simulator.Jobs = 0
	if err := c.Validate(); err == nil {
		t.Error("expected error for zero jobs")
	}

	c = Default()
	c.Logging.Level = "verbose"
	if err := c.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}
