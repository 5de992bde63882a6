package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"copasweep/internal/config"
	"copasweep/internal/logging"
	"copasweep/internal/model"
)

// exitUnknownAnalysis is the exit code reserved for models whose
// objective expression names no recognized analysis type. Batch scripts
// key on it to tell a bad model apart from ordinary failures.
const exitUnknownAnalysis = 56

// exitError carries an exit code out of a RunE after the diagnostic line
// has already been printed.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// fail prints the aborting line for file and returns the error that makes
// main exit with code.
func fail(rep *logging.Reporter, file string, code int, format string, args ...any) error {
	rep.Fatal(file, format, args...)
	return &exitError{code: code}
}

// runEnv bundles what every subcommand needs.
type runEnv struct {
	cfg   *config.Config
	rep   *logging.Reporter
	trace *logging.TraceLogger
	level string
}

// newRunEnv loads the config and wires the reporter and trace logger.
// The --log-level flag beats the config file.
func newRunEnv(cmd *cobra.Command) (*runEnv, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel != "" {
		level = flagLevel
	}

	return &runEnv{
		cfg:   cfg,
		rep:   logging.NewReporter(os.Stderr),
		trace: logging.NewTraceLogger(".", level),
		level: level,
	}, nil
}

func (e *runEnv) close() {
	e.trace.Close()
}

// loadModel loads a model file, treating an unsupported file version as a
// warning (the regex surgery usually still works) and everything else as
// fatal.
func loadModel(env *runEnv, path string) (*model.Document, error) {
	doc, err := model.Load(path)
	switch {
	case err == nil:
	case errors.As(err, new(*model.UnsupportedVersionError)):
		env.rep.Problem(path, "%v", err)
	case errors.Is(err, model.ErrNoVersion):
		return nil, fail(env.rep, path, 1, "the file does not look like a COPASI model, no version comment found")
	default:
		return nil, fail(env.rep, path, 1, "%v", err)
	}
	return doc, nil
}

// expandGlobs expands shell-style patterns in args, keeping argument
// order and, within one pattern, the sorted order filepath.Glob yields.
// Arguments that match nothing are kept verbatim so the caller can report
// them against the file system.
func expandGlobs(args []string) []string {
	var files []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			files = append(files, arg)
			continue
		}
		files = append(files, matches...)
	}
	return files
}
