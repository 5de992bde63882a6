// Package launcher hands prepared model files to CopasiSE through GNU
// parallel. It never runs the simulator in-process; fan-out, scheduling
// and output redirection all live in the generated shell command line.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// fallbackNames are tried in order when the configured simulator binary
// is not on PATH.
var fallbackNames = []string{"CopasiSE", "copasise"}

// NotFoundError reports that neither the requested simulator nor any
// fallback name could be resolved.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("simulator %q not found, and none of the fallbacks (%s) either",
		e.Name, strings.Join(fallbackNames, ", "))
}

// Options configures one launch.
type Options struct {
	// Simulator is the resolved CopasiSE program name or path.
	Simulator string

	// Jobs is the -j value passed to parallel.
	Jobs int

	// LogFile receives the appended stdout and stderr of every simulator
	// invocation.
	LogFile string

	// Detach starts the batch and returns without waiting. No marker file
	// is written in that case.
	Detach bool
}

// Result describes a completed (waited-for) launch.
type Result struct {
	ExitCode int
	Elapsed  time.Duration
}

// FindSimulator resolves name on PATH, falling back to the conventional
// CopasiSE binary names. The returned string is the name that resolved;
// callers compare it against the request to notice a switch.
func FindSimulator(name string) (string, error) {
	if _, err := exec.LookPath(name); err == nil {
		return name, nil
	}
	for _, fallback := range fallbackNames {
		if fallback == name {
			continue
		}
		if _, err := exec.LookPath(fallback); err == nil {
			return fallback, nil
		}
	}
	return "", &NotFoundError{Name: name}
}

// CheckVersion runs the simulator's help output and reports whether it
// mentions the model's file version. The returned banner is the first
// output line with the leading "COPASI " prefix removed, for use in
// mismatch warnings.
func CheckVersion(ctx context.Context, prog, modelVersion string) (ok bool, banner string, err error) {
	out, err := exec.CommandContext(ctx, prog, "-h").Output()
	if err != nil {
		return false, "", fmt.Errorf("probing %s version: %w", prog, err)
	}
	text := string(out)
	banner, _, _ = strings.Cut(text, "\n")
	banner = strings.TrimPrefix(banner, "COPASI ")
	return strings.Contains(text, modelVersion), banner, nil
}

// CommandLine renders the parallel invocation for the given model files.
// Redirection operators are quoted so parallel applies them per job
// rather than the outer shell applying them once.
func CommandLine(prog string, jobs int, logFile string, files []string) string {
	return fmt.Sprintf("parallel -j %d %s '>>' %s '2>&1' ::: %s",
		jobs, prog, logFile, strings.Join(files, " "))
}

// Run executes the batch. With Options.Detach it starts the command and
// releases it; otherwise it waits, writes the finish marker next to
// markerBase and returns the batch result. A non-zero simulator exit is
// recorded in the marker and the result, not returned as an error.
func Run(ctx context.Context, files []string, opts Options, markerBase string) (Result, error) {
	cmdline := CommandLine(opts.Simulator, opts.Jobs, opts.LogFile, files)

	if opts.Detach {
		cmd := exec.Command("sh", "-c", cmdline)
		if err := cmd.Start(); err != nil {
			return Result{}, fmt.Errorf("starting batch: %w", err)
		}
		if err := cmd.Process.Release(); err != nil {
			return Result{}, fmt.Errorf("releasing batch process: %w", err)
		}
		return Result{}, nil
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, "sh", "-c", cmdline)
	runErr := cmd.Run()
	res := Result{Elapsed: time.Since(start)}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return res, fmt.Errorf("running batch: %w", runErr)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	if err := WriteMarker(markerBase, res, files); err != nil {
		return res, err
	}
	return res, nil
}

// MarkerName returns the finish-marker file path for a model file: the
// marker sits next to the model, named to sort first in a listing.
func MarkerName(modelPath string) string {
	base := filepath.Base(modelPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(modelPath), "AA_FINISHED_"+base)
}

// WriteMarker records how a waited-for batch ended.
func WriteMarker(modelPath string, res Result, files []string) error {
	var b strings.Builder
	if res.ExitCode == 0 {
		fmt.Fprintf(&b, "CopasiSE finished the following files without error in %s:\n\n", res.Elapsed.Round(time.Millisecond))
	} else {
		fmt.Fprintf(&b, "CopasiSE finished the following files WITH EXIT CODE %d in %s:\n\n", res.ExitCode, res.Elapsed.Round(time.Millisecond))
	}
	b.WriteString(strings.Join(files, "\n"))
	b.WriteString("\n\nNothing more to do.\n")
	return os.WriteFile(MarkerName(modelPath), []byte(b.String()), 0o644)
}
