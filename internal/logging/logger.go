// Package logging provides leveled logging and problem reporting for
// copasweep. It offers three complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A Reporter for the user-facing problem lines that every sweep
//     operation emits ("<time> <file>: <message> - Continuing.")
//   - A TraceLogger for structured JSONL traces of document mutations
//     and launcher invocations (copasweep_trace.jsonl)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Reporter renders problem lines in the fixed format every command uses:
//
//	<timestamp> <file>: <message> - Continuing.
//	<timestamp> <file>: <message> - Aborting.
//
// Problems are best-effort diagnostics; the decision to abort is the
// caller's, the Reporter only words it. The zero value is not usable;
// construct with NewReporter.
type Reporter struct {
	w   io.Writer
	now func() time.Time
}

// NewReporter creates a Reporter writing to w. A nil w falls back to stderr.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	return &Reporter{w: w, now: time.Now}
}

// WithClock returns a copy of r using now as its time source. Test hook.
func (r *Reporter) WithClock(now func() time.Time) *Reporter {
	return &Reporter{w: r.w, now: now}
}

// Problem reports a non-fatal condition for file and signals that
// execution continues.
func (r *Reporter) Problem(file, format string, args ...any) {
	r.line(file, fmt.Sprintf(format, args...), "Continuing.")
}

// Fatal reports a fatal condition for file and signals that execution
// stops. It does not itself terminate the process; the cmd layer owns
// exit codes.
func (r *Reporter) Fatal(file, format string, args ...any) {
	r.line(file, fmt.Sprintf(format, args...), "Aborting.")
}

func (r *Reporter) line(file, msg, tail string) {
	fmt.Fprintf(r.w, "%s %s: %s - %s\n", r.now().Format(time.ANSIC), file, msg, tail)
}
