package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TraceLogger writes structured mutation/run events to a JSONL file.
// It is safe for concurrent use. A nil TraceLogger is safe to use;
// all methods are no-ops on nil receiver.
type TraceLogger struct {
	mu   sync.Mutex
	file *os.File
}

// NewTraceLogger creates a trace logger writing to dir/copasweep_trace.jsonl.
// At "info" level and above (the default), returns nil and no file is
// created. At "debug" level the file is opened for append. Returns nil if
// the file cannot be opened. All methods are nil-safe.
func NewTraceLogger(dir string, level string) *TraceLogger {
	if ParseLevel(level) > slog.LevelDebug {
		return nil
	}

	path := filepath.Join(dir, "copasweep_trace.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil
	}

	return &TraceLogger{file: f}
}

// Log writes one event as a single JSONL line. A "time" field is added
// automatically. The caller's map is not mutated. Safe on nil receiver.
func (tl *TraceLogger) Log(event map[string]any) {
	if tl == nil || tl.file == nil {
		return
	}

	entry := make(map[string]any, len(event)+1)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)

	tl.mu.Lock()
	defer tl.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = tl.file.Write(data)
}

// Close closes the underlying file. Safe to call on nil receiver.
func (tl *TraceLogger) Close() {
	if tl == nil || tl.file == nil {
		return
	}

	tl.mu.Lock()
	defer tl.mu.Unlock()

	tl.file.Close()
}
