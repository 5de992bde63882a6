// Package store archives extraction and summary results in SQLite so
// scan outputs can be queried across runs instead of re-parsing report
// files.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the results archive.
const schemaV1 = `
-- One row per value a steady-state report contributed.
CREATE TABLE IF NOT EXISTS steady_state_values (
    source TEXT NOT NULL,   -- report file base name
    kind TEXT NOT NULL CHECK (kind IN ('concentration', 'flux')),
    entity TEXT NOT NULL,   -- species or reaction name
    value TEXT NOT NULL,    -- kept verbatim, never parsed numerically
    recorded_at TEXT NOT NULL,
    PRIMARY KEY (source, kind, entity)
);

-- One row per objective value recovered from a scan result file.
CREATE TABLE IF NOT EXISTS objective_values (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    scan TEXT NOT NULL,
    row TEXT NOT NULL,
    col TEXT NOT NULL,
    value TEXT NOT NULL,
    recorded_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_objective_scan ON objective_values(scan);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER PRIMARY KEY
);
`

// InitSchema initializes the database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO schema_info (version) VALUES (?)`, SchemaVersion); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}
