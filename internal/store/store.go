package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// Store is a SQLite-backed results archive.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the archive at path and initializes
// its schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSteadyState archives the concentration and flux values one report
// file contributed. Re-archiving the same source replaces its rows.
func (s *Store) SaveSteadyState(ctx context.Context, source string, conc, flux map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO steady_state_values (source, kind, entity, value, recorded_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	recorded := s.now().UTC().Format(time.RFC3339)
	for entity, value := range conc {
		if _, err := stmt.ExecContext(ctx, source, "concentration", entity, value, recorded); err != nil {
			return fmt.Errorf("archiving concentration of %s: %w", entity, err)
		}
	}
	for entity, value := range flux {
		if _, err := stmt.ExecContext(ctx, source, "flux", entity, value, recorded); err != nil {
			return fmt.Errorf("archiving flux of %s: %w", entity, err)
		}
	}

	return tx.Commit()
}

// SaveObjective archives one objective value under its scan id and cell
// labels.
func (s *Store) SaveObjective(ctx context.Context, scan, row, col, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO objective_values (scan, row, col, value, recorded_at)
		VALUES (?, ?, ?, ?, ?)`,
		scan, row, col, value, s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("archiving objective for scan %s: %w", scan, err)
	}
	return nil
}

// SteadyStateValue looks up one archived value.
func (s *Store) SteadyStateValue(ctx context.Context, source, kind, entity string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM steady_state_values
		WHERE source = ? AND kind = ? AND entity = ?`,
		source, kind, entity).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("looking up %s %s of %s: %w", kind, entity, source, err)
	}
	return value, nil
}

// ObjectiveCount returns how many objective values are archived for one
// scan.
func (s *Store) ObjectiveCount(ctx context.Context, scan string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM objective_values WHERE scan = ?`, scan).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting objectives of scan %s: %w", scan, err)
	}
	return n, nil
}
