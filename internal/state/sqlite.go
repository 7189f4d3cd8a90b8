package state

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users delete the state database to adopt the new schema.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was written by a different schema version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// SQLiteStore persists fingerprints and run history in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// Open connects to (or creates) the state database inside cacheDir.
func Open(cacheDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	dbPath := filepath.Join(cacheDir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLiteStore{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin schema tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return tx.Commit()
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to rebuild)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(ctx context.Context, key string) (Entry, bool, error) {
	ctx = ensureContext(ctx)
	var entry Entry
	err := s.db.QueryRowContext(ctx,
		"SELECT command, input_fingerprint, output_fingerprint FROM task_state WHERE key = ?", key,
	).Scan(&entry.Command, &entry.Input, &entry.Output)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("load task state: %w", err)
	}
	return entry, true, nil
}

// Save implements Store. Both fingerprints land in one statement so the pair
// is never observable half-written.
func (s *SQLiteStore) Save(ctx context.Context, key string, entry Entry) error {
	ctx = ensureContext(ctx)
	err := retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, `
INSERT INTO task_state (key, command, input_fingerprint, output_fingerprint, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET
    command = excluded.command,
    input_fingerprint = excluded.input_fingerprint,
    output_fingerprint = excluded.output_fingerprint,
    updated_at = excluded.updated_at`,
			key, entry.Command, entry.Input, entry.Output, time.Now().UTC().Format(time.RFC3339))
		return err
	})
	if err != nil {
		return fmt.Errorf("save task state: %w", err)
	}
	return nil
}

// RecordRun appends a run-history row.
func (s *SQLiteStore) RecordRun(ctx context.Context, rec RunRecord) error {
	ctx = ensureContext(ctx)
	err := retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO runs (id, started_at, finished_at, passes, executed, status, detail) VALUES (?, ?, ?, ?, ?, ?, ?)",
			rec.ID,
			rec.StartedAt.UTC().Format(time.RFC3339),
			rec.FinishedAt.UTC().Format(time.RFC3339),
			rec.Passes, rec.Executed, rec.Status, rec.Detail)
		return err
	})
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit run-history rows, newest first.
func (s *SQLiteStore) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	ctx = ensureContext(ctx)
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, started_at, finished_at, passes, executed, status, detail FROM runs ORDER BY started_at DESC, id LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var startedAt, finishedAt string
		if err := rows.Scan(&rec.ID, &startedAt, &finishedAt, &rec.Passes, &rec.Executed, &rec.Status, &rec.Detail); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		rec.FinishedAt, _ = time.Parse(time.RFC3339, finishedAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
