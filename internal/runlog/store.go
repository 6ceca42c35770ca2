package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Record is one persisted run.
type Record struct {
	ID               string
	StartedAt        time.Time
	FinishedAt       time.Time
	DryRun           bool
	Status           string
	Error            string
	Sources          int
	DocumentsParsed  int
	DocumentsSkipped int
	ArchivesSkipped  int
	FoodOutputs      int
	NodesCreated     int
	NodesUpdated     int
	NodesDisabled    int
	NodesCorrupt     int
}

// Duration is the wall time the run took.
func (r Record) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Store manages run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the run history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure run history directory: %w", err)
	}

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

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Append records one finished run. Rows are immutable; there is no update.
func (s *Store) Append(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return fmt.Errorf("append run: missing run id")
	}
	if rec.Status == "" {
		rec.Status = StatusCompleted
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, started_at, finished_at, dry_run, status, error,
            sources, documents_parsed, documents_skipped, archives_skipped,
            food_outputs, nodes_created, nodes_updated, nodes_disabled, nodes_corrupt
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
		boolToInt(rec.DryRun),
		rec.Status,
		nullableString(rec.Error),
		rec.Sources,
		rec.DocumentsParsed,
		rec.DocumentsSkipped,
		rec.ArchivesSkipped,
		rec.FoodOutputs,
		rec.NodesCreated,
		rec.NodesUpdated,
		rec.NodesDisabled,
		rec.NodesCorrupt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. limit <= 0 returns all runs.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	query := `SELECT id, started_at, finished_at, dry_run, status, error,
        sources, documents_parsed, documents_skipped, archives_skipped,
        food_outputs, nodes_created, nodes_updated, nodes_disabled, nodes_corrupt
        FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		rec      Record
		started  string
		finished string
		dryRun   int
		runErr   sql.NullString
	)
	if err := rows.Scan(
		&rec.ID, &started, &finished, &dryRun, &rec.Status, &runErr,
		&rec.Sources, &rec.DocumentsParsed, &rec.DocumentsSkipped, &rec.ArchivesSkipped,
		&rec.FoodOutputs, &rec.NodesCreated, &rec.NodesUpdated, &rec.NodesDisabled, &rec.NodesCorrupt,
	); err != nil {
		return Record{}, fmt.Errorf("scan run: %w", err)
	}

	var err error
	if rec.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return Record{}, fmt.Errorf("parse started_at: %w", err)
	}
	if rec.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
		return Record{}, fmt.Errorf("parse finished_at: %w", err)
	}
	rec.DryRun = dryRun != 0
	if runErr.Valid {
		rec.Error = runErr.String
	}
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
