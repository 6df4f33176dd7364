package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"rewav/internal/config"
)

// Store manages run-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one recorded batch execution.
type Run struct {
	ID               string
	Folder           string
	Workers          int
	Total            int
	Succeeded        int
	Failed           int
	DeletedOriginals bool
	StartedAt        time.Time
	FinishedAt       time.Time
}

// FileResult is the per-file outcome attached to a run.
type FileResult struct {
	SourcePath    string
	OutputPath    string
	Failed        bool
	FailureKind   string
	FailureDetail string
	Duration      time.Duration
	FinishedAt    time.Time
}

// Open initializes or connects to the history database and verifies the
// schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
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

// RecordRun inserts a run and its file outcomes in one transaction.
func (s *Store) RecordRun(ctx context.Context, run Run, files []FileResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, folder, workers, total, succeeded, failed,
            deleted_originals, started_at, finished_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Folder,
		run.Workers,
		run.Total,
		run.Succeeded,
		run.Failed,
		boolToInt(run.DeletedOriginals),
		run.StartedAt.UTC().Format(time.RFC3339Nano),
		run.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, file := range files {
		status := "ok"
		if file.Failed {
			status = "failed"
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_files (
                run_id, source_path, output_path, status,
                failure_kind, failure_detail, duration_ms, finished_at
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			file.SourcePath,
			nullableString(file.OutputPath),
			status,
			nullableString(file.FailureKind),
			nullableString(file.FailureDetail),
			file.Duration.Milliseconds(),
			file.FinishedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert run file: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit < 1 {
		limit = 1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, folder, workers, total, succeeded, failed,
                deleted_originals, started_at, finished_at
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var deleted int
		var started, finished string
		if err := rows.Scan(&run.ID, &run.Folder, &run.Workers, &run.Total,
			&run.Succeeded, &run.Failed, &deleted, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.DeletedOriginals = deleted != 0
		run.StartedAt = parseTimestamp(started)
		run.FinishedAt = parseTimestamp(finished)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// FailedFiles returns the failed outcomes for a run, insertion order.
func (s *Store) FailedFiles(ctx context.Context, runID string) ([]FileResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source_path, output_path, failure_kind, failure_detail,
                duration_ms, finished_at
         FROM run_files WHERE run_id = ? AND status = 'failed' ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run files: %w", err)
	}
	defer rows.Close()

	var files []FileResult
	for rows.Next() {
		var file FileResult
		var output, kind, detail sql.NullString
		var durationMS int64
		var finished string
		if err := rows.Scan(&file.SourcePath, &output, &kind, &detail, &durationMS, &finished); err != nil {
			return nil, fmt.Errorf("scan run file: %w", err)
		}
		file.Failed = true
		file.OutputPath = output.String
		file.FailureKind = kind.String
		file.FailureDetail = detail.String
		file.Duration = time.Duration(durationMS) * time.Millisecond
		file.FinishedAt = parseTimestamp(finished)
		files = append(files, file)
	}
	return files, rows.Err()
}

// Prune removes all but the newest keep runs and their file rows.
func (s *Store) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (
            SELECT id FROM runs ORDER BY started_at DESC LIMIT ?
        )`, keep)
	if err != nil {
		return fmt.Errorf("prune runs: %w", err)
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

func parseTimestamp(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
