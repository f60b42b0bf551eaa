package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

const historyDirMode = 0o700

// Store persists finished jobs in a SQLite database. Rows are only ever
// inserted; the newest row per job id wins when listing.
type Store struct {
	db *sql.DB
}

var _ ports.HistoryStore = (*Store)(nil)

func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), historyDirMode); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set history pragma: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Append(ctx context.Context, job domain.CommandJob) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO command_jobs
			(id, command, status, submitted_at, started_at, finished_at, output, error, attempts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(job.ID),
		job.Command,
		string(job.Status),
		job.SubmittedAt.UTC().Format(time.RFC3339Nano),
		nullTime(job.StartedAt),
		nullTime(job.FinishedAt),
		nullString(job.Output),
		nullString(job.Error),
		job.Attempts,
	)
	if err != nil {
		return fmt.Errorf("insert history record %s: %w", job.ID, err)
	}

	return nil
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]domain.CommandJob, error) {
	if limit <= 0 {
		return []domain.CommandJob{}, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, command, status, submitted_at, started_at, finished_at, output, error, attempts
		FROM command_jobs
		WHERE seq IN (SELECT MAX(seq) FROM command_jobs GROUP BY id)
		ORDER BY seq DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.CommandJob, 0, limit)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}

	return jobs, nil
}

func scanJob(rows *sql.Rows) (domain.CommandJob, error) {
	var (
		id, command, status, submittedAt string
		startedAt, finishedAt            sql.NullString
		output, errText                  sql.NullString
		attempts                         int
	)
	if err := rows.Scan(&id, &command, &status, &submittedAt, &startedAt, &finishedAt, &output, &errText, &attempts); err != nil {
		return domain.CommandJob{}, fmt.Errorf("scan history row: %w", err)
	}

	parsedStatus, err := domain.ParseJobStatus(status)
	if err != nil {
		return domain.CommandJob{}, fmt.Errorf("history record %s: %w", id, err)
	}

	job := domain.CommandJob{
		ID:       domain.JobID(id),
		Command:  command,
		Status:   parsedStatus,
		Output:   output.String,
		Error:    errText.String,
		Attempts: attempts,
	}
	if job.SubmittedAt, err = time.Parse(time.RFC3339Nano, submittedAt); err != nil {
		return domain.CommandJob{}, fmt.Errorf("history record %s submitted_at: %w", id, err)
	}
	if job.StartedAt, err = parseNullTime(startedAt); err != nil {
		return domain.CommandJob{}, fmt.Errorf("history record %s started_at: %w", id, err)
	}
	if job.FinishedAt, err = parseNullTime(finishedAt); err != nil {
		return domain.CommandJob{}, fmt.Errorf("history record %s finished_at: %w", id, err)
	}

	return job, nil
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func nullTime(value time.Time) sql.NullString {
	if value.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: value.UTC().Format(time.RFC3339Nano), Valid: true}
}

func parseNullTime(value sql.NullString) (time.Time, error) {
	if !value.Valid || value.String == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, value.String)
}
