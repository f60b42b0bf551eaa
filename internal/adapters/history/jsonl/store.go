package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
)

const (
	historyDirMode  = 0o700
	historyFileMode = 0o600
	maxLineBytes    = 1 << 20
)

type record struct {
	ID          string  `json:"id"`
	Command     string  `json:"command"`
	Status      string  `json:"status"`
	SubmittedAt string  `json:"submitted_at"`
	Output      *string `json:"output"`
	Error       *string `json:"error"`
	Attempts    int     `json:"attempts,omitempty"`
	StartedAt   string  `json:"started_at,omitempty"`
	FinishedAt  string  `json:"finished_at,omitempty"`
}

// Store appends one JSON object per finished job to a file and reads the
// whole file back when listing.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ ports.HistoryStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Append(ctx context.Context, job domain.CommandJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(toRecord(job))
	if err != nil {
		return fmt.Errorf("encode history record %s: %w", job.ID, err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), historyDirMode); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, historyFileMode)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}

	if _, err := file.Write(line); err != nil {
		_ = file.Close()
		return fmt.Errorf("append history record %s: %w", job.ID, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close history file: %w", err)
	}

	return nil
}

func (s *Store) ListRecent(ctx context.Context, limit int) ([]domain.CommandJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []domain.CommandJob{}, nil
	}

	s.mu.Lock()
	records, err := s.readAll()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	slices.Reverse(records)

	jobs := make([]domain.CommandJob, 0, min(limit, len(records)))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if len(jobs) == limit {
			break
		}
		if _, ok := seen[rec.ID]; ok {
			continue
		}
		seen[rec.ID] = struct{}{}

		job, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (s *Store) readAll() ([]record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer file.Close()

	var records []record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("decode history line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}

	return records, nil
}

func toRecord(job domain.CommandJob) record {
	rec := record{
		ID:          string(job.ID),
		Command:     job.Command,
		Status:      string(job.Status),
		SubmittedAt: formatTime(job.SubmittedAt),
		Attempts:    job.Attempts,
		StartedAt:   formatTime(job.StartedAt),
		FinishedAt:  formatTime(job.FinishedAt),
	}
	if job.Output != "" {
		rec.Output = &job.Output
	}
	if job.Error != "" {
		rec.Error = &job.Error
	}

	return rec
}

func fromRecord(rec record) (domain.CommandJob, error) {
	status, err := domain.ParseJobStatus(rec.Status)
	if err != nil {
		return domain.CommandJob{}, fmt.Errorf("history record %s: %w", rec.ID, err)
	}

	job := domain.CommandJob{
		ID:       domain.JobID(rec.ID),
		Command:  rec.Command,
		Status:   status,
		Attempts: rec.Attempts,
	}
	if job.SubmittedAt, err = parseTime(rec.SubmittedAt); err != nil {
		return domain.CommandJob{}, fmt.Errorf("history record %s submitted_at: %w", rec.ID, err)
	}
	if job.StartedAt, err = parseTime(rec.StartedAt); err != nil {
		return domain.CommandJob{}, fmt.Errorf("history record %s started_at: %w", rec.ID, err)
	}
	if job.FinishedAt, err = parseTime(rec.FinishedAt); err != nil {
		return domain.CommandJob{}, fmt.Errorf("history record %s finished_at: %w", rec.ID, err)
	}
	if rec.Output != nil {
		job.Output = *rec.Output
	}
	if rec.Error != nil {
		job.Error = *rec.Error
	}

	return job, nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339Nano, raw)
}
