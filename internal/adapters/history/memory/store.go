package memory

import (
	"context"
	"sync"

	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/bnema/mc-assistant/internal/ports"
)

const defaultCapacity = 200

// Store is a fixed-capacity ring of finished jobs. The oldest record is
// overwritten once the ring is full.
type Store struct {
	mu    sync.RWMutex
	ring  []domain.CommandJob
	next  int
	count int
}

var _ ports.HistoryStore = (*Store)(nil)

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	return &Store{ring: make([]domain.CommandJob, capacity)}
}

func (s *Store) Append(ctx context.Context, job domain.CommandJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ring[s.next] = job
	s.next = (s.next + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
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

	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make([]domain.CommandJob, 0, min(limit, s.count))
	seen := make(map[domain.JobID]struct{}, s.count)
	for i := 1; i <= s.count && len(jobs) < limit; i++ {
		job := s.ring[(s.next-i+len(s.ring))%len(s.ring)]
		if _, ok := seen[job.ID]; ok {
			continue
		}
		seen[job.ID] = struct{}{}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.count
}
