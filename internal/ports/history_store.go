package ports

import (
	"context"

	"github.com/bnema/mc-assistant/internal/domain"
)

// HistoryStore keeps finished jobs. ListRecent returns at most limit jobs,
// newest first, without duplicates.
type HistoryStore interface {
	Append(ctx context.Context, job domain.CommandJob) error
	ListRecent(ctx context.Context, limit int) ([]domain.CommandJob, error)
}
